package drawing

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FillRule determines which regions of a self-intersecting geometry are
// inside.
type FillRule uint8

const (
	FillRuleEvenOdd FillRule = iota
	FillRuleNonzero
)

// Geometry describes a two-dimensional shape. The set of implementations
// is closed.
type Geometry interface {
	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() Rect

	geometryMarker()
}

// LineGeometry is a straight segment.
type LineGeometry struct {
	StartPoint, EndPoint Point

	StartPointAnimation *AnimationClock
	EndPointAnimation   *AnimationClock
}

func (g *LineGeometry) Bounds() Rect { return RectFromPoints(g.StartPoint, g.EndPoint) }

// RectangleGeometry is a rectangle with optionally rounded corners.
type RectangleGeometry struct {
	Rect             Rect
	RadiusX, RadiusY float64

	RectAnimation    *AnimationClock
	RadiusXAnimation *AnimationClock
	RadiusYAnimation *AnimationClock
}

// NewRectangleGeometry creates a rectangle geometry with square corners.
func NewRectangleGeometry(r Rect) *RectangleGeometry {
	return &RectangleGeometry{Rect: r}
}

func (g *RectangleGeometry) Bounds() Rect { return g.Rect }

// EllipseGeometry is an ellipse centered on Center.
type EllipseGeometry struct {
	Center           Point
	RadiusX, RadiusY float64

	CenterAnimation  *AnimationClock
	RadiusXAnimation *AnimationClock
	RadiusYAnimation *AnimationClock
}

func (g *EllipseGeometry) Bounds() Rect {
	rx, ry := math.Abs(g.RadiusX), math.Abs(g.RadiusY)
	return Rect{X: g.Center.X - rx, Y: g.Center.Y - ry, Width: 2 * rx, Height: 2 * ry}
}

// PathGeometry is an arbitrary outline made of line and Bézier segments.
type PathGeometry struct {
	FillRule FillRule
	Data     *path.Data
}

// NewPathGeometry wraps d. A nil d describes an empty path.
func NewPathGeometry(d *path.Data) *PathGeometry {
	if d == nil {
		d = &path.Data{}
	}
	return &PathGeometry{Data: d}
}

// Polygon builds a closed path through pts.
func Polygon(pts ...Point) *PathGeometry {
	d := &path.Data{}
	for i, p := range pts {
		if i == 0 {
			d = d.MoveTo(toVec2(p))
		} else {
			d = d.LineTo(toVec2(p))
		}
	}
	if len(pts) > 0 {
		d = d.Close()
	}
	return NewPathGeometry(d)
}

// Bounds returns the box around all on-curve and control points.
func (g *PathGeometry) Bounds() Rect {
	if g.Data == nil || len(g.Data.Coords) == 0 {
		return EmptyRect()
	}
	r := EmptyRect()
	for _, c := range g.Data.Coords {
		r = r.UnionPoint(fromVec2(c))
	}
	return r
}

// Segments reports the number of drawing commands in the path.
func (g *PathGeometry) Segments() int {
	if g.Data == nil {
		return 0
	}
	n := 0
	for _, c := range g.Data.Cmds {
		if c != path.CmdMoveTo {
			n++
		}
	}
	return n
}

// GeometryGroup combines several geometries.
type GeometryGroup struct {
	FillRule FillRule
	Children []Geometry
}

func (g *GeometryGroup) Bounds() Rect {
	r := EmptyRect()
	for _, c := range g.Children {
		if c != nil {
			r = r.Union(c.Bounds())
		}
	}
	return r
}

func (*LineGeometry) geometryMarker()      {}
func (*RectangleGeometry) geometryMarker() {}
func (*EllipseGeometry) geometryMarker()   {}
func (*PathGeometry) geometryMarker()      {}
func (*GeometryGroup) geometryMarker()     {}

func toVec2(p Point) vec.Vec2   { return vec.Vec2{X: p.X, Y: p.Y} }
func fromVec2(v vec.Vec2) Point { return Point{X: v.X, Y: v.Y} }
