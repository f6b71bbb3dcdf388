package drawing

import (
	"math"
	"strings"
)

// Rect is an axis-aligned rectangle described by its top-left corner and
// its size. The empty rectangle is (+Inf, +Inf, -Inf, -Inf); see EmptyRect.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect returns a rectangle, rejecting negative dimensions.
func NewRect(x, y, width, height float64) (Rect, error) {
	if width < 0 || height < 0 {
		return Rect{}, ErrNegativeSize
	}
	return Rect{X: x, Y: y, Width: width, Height: height}, nil
}

// RectFromPoints returns the smallest rectangle containing both points.
func RectFromPoints(p1, p2 Point) Rect {
	return Rect{
		X:      math.Min(p1.X, p2.X),
		Y:      math.Min(p1.Y, p2.Y),
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

// RectFromPointVector returns the rectangle spanned by p and p+v.
func RectFromPointVector(p Point, v Vector) Rect {
	return RectFromPoints(p, p.Add(v))
}

// RectFromLocationSize returns a rectangle at p with size s.
// An empty size yields the empty rectangle.
func RectFromLocationSize(p Point, s Size) Rect {
	if s.IsEmpty() {
		return EmptyRect()
	}
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// RectFromSize returns a rectangle at the origin with size s.
func RectFromSize(s Size) Rect {
	return RectFromLocationSize(Point{}, s)
}

// EmptyRect returns the empty rectangle.
func EmptyRect() Rect {
	return Rect{
		X:      math.Inf(1),
		Y:      math.Inf(1),
		Width:  math.Inf(-1),
		Height: math.Inf(-1),
	}
}

// IsEmpty reports whether r is the empty rectangle.
func (r Rect) IsEmpty() bool {
	return r.Width < 0
}

// Location returns the top-left corner.
func (r Rect) Location() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the size of r, or EmptySize for the empty rectangle.
func (r Rect) Size() Size {
	if r.IsEmpty() {
		return EmptySize()
	}
	return Size{Width: r.Width, Height: r.Height}
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Top() float64  { return r.Y }

// Right returns X+Width, or -Infinity for the empty rectangle.
func (r Rect) Right() float64 {
	if r.IsEmpty() {
		return math.Inf(-1)
	}
	return r.X + r.Width
}

// Bottom returns Y+Height, or -Infinity for the empty rectangle.
func (r Rect) Bottom() float64 {
	if r.IsEmpty() {
		return math.Inf(-1)
	}
	return r.Y + r.Height
}

func (r Rect) TopLeft() Point     { return Point{X: r.Left(), Y: r.Top()} }
func (r Rect) TopRight() Point    { return Point{X: r.Right(), Y: r.Top()} }
func (r Rect) BottomLeft() Point  { return Point{X: r.Left(), Y: r.Bottom()} }
func (r Rect) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Contains reports whether p lies inside r or on its edge.
func (r Rect) Contains(p Point) bool {
	if r.IsEmpty() {
		return false
	}
	return p.X >= r.X && p.X-r.Width <= r.X &&
		p.Y >= r.Y && p.Y-r.Height <= r.Y
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X <= o.X && r.Y <= o.Y &&
		r.X+r.Width >= o.X+o.Width &&
		r.Y+r.Height >= o.Y+o.Height
}

// IntersectsWith reports whether r and o overlap or touch.
func (r Rect) IntersectsWith(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.Left() <= r.Right() && o.Right() >= r.Left() &&
		o.Top() <= r.Bottom() && o.Bottom() >= r.Top()
}

// Intersect returns the intersection of r and o, or the empty rectangle.
func (r Rect) Intersect(o Rect) Rect {
	if !r.IntersectsWith(o) {
		return EmptyRect()
	}
	left := math.Max(r.Left(), o.Left())
	top := math.Max(r.Top(), o.Top())
	return Rect{
		X:      left,
		Y:      top,
		Width:  math.Max(math.Min(r.Right(), o.Right())-left, 0),
		Height: math.Max(math.Min(r.Bottom(), o.Bottom())-top, 0),
	}
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	left := math.Min(r.Left(), o.Left())
	top := math.Min(r.Top(), o.Top())
	u := Rect{X: left, Y: top}

	if math.IsInf(r.Width, 1) || math.IsInf(o.Width, 1) {
		u.Width = math.Inf(1)
	} else {
		u.Width = math.Max(math.Max(r.Right(), o.Right())-left, 0)
	}
	if math.IsInf(r.Height, 1) || math.IsInf(o.Height, 1) {
		u.Height = math.Inf(1)
	} else {
		u.Height = math.Max(math.Max(r.Bottom(), o.Bottom())-top, 0)
	}
	return u
}

// UnionPoint returns the smallest rectangle containing r and p.
func (r Rect) UnionPoint(p Point) Rect {
	return r.Union(RectFromPoints(p, p))
}

// Offset returns r moved by dx and dy. The empty rectangle is returned unchanged.
func (r Rect) Offset(dx, dy float64) Rect {
	if r.IsEmpty() {
		return r
	}
	r.X += dx
	r.Y += dy
	return r
}

// Inflate grows r by w on the left and right and by h on the top and bottom.
// Shrinking past zero yields the empty rectangle.
func (r Rect) Inflate(w, h float64) Rect {
	if r.IsEmpty() {
		return r
	}
	r.X -= w
	r.Y -= h
	r.Width += 2 * w
	r.Height += 2 * h
	if !(r.Width >= 0 && r.Height >= 0) {
		return EmptyRect()
	}
	return r
}

// Scale multiplies the position and size of r by sx and sy.
func (r Rect) Scale(sx, sy float64) Rect {
	if r.IsEmpty() {
		return r
	}
	r.X *= sx
	r.Y *= sy
	r.Width *= sx
	r.Height *= sy
	if sx < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if sy < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Transform returns the bounding box of r transformed by m.
func (r Rect) Transform(m Matrix) Rect {
	if r.IsEmpty() || m.IsIdentity() {
		return r
	}
	pts := m.TransformPoints([]Point{r.TopLeft(), r.TopRight(), r.BottomLeft(), r.BottomRight()})
	out := RectFromPoints(pts[0], pts[0])
	for _, p := range pts[1:] {
		out = out.UnionPoint(p)
	}
	return out
}

// String returns "x,y,width,height" or "Empty".
func (r Rect) String() string {
	if r.IsEmpty() {
		return "Empty"
	}
	return joinFloats(r.X, r.Y, r.Width, r.Height)
}

// ParseRect parses "x,y,width,height" or "Empty".
func ParseRect(s string) (Rect, error) {
	if strings.TrimSpace(s) == "Empty" {
		return EmptyRect(), nil
	}
	n, err := parseNumbers("Rect", s, 4)
	if err != nil {
		return Rect{}, err
	}
	r, err := NewRect(n[0], n[1], n[2], n[3])
	if err != nil {
		return Rect{}, &ParseError{Type: "Rect", Input: s, Err: err}
	}
	return r, nil
}
