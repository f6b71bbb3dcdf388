package drawing

// Drawing is a node of a materialized drawing tree: one of GeometryDrawing,
// ImageDrawing, GlyphRunDrawing, VideoDrawing or DrawingGroup.
type Drawing interface {
	// Bounds returns the untransformed bounding box of the drawing.
	Bounds() Rect

	drawingMarker()
}

// GeometryDrawing fills and outlines a geometry.
type GeometryDrawing struct {
	Brush    Brush
	Pen      *Pen
	Geometry Geometry
}

func (d *GeometryDrawing) Bounds() Rect {
	if d.Geometry == nil {
		return EmptyRect()
	}
	b := d.Geometry.Bounds()
	if d.Pen != nil && !b.IsEmpty() {
		b = b.Inflate(d.Pen.Thickness/2, d.Pen.Thickness/2)
	}
	return b
}

// ImageDrawing draws an image into Rect.
type ImageDrawing struct {
	ImageSource   ImageSource
	Rect          Rect
	RectAnimation *AnimationClock
}

func (d *ImageDrawing) Bounds() Rect { return d.Rect }

// GlyphRunDrawing draws a run of glyphs.
type GlyphRunDrawing struct {
	ForegroundBrush Brush
	GlyphRun        *GlyphRun
}

func (d *GlyphRunDrawing) Bounds() Rect {
	if d.GlyphRun == nil {
		return EmptyRect()
	}
	return d.GlyphRun.Bounds()
}

// VideoDrawing draws the current frame of a media player into Rect.
type VideoDrawing struct {
	Player        *MediaPlayer
	Rect          Rect
	RectAnimation *AnimationClock
}

func (d *VideoDrawing) Bounds() Rect { return d.Rect }

// DrawingGroup is an interior node. Its state attributes apply to all
// children. A group created by a Push operation carries exactly that
// push's attribute; every other attribute keeps its default.
type DrawingGroup struct {
	// Opacity defaults to 1.
	Opacity          float64
	OpacityAnimation *AnimationClock

	Transform    Transform
	ClipGeometry Geometry
	GuidelineSet *GuidelineSet

	BitmapEffect      BitmapEffect
	BitmapEffectInput *BitmapEffectInput

	Children []Drawing
}

// NewDrawingGroup returns an empty group with default attributes.
func NewDrawingGroup(children ...Drawing) *DrawingGroup {
	return &DrawingGroup{Opacity: 1, Children: children}
}

// HasDefaultState reports whether every attribute of g is at its default.
func (g *DrawingGroup) HasDefaultState() bool {
	return g.Opacity == 1 && g.OpacityAnimation == nil &&
		g.Transform == nil && g.ClipGeometry == nil && g.GuidelineSet == nil &&
		g.BitmapEffect == nil && g.BitmapEffectInput == nil
}

// Bounds returns the union of the children's bounds, transformed and
// clipped by the group.
func (g *DrawingGroup) Bounds() Rect {
	b := EmptyRect()
	for _, c := range g.Children {
		if c != nil {
			b = b.Union(c.Bounds())
		}
	}
	if g.ClipGeometry != nil {
		b = b.Intersect(g.ClipGeometry.Bounds())
	}
	if g.Transform != nil {
		b = b.Transform(g.Transform.Value())
	}
	return b
}

// Open returns a context whose content replaces the group's children
// when it is closed.
func (g *DrawingGroup) Open() *DrawingContext {
	return newDrawingContext(func(children []Drawing) {
		g.Children = children
	})
}

// Append returns a context whose content is added after the group's
// existing children when it is closed.
func (g *DrawingGroup) Append() *DrawingContext {
	return newDrawingContext(func(children []Drawing) {
		g.Children = append(g.Children, children...)
	})
}

func (*GeometryDrawing) drawingMarker() {}
func (*ImageDrawing) drawingMarker()    {}
func (*GlyphRunDrawing) drawingMarker() {}
func (*VideoDrawing) drawingMarker()    {}
func (*DrawingGroup) drawingMarker()    {}

// Walk visits d and its descendants in pre-order. Children of a group
// are skipped when fn returns false for the group.
func Walk(d Drawing, fn func(d Drawing, depth int) bool) {
	walk(d, 0, fn)
}

func walk(d Drawing, depth int, fn func(Drawing, int) bool) {
	if d == nil || !fn(d, depth) {
		return
	}
	if g, ok := d.(*DrawingGroup); ok {
		for _, c := range g.Children {
			walk(c, depth+1, fn)
		}
	}
}
