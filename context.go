package drawing

import "io"

// DrawingContext records drawing operations into a tree of Drawings.
// Every Draw method appends one leaf to the current group, and every Push
// method opens a child group that receives subsequent content until the
// matching Pop. Calls with a missing payload record nothing.
//
// Content is committed to its owner (a DrawingVisual or DrawingGroup) by
// Close. A DrawingContext is not safe for concurrent use.
type DrawingContext struct {
	stack  []*DrawingGroup // stack[0] collects top-level content
	commit func([]Drawing)
	closed bool
}

// Ensure DrawingContext implements io.Closer
var _ io.Closer = (*DrawingContext)(nil)

func newDrawingContext(commit func([]Drawing)) *DrawingContext {
	return &DrawingContext{
		stack:  []*DrawingGroup{NewDrawingGroup()},
		commit: commit,
	}
}

// Depth returns the number of open Push brackets.
func (dc *DrawingContext) Depth() int {
	return len(dc.stack) - 1
}

func (dc *DrawingContext) add(op string, d Drawing) {
	if dc.closed {
		Logger().Warn("drawing: operation on closed context ignored", "op", op)
		return
	}
	cur := dc.stack[len(dc.stack)-1]
	cur.Children = append(cur.Children, d)
}

func (dc *DrawingContext) push(op string, g *DrawingGroup) {
	if dc.closed {
		Logger().Warn("drawing: operation on closed context ignored", "op", op)
		return
	}
	dc.add(op, g)
	dc.stack = append(dc.stack, g)
}

// --------------------------------------------------------------------------
// Geometry
// --------------------------------------------------------------------------

// DrawLine strokes the segment from p0 to p1. A nil pen draws nothing.
func (dc *DrawingContext) DrawLine(pen *Pen, p0, p1 Point) {
	dc.DrawLineAnimated(pen, p0, nil, p1, nil)
}

// DrawLineAnimated is DrawLine with animated endpoints.
func (dc *DrawingContext) DrawLineAnimated(pen *Pen, p0 Point, p0Anim *AnimationClock, p1 Point, p1Anim *AnimationClock) {
	if pen == nil {
		return
	}
	dc.add("DrawLine", &GeometryDrawing{
		Pen: pen,
		Geometry: &LineGeometry{
			StartPoint:          p0,
			EndPoint:            p1,
			StartPointAnimation: p0Anim,
			EndPointAnimation:   p1Anim,
		},
	})
}

// DrawRectangle fills and strokes rect. Nothing is drawn when both brush
// and pen are nil.
func (dc *DrawingContext) DrawRectangle(brush Brush, pen *Pen, rect Rect) {
	dc.DrawRectangleAnimated(brush, pen, rect, nil)
}

// DrawRectangleAnimated is DrawRectangle with an animated rect.
func (dc *DrawingContext) DrawRectangleAnimated(brush Brush, pen *Pen, rect Rect, rectAnim *AnimationClock) {
	if IsNil(brush) && pen == nil {
		return
	}
	dc.add("DrawRectangle", &GeometryDrawing{
		Brush:    brush,
		Pen:      pen,
		Geometry: &RectangleGeometry{Rect: rect, RectAnimation: rectAnim},
	})
}

// DrawRoundedRectangle fills and strokes a rectangle with rounded corners.
func (dc *DrawingContext) DrawRoundedRectangle(brush Brush, pen *Pen, rect Rect, rx, ry float64) {
	dc.DrawRoundedRectangleAnimated(brush, pen, rect, nil, rx, nil, ry, nil)
}

// DrawRoundedRectangleAnimated is DrawRoundedRectangle with animated
// parameters.
func (dc *DrawingContext) DrawRoundedRectangleAnimated(brush Brush, pen *Pen,
	rect Rect, rectAnim *AnimationClock,
	rx float64, rxAnim *AnimationClock,
	ry float64, ryAnim *AnimationClock,
) {
	if IsNil(brush) && pen == nil {
		return
	}
	dc.add("DrawRoundedRectangle", &GeometryDrawing{
		Brush: brush,
		Pen:   pen,
		Geometry: &RectangleGeometry{
			Rect:             rect,
			RadiusX:          rx,
			RadiusY:          ry,
			RectAnimation:    rectAnim,
			RadiusXAnimation: rxAnim,
			RadiusYAnimation: ryAnim,
		},
	})
}

// DrawEllipse fills and strokes an ellipse.
func (dc *DrawingContext) DrawEllipse(brush Brush, pen *Pen, center Point, rx, ry float64) {
	dc.DrawEllipseAnimated(brush, pen, center, nil, rx, nil, ry, nil)
}

// DrawEllipseAnimated is DrawEllipse with animated parameters.
func (dc *DrawingContext) DrawEllipseAnimated(brush Brush, pen *Pen,
	center Point, centerAnim *AnimationClock,
	rx float64, rxAnim *AnimationClock,
	ry float64, ryAnim *AnimationClock,
) {
	if IsNil(brush) && pen == nil {
		return
	}
	dc.add("DrawEllipse", &GeometryDrawing{
		Brush: brush,
		Pen:   pen,
		Geometry: &EllipseGeometry{
			Center:           center,
			RadiusX:          rx,
			RadiusY:          ry,
			CenterAnimation:  centerAnim,
			RadiusXAnimation: rxAnim,
			RadiusYAnimation: ryAnim,
		},
	})
}

// DrawGeometry fills and strokes an arbitrary geometry.
func (dc *DrawingContext) DrawGeometry(brush Brush, pen *Pen, geometry Geometry) {
	if (IsNil(brush) && pen == nil) || IsNil(geometry) {
		return
	}
	dc.add("DrawGeometry", &GeometryDrawing{Brush: brush, Pen: pen, Geometry: geometry})
}

// --------------------------------------------------------------------------
// Images, text, video
// --------------------------------------------------------------------------

// DrawImage draws src into rect.
func (dc *DrawingContext) DrawImage(src ImageSource, rect Rect) {
	dc.DrawImageAnimated(src, rect, nil)
}

// DrawImageAnimated is DrawImage with an animated rect.
func (dc *DrawingContext) DrawImageAnimated(src ImageSource, rect Rect, rectAnim *AnimationClock) {
	if IsNil(src) {
		return
	}
	dc.add("DrawImage", &ImageDrawing{ImageSource: src, Rect: rect, RectAnimation: rectAnim})
}

// DrawGlyphRun draws run with brush. Both must be non-nil.
func (dc *DrawingContext) DrawGlyphRun(brush Brush, run *GlyphRun) {
	if IsNil(brush) || run == nil {
		return
	}
	dc.add("DrawGlyphRun", &GlyphRunDrawing{ForegroundBrush: brush, GlyphRun: run})
}

// DrawText lays out text with its top-left corner at origin. The glyph run
// is wrapped in a group carrying the guideline set from TextGuidelines.
func (dc *DrawingContext) DrawText(text *FormattedText, origin Point) {
	if text == nil {
		return
	}
	if dc.closed {
		Logger().Warn("drawing: operation on closed context ignored", "op", "DrawText")
		return
	}
	g := NewDrawingGroup(&GlyphRunDrawing{
		ForegroundBrush: text.Brush(),
		GlyphRun:        text.GlyphRun(origin),
	})
	g.GuidelineSet = TextGuidelines(text, origin)
	dc.add("DrawText", g)
}

// TextGuidelines returns the frozen guideline set DrawText pushes around
// text drawn at origin: one horizontal guideline on the baseline and one
// at zero.
func TextGuidelines(text *FormattedText, origin Point) *GuidelineSet {
	gs := &GuidelineSet{GuidelinesY: []float64{origin.Y + text.Baseline(), 0}}
	gs.Freeze()
	return gs
}

// DrawVideo draws the current frame of player into rect.
func (dc *DrawingContext) DrawVideo(player *MediaPlayer, rect Rect) {
	dc.DrawVideoAnimated(player, rect, nil)
}

// DrawVideoAnimated is DrawVideo with an animated rect.
func (dc *DrawingContext) DrawVideoAnimated(player *MediaPlayer, rect Rect, rectAnim *AnimationClock) {
	if player == nil {
		return
	}
	dc.add("DrawVideo", &VideoDrawing{Player: player, Rect: rect, RectAnimation: rectAnim})
}

// DrawDrawing adds an existing drawing as a child. The drawing is shared,
// not copied.
func (dc *DrawingContext) DrawDrawing(d Drawing) {
	if IsNil(d) {
		return
	}
	dc.add("DrawDrawing", d)
}

// --------------------------------------------------------------------------
// Push / Pop
// --------------------------------------------------------------------------

// PushClip clips subsequent content to clip until the matching Pop.
// A nil clip still opens a bracket.
func (dc *DrawingContext) PushClip(clip Geometry) {
	g := NewDrawingGroup()
	if !IsNil(clip) {
		g.ClipGeometry = clip
	}
	dc.push("PushClip", g)
}

// PushOpacity applies opacity to subsequent content until the matching Pop.
func (dc *DrawingContext) PushOpacity(opacity float64) {
	dc.PushOpacityAnimated(opacity, nil)
}

// PushOpacityAnimated is PushOpacity with an animated value.
func (dc *DrawingContext) PushOpacityAnimated(opacity float64, anim *AnimationClock) {
	g := NewDrawingGroup()
	g.Opacity = opacity
	g.OpacityAnimation = anim
	dc.push("PushOpacity", g)
}

// PushTransform transforms subsequent content until the matching Pop.
func (dc *DrawingContext) PushTransform(t Transform) {
	g := NewDrawingGroup()
	if !IsNil(t) {
		g.Transform = t
	}
	dc.push("PushTransform", g)
}

// PushGuidelineSet applies snapping guidelines until the matching Pop.
func (dc *DrawingContext) PushGuidelineSet(gs *GuidelineSet) {
	g := NewDrawingGroup()
	g.GuidelineSet = gs
	dc.push("PushGuidelineSet", g)
}

// PushEffect applies a legacy bitmap effect until the matching Pop.
func (dc *DrawingContext) PushEffect(effect BitmapEffect, input *BitmapEffectInput) {
	g := NewDrawingGroup()
	if !IsNil(effect) {
		g.BitmapEffect = effect
	}
	g.BitmapEffectInput = input
	dc.push("PushEffect", g)
}

// Pop closes the innermost open bracket.
func (dc *DrawingContext) Pop() error {
	if dc.closed {
		return ErrContextClosed
	}
	if len(dc.stack) == 1 {
		return ErrPopWithoutPush
	}
	dc.stack = dc.stack[:len(dc.stack)-1]
	return nil
}

// Close pops any open brackets and commits the recorded content.
func (dc *DrawingContext) Close() error {
	if dc.closed {
		return ErrContextClosed
	}
	dc.closed = true
	dc.stack = dc.stack[:1]
	dc.commit(dc.stack[0].Children)
	return nil
}

// DrawingVisual owns the drawing produced by its RenderOpen context.
type DrawingVisual struct {
	content *DrawingGroup
}

// NewDrawingVisual returns a visual with no content.
func NewDrawingVisual() *DrawingVisual {
	return &DrawingVisual{}
}

// RenderOpen returns a context whose content replaces the visual's
// content on Close.
func (v *DrawingVisual) RenderOpen() *DrawingContext {
	return newDrawingContext(func(children []Drawing) {
		if len(children) == 0 {
			v.content = nil
			return
		}
		v.content = NewDrawingGroup(children...)
	})
}

// Drawing returns the visual's content as a group with default state, or
// nil if nothing was recorded.
func (v *DrawingVisual) Drawing() *DrawingGroup {
	return v.content
}
