package recording

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/gogpu/drawing"
)

var (
	// ErrRecorderClosed is returned when drawing into a recorder whose
	// context has been closed and not reopened.
	ErrRecorderClosed = errors.New("recording: recorder is closed")

	// ErrNotGroupTarget is returned by Open and Append on a recorder that
	// does not record into a DrawingGroup.
	ErrNotGroupTarget = errors.New("recording: Open and Append need a DrawingGroup target")

	// ErrStillOpen is returned by Open and Append while the previous
	// context is still open.
	ErrStillOpen = errors.New("recording: context is still open")
)

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithLogger sets the logger used by the recorder. By default it logs
// through drawing.Logger().
func WithLogger(l *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		if l != nil {
			r.logger = l
		}
	}
}

// Recorder drives a drawing.DrawingContext and keeps the command list
// that describes what was drawn. Every call is forwarded to the context;
// the command is appended only when the context materializes a node for
// it, so calls with missing payloads leave no trace in either.
//
//	v := drawing.NewDrawingVisual()
//	rec := recording.NewVisualRecorder(v)
//	rec.PushOpacity(0.5)
//	rec.DrawLine(pen, drawing.Pt(0, 0), drawing.Pt(100, 100))
//	r, err := rec.Finish()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	dc       *drawing.DrawingContext
	visual   *drawing.DrawingVisual
	group    *drawing.DrawingGroup
	commands []Command
	needPop  int
	closed   bool
	err      error
	logger   *slog.Logger
}

// NewRecorder records into an existing context. The resulting Recording
// has no root; use NewVisualRecorder or NewGroupRecorder to get one.
func NewRecorder(dc *drawing.DrawingContext, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		dc:       dc,
		commands: make([]Command, 0, 32),
		logger:   drawing.Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewVisualRecorder records into v.RenderOpen().
func NewVisualRecorder(v *drawing.DrawingVisual, opts ...RecorderOption) *Recorder {
	r := NewRecorder(v.RenderOpen(), opts...)
	r.visual = v
	return r
}

// NewGroupRecorder records into g.Open(), replacing g's children.
func NewGroupRecorder(g *drawing.DrawingGroup, opts ...RecorderOption) *Recorder {
	r := NewRecorder(g.Open(), opts...)
	r.group = g
	return r
}

func (r *Recorder) record(c Command) {
	r.logger.Debug("recording: command", "type", c.Type(), "index", len(r.commands))
	r.commands = append(r.commands, c)
}

// usable reports whether the context accepts calls, remembering the
// first misuse for Finish.
func (r *Recorder) usable(op string) bool {
	if !r.closed {
		return true
	}
	r.logger.Warn("recording: call on closed recorder ignored", "op", op)
	if r.err == nil {
		r.err = ErrRecorderClosed
	}
	return false
}

// Depth returns the number of brackets currently open.
func (r *Recorder) Depth() int { return r.needPop }

// Commands returns a copy of the commands recorded so far.
func (r *Recorder) Commands() []Command { return slices.Clone(r.commands) }

// --------------------------------------------------------------------------
// Geometry
// --------------------------------------------------------------------------

// DrawLine draws a line. Nothing is recorded for a nil pen.
func (r *Recorder) DrawLine(pen *drawing.Pen, p0, p1 drawing.Point) {
	r.DrawLineAnimated(pen, p0, nil, p1, nil)
}

// DrawLineAnimated draws a line with animated endpoints.
func (r *Recorder) DrawLineAnimated(pen *drawing.Pen, p0 drawing.Point, p0Anim *drawing.AnimationClock, p1 drawing.Point, p1Anim *drawing.AnimationClock) {
	if !r.usable("DrawLine") {
		return
	}
	r.dc.DrawLineAnimated(pen, p0, p0Anim, p1, p1Anim)
	if pen != nil {
		r.record(DrawLineCommand{Pen: pen, Point0: p0, Point1: p1, Point0Animation: p0Anim, Point1Animation: p1Anim})
	}
}

// DrawRectangle draws a rectangle. Nothing is recorded when both brush and
// pen are nil.
func (r *Recorder) DrawRectangle(brush drawing.Brush, pen *drawing.Pen, rect drawing.Rect) {
	r.DrawRectangleAnimated(brush, pen, rect, nil)
}

// DrawRectangleAnimated draws a rectangle with an animated rect.
func (r *Recorder) DrawRectangleAnimated(brush drawing.Brush, pen *drawing.Pen, rect drawing.Rect, rectAnim *drawing.AnimationClock) {
	if !r.usable("DrawRectangle") {
		return
	}
	r.dc.DrawRectangleAnimated(brush, pen, rect, rectAnim)
	if paints(brush, pen) {
		r.record(DrawRectangleCommand{Brush: brush, Pen: pen, Rect: rect, RectAnimation: rectAnim})
	}
}

// DrawRoundedRectangle draws a rectangle with rounded corners.
func (r *Recorder) DrawRoundedRectangle(brush drawing.Brush, pen *drawing.Pen, rect drawing.Rect, rx, ry float64) {
	r.DrawRoundedRectangleAnimated(brush, pen, rect, nil, rx, nil, ry, nil)
}

// DrawRoundedRectangleAnimated draws a rounded rectangle with animated
// parameters.
func (r *Recorder) DrawRoundedRectangleAnimated(brush drawing.Brush, pen *drawing.Pen,
	rect drawing.Rect, rectAnim *drawing.AnimationClock,
	rx float64, rxAnim *drawing.AnimationClock,
	ry float64, ryAnim *drawing.AnimationClock,
) {
	if !r.usable("DrawRoundedRectangle") {
		return
	}
	r.dc.DrawRoundedRectangleAnimated(brush, pen, rect, rectAnim, rx, rxAnim, ry, ryAnim)
	if paints(brush, pen) {
		r.record(DrawRoundedRectangleCommand{
			Brush: brush, Pen: pen, Rect: rect, RadiusX: rx, RadiusY: ry,
			RectAnimation: rectAnim, RadiusXAnimation: rxAnim, RadiusYAnimation: ryAnim,
		})
	}
}

// DrawEllipse draws an ellipse.
func (r *Recorder) DrawEllipse(brush drawing.Brush, pen *drawing.Pen, center drawing.Point, rx, ry float64) {
	r.DrawEllipseAnimated(brush, pen, center, nil, rx, nil, ry, nil)
}

// DrawEllipseAnimated draws an ellipse with animated parameters.
func (r *Recorder) DrawEllipseAnimated(brush drawing.Brush, pen *drawing.Pen,
	center drawing.Point, centerAnim *drawing.AnimationClock,
	rx float64, rxAnim *drawing.AnimationClock,
	ry float64, ryAnim *drawing.AnimationClock,
) {
	if !r.usable("DrawEllipse") {
		return
	}
	r.dc.DrawEllipseAnimated(brush, pen, center, centerAnim, rx, rxAnim, ry, ryAnim)
	if paints(brush, pen) {
		r.record(DrawEllipseCommand{
			Brush: brush, Pen: pen, Center: center, RadiusX: rx, RadiusY: ry,
			CenterAnimation: centerAnim, RadiusXAnimation: rxAnim, RadiusYAnimation: ryAnim,
		})
	}
}

// DrawGeometry draws a geometry. Nothing is recorded for a nil geometry
// or when both brush and pen are nil.
func (r *Recorder) DrawGeometry(brush drawing.Brush, pen *drawing.Pen, geometry drawing.Geometry) {
	if !r.usable("DrawGeometry") {
		return
	}
	r.dc.DrawGeometry(brush, pen, geometry)
	if paints(brush, pen) && !drawing.IsNil(geometry) {
		r.record(DrawGeometryCommand{Brush: brush, Pen: pen, Geometry: geometry})
	}
}

func paints(brush drawing.Brush, pen *drawing.Pen) bool {
	return !drawing.IsNil(brush) || pen != nil
}

// --------------------------------------------------------------------------
// Images, text, video
// --------------------------------------------------------------------------

// DrawImage draws an image.
func (r *Recorder) DrawImage(src drawing.ImageSource, rect drawing.Rect) {
	r.DrawImageAnimated(src, rect, nil)
}

// DrawImageAnimated draws an image with an animated rect.
func (r *Recorder) DrawImageAnimated(src drawing.ImageSource, rect drawing.Rect, rectAnim *drawing.AnimationClock) {
	if !r.usable("DrawImage") {
		return
	}
	r.dc.DrawImageAnimated(src, rect, rectAnim)
	if !drawing.IsNil(src) {
		r.record(DrawImageCommand{ImageSource: src, Rect: rect, RectAnimation: rectAnim})
	}
}

// DrawGlyphRun draws a glyph run. Both brush and run must be non-nil.
func (r *Recorder) DrawGlyphRun(brush drawing.Brush, run *drawing.GlyphRun) {
	if !r.usable("DrawGlyphRun") {
		return
	}
	r.dc.DrawGlyphRun(brush, run)
	if !drawing.IsNil(brush) && run != nil {
		r.record(DrawGlyphRunCommand{Brush: brush, GlyphRun: run})
	}
}

// DrawText draws formatted text. The context wraps the text in a
// guideline group, so the recorded commands are PushGuidelineSet,
// DrawText and Pop.
func (r *Recorder) DrawText(text *drawing.FormattedText, origin drawing.Point) {
	if !r.usable("DrawText") {
		return
	}
	r.dc.DrawText(text, origin)
	if text == nil {
		return
	}
	r.record(PushGuidelineSetCommand{GuidelineSet: drawing.TextGuidelines(text, origin)})
	r.record(DrawTextCommand{Text: text, Origin: origin})
	r.record(PopCommand{})
}

// DrawVideo draws a video frame.
func (r *Recorder) DrawVideo(player *drawing.MediaPlayer, rect drawing.Rect) {
	r.DrawVideoAnimated(player, rect, nil)
}

// DrawVideoAnimated draws a video frame with an animated rect.
func (r *Recorder) DrawVideoAnimated(player *drawing.MediaPlayer, rect drawing.Rect, rectAnim *drawing.AnimationClock) {
	if !r.usable("DrawVideo") {
		return
	}
	r.dc.DrawVideoAnimated(player, rect, rectAnim)
	if player != nil {
		r.record(DrawVideoCommand{Player: player, Rect: rect, RectAnimation: rectAnim})
	}
}

// DrawDrawing adds an existing drawing.
func (r *Recorder) DrawDrawing(d drawing.Drawing) {
	if !r.usable("DrawDrawing") {
		return
	}
	r.dc.DrawDrawing(d)
	if !drawing.IsNil(d) {
		r.record(DrawDrawingCommand{Drawing: d})
	}
}

// --------------------------------------------------------------------------
// Push / Pop
// --------------------------------------------------------------------------

// PushClip opens a clip bracket. A nil clip is recorded too.
func (r *Recorder) PushClip(clip drawing.Geometry) {
	if !r.usable("PushClip") {
		return
	}
	r.dc.PushClip(clip)
	r.pushed(PushClipCommand{Clip: clip})
}

// PushOpacity opens an opacity bracket.
func (r *Recorder) PushOpacity(opacity float64) {
	r.PushOpacityAnimated(opacity, nil)
}

// PushOpacityAnimated opens an animated opacity bracket.
func (r *Recorder) PushOpacityAnimated(opacity float64, anim *drawing.AnimationClock) {
	if !r.usable("PushOpacity") {
		return
	}
	r.dc.PushOpacityAnimated(opacity, anim)
	r.pushed(PushOpacityCommand{Opacity: opacity, OpacityAnimation: anim})
}

// PushTransform opens a transform bracket.
func (r *Recorder) PushTransform(t drawing.Transform) {
	if !r.usable("PushTransform") {
		return
	}
	r.dc.PushTransform(t)
	r.pushed(PushTransformCommand{Transform: t})
}

// PushGuidelineSet opens a guideline bracket.
func (r *Recorder) PushGuidelineSet(gs *drawing.GuidelineSet) {
	if !r.usable("PushGuidelineSet") {
		return
	}
	r.dc.PushGuidelineSet(gs)
	r.pushed(PushGuidelineSetCommand{GuidelineSet: gs})
}

// PushEffect opens a bitmap effect bracket.
func (r *Recorder) PushEffect(effect drawing.BitmapEffect, input *drawing.BitmapEffectInput) {
	if !r.usable("PushEffect") {
		return
	}
	r.dc.PushEffect(effect, input)
	r.pushed(PushEffectCommand{Effect: effect, EffectInput: input})
}

func (r *Recorder) pushed(c Command) {
	r.needPop++
	r.record(c)
}

// Pop closes the innermost bracket. The command is recorded only if the
// context accepted the Pop.
func (r *Recorder) Pop() error {
	if r.closed {
		return ErrRecorderClosed
	}
	if err := r.dc.Pop(); err != nil {
		return err
	}
	r.needPop--
	r.record(PopCommand{})
	return nil
}

// --------------------------------------------------------------------------
// Lifecycle
// --------------------------------------------------------------------------

// Close closes the context, which implicitly pops every open bracket.
// One Pop command is appended per bracket it closed.
func (r *Recorder) Close() error {
	if r.closed {
		return ErrRecorderClosed
	}
	if err := r.dc.Close(); err != nil {
		return err
	}
	r.closed = true
	for ; r.needPop > 0; r.needPop-- {
		r.record(PopCommand{})
	}
	return nil
}

// Open reopens a DrawingGroup target with a context that replaces the
// group's children. The command list restarts empty.
func (r *Recorder) Open() error {
	if err := r.reopenable(); err != nil {
		return err
	}
	r.dc = r.group.Open()
	r.commands = r.commands[:0]
	r.closed = false
	return nil
}

// Append reopens a DrawingGroup target with a context that adds to the
// group's children. The command list is kept.
func (r *Recorder) Append() error {
	if err := r.reopenable(); err != nil {
		return err
	}
	r.dc = r.group.Append()
	r.closed = false
	return nil
}

func (r *Recorder) reopenable() error {
	if r.group == nil {
		return ErrNotGroupTarget
	}
	if !r.closed {
		return ErrStillOpen
	}
	return nil
}

// Finish closes the recorder if it is still open and returns the
// recording. The returned error reports the first call made on a closed
// recorder, if any.
func (r *Recorder) Finish() (*Recording, error) {
	if !r.closed {
		if err := r.Close(); err != nil {
			return nil, err
		}
	}
	rec := &Recording{commands: slices.Clone(r.commands)}
	switch {
	case r.visual != nil:
		rec.root = r.visual.Drawing()
	case r.group != nil:
		rec.root = r.group
	}
	return rec, r.err
}
