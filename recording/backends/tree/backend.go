// Package tree provides a playback backend that rebuilds a drawing tree.
//
// Replaying a Recording onto the tree backend runs every command against a
// fresh drawing.DrawingContext, so the result can be compared with the
// tree the recording was made from.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/drawing/recording/backends/tree"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("tree")
//
//	// Or create directly
//	backend := tree.NewBackend()
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	root := backend.Drawing()
package tree

import (
	"errors"

	"github.com/gogpu/drawing"
	"github.com/gogpu/drawing/recording"
)

func init() {
	recording.Register("tree", func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned by End when Begin was not called.
var ErrNotStarted = errors.New("tree: playback not started")

// Backend replays commands onto a drawing.DrawingContext owned by a
// drawing.DrawingVisual.
type Backend struct {
	visual *drawing.DrawingVisual
	dc     *drawing.DrawingContext
}

// Ensure Backend implements all required interfaces.
var _ recording.DrawingBackend = (*Backend)(nil)

// NewBackend creates a new tree backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin opens a fresh visual. Any previous result is discarded.
func (b *Backend) Begin() error {
	b.visual = drawing.NewDrawingVisual()
	b.dc = b.visual.RenderOpen()
	return nil
}

// End closes the context, committing the tree.
func (b *Backend) End() error {
	if b.dc == nil {
		return ErrNotStarted
	}
	return b.dc.Close()
}

// Drawing returns the rebuilt tree, or nil if nothing was drawn.
func (b *Backend) Drawing() *drawing.DrawingGroup {
	if b.visual == nil {
		return nil
	}
	return b.visual.Drawing()
}

// Depth returns the number of brackets open in the playback.
func (b *Backend) Depth() int {
	if b.dc == nil {
		return 0
	}
	return b.dc.Depth()
}

// DrawLine draws a line with pen.
func (b *Backend) DrawLine(pen *drawing.Pen, p0 drawing.Point, p0Anim *drawing.AnimationClock, p1 drawing.Point, p1Anim *drawing.AnimationClock) {
	b.dc.DrawLineAnimated(pen, p0, p0Anim, p1, p1Anim)
}

// DrawRectangle draws a rectangle with brush and pen.
func (b *Backend) DrawRectangle(brush drawing.Brush, pen *drawing.Pen, rect drawing.Rect, rectAnim *drawing.AnimationClock) {
	b.dc.DrawRectangleAnimated(brush, pen, rect, rectAnim)
}

// DrawRoundedRectangle draws a rectangle with rounded corners.
func (b *Backend) DrawRoundedRectangle(brush drawing.Brush, pen *drawing.Pen,
	rect drawing.Rect, rectAnim *drawing.AnimationClock,
	rx float64, rxAnim *drawing.AnimationClock,
	ry float64, ryAnim *drawing.AnimationClock,
) {
	b.dc.DrawRoundedRectangleAnimated(brush, pen, rect, rectAnim, rx, rxAnim, ry, ryAnim)
}

// DrawEllipse draws an ellipse around center.
func (b *Backend) DrawEllipse(brush drawing.Brush, pen *drawing.Pen,
	center drawing.Point, centerAnim *drawing.AnimationClock,
	rx float64, rxAnim *drawing.AnimationClock,
	ry float64, ryAnim *drawing.AnimationClock,
) {
	b.dc.DrawEllipseAnimated(brush, pen, center, centerAnim, rx, rxAnim, ry, ryAnim)
}

// DrawGeometry draws geometry with brush and pen.
func (b *Backend) DrawGeometry(brush drawing.Brush, pen *drawing.Pen, geometry drawing.Geometry) {
	b.dc.DrawGeometry(brush, pen, geometry)
}

// DrawImage draws src into rect.
func (b *Backend) DrawImage(src drawing.ImageSource, rect drawing.Rect, rectAnim *drawing.AnimationClock) {
	b.dc.DrawImageAnimated(src, rect, rectAnim)
}

// DrawGlyphRun draws run with brush.
func (b *Backend) DrawGlyphRun(brush drawing.Brush, run *drawing.GlyphRun) {
	b.dc.DrawGlyphRun(brush, run)
}

// DrawVideo draws the current frame of player into rect.
func (b *Backend) DrawVideo(player *drawing.MediaPlayer, rect drawing.Rect, rectAnim *drawing.AnimationClock) {
	b.dc.DrawVideoAnimated(player, rect, rectAnim)
}

// DrawDrawing adds d as a child.
func (b *Backend) DrawDrawing(d drawing.Drawing) {
	b.dc.DrawDrawing(d)
}

// PushClip opens a group clipped to clip.
func (b *Backend) PushClip(clip drawing.Geometry) {
	b.dc.PushClip(clip)
}

// PushOpacity opens a group with the given opacity.
func (b *Backend) PushOpacity(opacity float64, anim *drawing.AnimationClock) {
	b.dc.PushOpacityAnimated(opacity, anim)
}

// PushTransform opens a group transformed by t.
func (b *Backend) PushTransform(t drawing.Transform) {
	b.dc.PushTransform(t)
}

// PushGuidelineSet opens a group snapped to gs.
func (b *Backend) PushGuidelineSet(gs *drawing.GuidelineSet) {
	b.dc.PushGuidelineSet(gs)
}

// PushEffect opens a group with a bitmap effect.
func (b *Backend) PushEffect(effect drawing.BitmapEffect, input *drawing.BitmapEffectInput) {
	b.dc.PushEffect(effect, input)
}

// Pop closes the innermost group.
func (b *Backend) Pop() error {
	return b.dc.Pop()
}
