package recording

import (
	"io"

	"github.com/gogpu/drawing"
)

// Backend is the interface that all playback backends must implement.
// Backends receive the operations of a Recording in order and translate
// them to their output (a drawing tree, a text trace, ...).
//
// The method set mirrors drawing.DrawingContext with the animated forms
// only: a command recorded without animation replays with nil clocks.
// DrawText has no counterpart; Playback replays it as the text's glyph
// run because the guideline bracket around it is already in the list.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register("trace", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
type Backend interface {
	// Lifecycle methods

	// Begin prepares the backend for a new playback.
	Begin() error

	// End finishes the playback. Output accessors are valid afterwards.
	End() error

	// Draw methods

	DrawLine(pen *drawing.Pen, p0 drawing.Point, p0Anim *drawing.AnimationClock, p1 drawing.Point, p1Anim *drawing.AnimationClock)
	DrawRectangle(brush drawing.Brush, pen *drawing.Pen, rect drawing.Rect, rectAnim *drawing.AnimationClock)
	DrawRoundedRectangle(brush drawing.Brush, pen *drawing.Pen,
		rect drawing.Rect, rectAnim *drawing.AnimationClock,
		rx float64, rxAnim *drawing.AnimationClock,
		ry float64, ryAnim *drawing.AnimationClock)
	DrawEllipse(brush drawing.Brush, pen *drawing.Pen,
		center drawing.Point, centerAnim *drawing.AnimationClock,
		rx float64, rxAnim *drawing.AnimationClock,
		ry float64, ryAnim *drawing.AnimationClock)
	DrawGeometry(brush drawing.Brush, pen *drawing.Pen, geometry drawing.Geometry)
	DrawImage(src drawing.ImageSource, rect drawing.Rect, rectAnim *drawing.AnimationClock)
	DrawGlyphRun(brush drawing.Brush, run *drawing.GlyphRun)
	DrawVideo(player *drawing.MediaPlayer, rect drawing.Rect, rectAnim *drawing.AnimationClock)
	DrawDrawing(d drawing.Drawing)

	// Bracket methods

	PushClip(clip drawing.Geometry)
	PushOpacity(opacity float64, anim *drawing.AnimationClock)
	PushTransform(t drawing.Transform)
	PushGuidelineSet(gs *drawing.GuidelineSet)
	PushEffect(effect drawing.BitmapEffect, input *drawing.BitmapEffectInput)

	// Pop closes the innermost bracket. It fails when none is open.
	Pop() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the output to w.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// DrawingBackend extends Backend with access to a materialized drawing
// tree.
type DrawingBackend interface {
	Backend

	// Drawing returns the tree built by the playback, or nil if nothing
	// was drawn. This should only be called after End().
	Drawing() *drawing.DrawingGroup
}
