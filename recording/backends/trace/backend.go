// Package trace provides a playback backend that writes a text trace.
//
// Each operation becomes one line, indented by bracket depth. Resources
// are named by reference (brush#0, pen#1, ...) in order of first use, so
// two traces of the same recording are identical.
//
//	import _ "github.com/gogpu/drawing/recording/backends/trace"
//
//	b, _ := recording.NewBackend("trace")
//	r.Playback(b)
//	b.(recording.WriterBackend).WriteTo(os.Stdout)
package trace

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/drawing"
	"github.com/gogpu/drawing/recording"
)

func init() {
	recording.Register("trace", func() recording.Backend {
		return NewBackend()
	})
}

// Backend accumulates a text trace of the operations it receives.
type Backend struct {
	buf   bytes.Buffer
	pool  *recording.ResourcePool
	depth int
}

// Ensure Backend implements all required interfaces.
var _ recording.WriterBackend = (*Backend)(nil)

// NewBackend creates a new trace backend.
func NewBackend() *Backend {
	return &Backend{pool: recording.NewResourcePool()}
}

// Begin resets the trace.
func (b *Backend) Begin() error {
	b.buf.Reset()
	b.pool.Clear()
	b.depth = 0
	return nil
}

// End finishes the trace.
func (b *Backend) End() error {
	if b.depth != 0 {
		b.line("# %d bracket(s) left open", b.depth)
	}
	return nil
}

// WriteTo writes the trace to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// String returns the trace.
func (b *Backend) String() string {
	return b.buf.String()
}

// Resources returns the pool that names the traced resources.
func (b *Backend) Resources() *recording.ResourcePool {
	return b.pool
}

func (b *Backend) line(format string, args ...any) {
	b.buf.WriteString(strings.Repeat("  ", b.depth))
	fmt.Fprintf(&b.buf, format, args...)
	b.buf.WriteByte('\n')
}

// DrawLine traces a line.
func (b *Backend) DrawLine(pen *drawing.Pen, p0 drawing.Point, p0Anim *drawing.AnimationClock, p1 drawing.Point, p1Anim *drawing.AnimationClock) {
	b.line("DrawLine %v %v %v%s%s", b.pool.AddPen(pen), p0, p1,
		b.anim("p0", p0Anim), b.anim("p1", p1Anim))
}

// DrawRectangle traces a rectangle.
func (b *Backend) DrawRectangle(brush drawing.Brush, pen *drawing.Pen, rect drawing.Rect, rectAnim *drawing.AnimationClock) {
	b.line("DrawRectangle %v %v [%v]%s", b.pool.AddBrush(brush), b.pool.AddPen(pen), rect,
		b.anim("rect", rectAnim))
}

// DrawRoundedRectangle traces a rounded rectangle.
func (b *Backend) DrawRoundedRectangle(brush drawing.Brush, pen *drawing.Pen,
	rect drawing.Rect, rectAnim *drawing.AnimationClock,
	rx float64, rxAnim *drawing.AnimationClock,
	ry float64, ryAnim *drawing.AnimationClock,
) {
	b.line("DrawRoundedRectangle %v %v [%v] rx=%g ry=%g%s%s%s", b.pool.AddBrush(brush), b.pool.AddPen(pen), rect, rx, ry,
		b.anim("rect", rectAnim), b.anim("rx", rxAnim), b.anim("ry", ryAnim))
}

// DrawEllipse traces an ellipse.
func (b *Backend) DrawEllipse(brush drawing.Brush, pen *drawing.Pen,
	center drawing.Point, centerAnim *drawing.AnimationClock,
	rx float64, rxAnim *drawing.AnimationClock,
	ry float64, ryAnim *drawing.AnimationClock,
) {
	b.line("DrawEllipse %v %v %v rx=%g ry=%g%s%s%s", b.pool.AddBrush(brush), b.pool.AddPen(pen), center, rx, ry,
		b.anim("center", centerAnim), b.anim("rx", rxAnim), b.anim("ry", ryAnim))
}

// DrawGeometry traces a geometry and its kind.
func (b *Backend) DrawGeometry(brush drawing.Brush, pen *drawing.Pen, geometry drawing.Geometry) {
	b.line("DrawGeometry %v %v %v %s", b.pool.AddBrush(brush), b.pool.AddPen(pen), b.pool.AddGeometry(geometry), kind(geometry))
}

// DrawImage traces an image.
func (b *Backend) DrawImage(src drawing.ImageSource, rect drawing.Rect, rectAnim *drawing.AnimationClock) {
	b.line("DrawImage %v [%v]%s", b.pool.AddImage(src), rect, b.anim("rect", rectAnim))
}

// DrawGlyphRun traces a glyph run by glyph count.
func (b *Backend) DrawGlyphRun(brush drawing.Brush, run *drawing.GlyphRun) {
	glyphs := 0
	if run != nil {
		glyphs = len(run.GlyphIndices)
	}
	b.line("DrawGlyphRun %v glyphs=%d", b.pool.AddBrush(brush), glyphs)
}

// DrawVideo traces a video by source.
func (b *Backend) DrawVideo(player *drawing.MediaPlayer, rect drawing.Rect, rectAnim *drawing.AnimationClock) {
	source := "nil"
	if player != nil {
		source = fmt.Sprintf("%q", player.Source)
	}
	b.line("DrawVideo %s [%v]%s", source, rect, b.anim("rect", rectAnim))
}

// DrawDrawing traces a drawing by kind.
func (b *Backend) DrawDrawing(d drawing.Drawing) {
	b.line("DrawDrawing %s", kind(d))
}

// PushClip traces a clip and opens a bracket.
func (b *Backend) PushClip(clip drawing.Geometry) {
	b.push("PushClip %v %s", b.pool.AddGeometry(clip), kind(clip))
}

// PushOpacity traces an opacity and opens a bracket.
func (b *Backend) PushOpacity(opacity float64, anim *drawing.AnimationClock) {
	b.push("PushOpacity %g%s", opacity, b.anim("opacity", anim))
}

// PushTransform traces a transform and opens a bracket.
func (b *Backend) PushTransform(t drawing.Transform) {
	if drawing.IsNil(t) {
		b.push("PushTransform nil")
		return
	}
	b.push("PushTransform %s [%v]", kind(t), t.Value())
}

// PushGuidelineSet traces a guideline set and opens a bracket.
func (b *Backend) PushGuidelineSet(gs *drawing.GuidelineSet) {
	if gs == nil {
		b.push("PushGuidelineSet nil")
		return
	}
	b.push("PushGuidelineSet x=%v y=%v frozen=%t", gs.GuidelinesX, gs.GuidelinesY, gs.Frozen)
}

// PushEffect traces an effect and opens a bracket.
func (b *Backend) PushEffect(effect drawing.BitmapEffect, input *drawing.BitmapEffectInput) {
	area := "nil"
	if input != nil {
		area = "[" + input.AreaToApplyEffect.String() + "]"
	}
	b.push("PushEffect %s %s", kind(effect), area)
}

func (b *Backend) push(format string, args ...any) {
	b.line(format, args...)
	b.depth++
}

// Pop closes the innermost bracket. A Pop without one is traced and
// reported.
func (b *Backend) Pop() error {
	if b.depth == 0 {
		b.line("Pop # unbalanced")
		return drawing.ErrPopWithoutPush
	}
	b.depth--
	b.line("Pop")
	return nil
}

func (b *Backend) anim(name string, c *drawing.AnimationClock) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf(" %s~%v", name, b.pool.AddClock(c))
}

// kind returns the short type name of v, or "nil".
func kind(v any) string {
	if drawing.IsNil(v) {
		return "nil"
	}
	name := fmt.Sprintf("%T", v)
	name = strings.TrimPrefix(name, "*")
	return strings.TrimPrefix(name, "drawing.")
}
