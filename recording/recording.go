package recording

import (
	"fmt"
	"slices"

	"github.com/gogpu/drawing"
)

// Recording is an immutable pair of a command list and the drawing tree
// the commands produced. It can be replayed to any Backend implementation.
type Recording struct {
	root     *drawing.DrawingGroup
	commands []Command
}

// NewRecording wraps an existing tree and command list. cmds is copied.
func NewRecording(root *drawing.DrawingGroup, cmds []Command) *Recording {
	return &Recording{root: root, commands: slices.Clone(cmds)}
}

// Root returns the materialized tree, or nil if nothing was drawn or the
// recorder had no visual or group target.
func (r *Recording) Root() *drawing.DrawingGroup {
	return r.root
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Resources returns a pool of the distinct resources the commands
// reference.
func (r *Recording) Resources() *ResourcePool {
	p := NewResourcePool()
	p.Collect(r.commands)
	return p
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(); err != nil {
		return err
	}

	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case DrawDrawingCommand:
			backend.DrawDrawing(c.Drawing)
		case DrawEllipseCommand:
			backend.DrawEllipse(c.Brush, c.Pen, c.Center, c.CenterAnimation,
				c.RadiusX, c.RadiusXAnimation, c.RadiusY, c.RadiusYAnimation)
		case DrawGeometryCommand:
			backend.DrawGeometry(c.Brush, c.Pen, c.Geometry)
		case DrawGlyphRunCommand:
			backend.DrawGlyphRun(c.Brush, c.GlyphRun)
		case DrawImageCommand:
			backend.DrawImage(c.ImageSource, c.Rect, c.RectAnimation)
		case DrawLineCommand:
			backend.DrawLine(c.Pen, c.Point0, c.Point0Animation, c.Point1, c.Point1Animation)
		case DrawRectangleCommand:
			backend.DrawRectangle(c.Brush, c.Pen, c.Rect, c.RectAnimation)
		case DrawRoundedRectangleCommand:
			backend.DrawRoundedRectangle(c.Brush, c.Pen, c.Rect, c.RectAnimation,
				c.RadiusX, c.RadiusXAnimation, c.RadiusY, c.RadiusYAnimation)
		case DrawTextCommand:
			// The guideline bracket is already in the list.
			if c.Text != nil {
				backend.DrawGlyphRun(c.Text.Brush(), c.Text.GlyphRun(c.Origin))
			}
		case DrawVideoCommand:
			backend.DrawVideo(c.Player, c.Rect, c.RectAnimation)
		case PushClipCommand:
			backend.PushClip(c.Clip)
		case PushOpacityCommand:
			backend.PushOpacity(c.Opacity, c.OpacityAnimation)
		case PushTransformCommand:
			backend.PushTransform(c.Transform)
		case PushGuidelineSetCommand:
			backend.PushGuidelineSet(c.GuidelineSet)
		case PushEffectCommand:
			backend.PushEffect(c.Effect, c.EffectInput)
		case PopCommand:
			if err := backend.Pop(); err != nil {
				return fmt.Errorf("recording: command %d: %w", i, err)
			}
		}
	}

	return backend.End()
}
