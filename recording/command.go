package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/drawing"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one DrawingContext operation.
type CommandType uint8

const (
	// Draw commands
	CmdDrawDrawing          CommandType = iota // Add an existing drawing
	CmdDrawEllipse                             // Fill/stroke an ellipse
	CmdDrawGeometry                            // Fill/stroke a geometry
	CmdDrawGlyphRun                            // Draw a glyph run
	CmdDrawImage                               // Draw an image
	CmdDrawLine                                // Stroke a line
	CmdDrawRectangle                           // Fill/stroke a rectangle
	CmdDrawRoundedRectangle                    // Fill/stroke a rounded rectangle
	CmdDrawText                                // Draw formatted text
	CmdDrawVideo                               // Draw a video frame

	// Bracket commands
	CmdPushClip         // Open a clip bracket
	CmdPushOpacity      // Open an opacity bracket
	CmdPushTransform    // Open a transform bracket
	CmdPushGuidelineSet // Open a guideline bracket
	CmdPushEffect       // Open a bitmap effect bracket
	CmdPop              // Close the innermost bracket
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDrawDrawing:          "DrawDrawing",
	CmdDrawEllipse:          "DrawEllipse",
	CmdDrawGeometry:         "DrawGeometry",
	CmdDrawGlyphRun:         "DrawGlyphRun",
	CmdDrawImage:            "DrawImage",
	CmdDrawLine:             "DrawLine",
	CmdDrawRectangle:        "DrawRectangle",
	CmdDrawRoundedRectangle: "DrawRoundedRectangle",
	CmdDrawText:             "DrawText",
	CmdDrawVideo:            "DrawVideo",
	CmdPushClip:             "PushClip",
	CmdPushOpacity:          "PushOpacity",
	CmdPushTransform:        "PushTransform",
	CmdPushGuidelineSet:     "PushGuidelineSet",
	CmdPushEffect:           "PushEffect",
	CmdPop:                  "Pop",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsDraw reports whether c adds a leaf to the current group.
func (c CommandType) IsDraw() bool { return c <= CmdDrawVideo }

// IsPush reports whether c opens a bracket.
func (c CommandType) IsPush() bool { return c >= CmdPushClip && c <= CmdPushEffect }

// Command is the interface implemented by all command types.
// The set of commands is closed; each one carries the arguments of the
// DrawingContext call it was recorded from.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	command()
}

// --------------------------------------------------------------------------
// Draw Commands
// --------------------------------------------------------------------------

// DrawDrawingCommand adds an existing drawing as a child.
type DrawDrawingCommand struct {
	Drawing drawing.Drawing
}

// Type implements Command.
func (DrawDrawingCommand) Type() CommandType { return CmdDrawDrawing }

// DrawEllipseCommand fills and strokes an ellipse.
type DrawEllipseCommand struct {
	Brush            drawing.Brush
	Pen              *drawing.Pen
	Center           drawing.Point
	RadiusX, RadiusY float64

	CenterAnimation  *drawing.AnimationClock
	RadiusXAnimation *drawing.AnimationClock
	RadiusYAnimation *drawing.AnimationClock
}

// Type implements Command.
func (DrawEllipseCommand) Type() CommandType { return CmdDrawEllipse }

// DrawGeometryCommand fills and strokes a geometry.
type DrawGeometryCommand struct {
	Brush    drawing.Brush
	Pen      *drawing.Pen
	Geometry drawing.Geometry
}

// Type implements Command.
func (DrawGeometryCommand) Type() CommandType { return CmdDrawGeometry }

// DrawGlyphRunCommand draws a run of glyphs.
type DrawGlyphRunCommand struct {
	Brush    drawing.Brush
	GlyphRun *drawing.GlyphRun
}

// Type implements Command.
func (DrawGlyphRunCommand) Type() CommandType { return CmdDrawGlyphRun }

// DrawImageCommand draws an image into a rectangle.
type DrawImageCommand struct {
	ImageSource   drawing.ImageSource
	Rect          drawing.Rect
	RectAnimation *drawing.AnimationClock
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// DrawLineCommand strokes a line segment.
type DrawLineCommand struct {
	Pen            *drawing.Pen
	Point0, Point1 drawing.Point

	Point0Animation *drawing.AnimationClock
	Point1Animation *drawing.AnimationClock
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawRectangleCommand fills and strokes a rectangle.
type DrawRectangleCommand struct {
	Brush         drawing.Brush
	Pen           *drawing.Pen
	Rect          drawing.Rect
	RectAnimation *drawing.AnimationClock
}

// Type implements Command.
func (DrawRectangleCommand) Type() CommandType { return CmdDrawRectangle }

// DrawRoundedRectangleCommand fills and strokes a rectangle with rounded
// corners.
type DrawRoundedRectangleCommand struct {
	Brush            drawing.Brush
	Pen              *drawing.Pen
	Rect             drawing.Rect
	RadiusX, RadiusY float64

	RectAnimation    *drawing.AnimationClock
	RadiusXAnimation *drawing.AnimationClock
	RadiusYAnimation *drawing.AnimationClock
}

// Type implements Command.
func (DrawRoundedRectangleCommand) Type() CommandType { return CmdDrawRoundedRectangle }

// DrawTextCommand draws formatted text. In a recorded list it always sits
// inside a PushGuidelineSet bracket.
type DrawTextCommand struct {
	Text   *drawing.FormattedText
	Origin drawing.Point
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// DrawVideoCommand draws the current frame of a media player.
type DrawVideoCommand struct {
	Player        *drawing.MediaPlayer
	Rect          drawing.Rect
	RectAnimation *drawing.AnimationClock
}

// Type implements Command.
func (DrawVideoCommand) Type() CommandType { return CmdDrawVideo }

// --------------------------------------------------------------------------
// Bracket Commands
// --------------------------------------------------------------------------

// PushClipCommand clips content until the matching Pop.
// A nil Clip still opens a bracket.
type PushClipCommand struct {
	Clip drawing.Geometry
}

// Type implements Command.
func (PushClipCommand) Type() CommandType { return CmdPushClip }

// PushOpacityCommand applies opacity until the matching Pop.
type PushOpacityCommand struct {
	Opacity          float64
	OpacityAnimation *drawing.AnimationClock
}

// Type implements Command.
func (PushOpacityCommand) Type() CommandType { return CmdPushOpacity }

// PushTransformCommand transforms content until the matching Pop.
type PushTransformCommand struct {
	Transform drawing.Transform
}

// Type implements Command.
func (PushTransformCommand) Type() CommandType { return CmdPushTransform }

// PushGuidelineSetCommand applies snapping guidelines until the matching Pop.
type PushGuidelineSetCommand struct {
	GuidelineSet *drawing.GuidelineSet
}

// Type implements Command.
func (PushGuidelineSetCommand) Type() CommandType { return CmdPushGuidelineSet }

// PushEffectCommand applies a legacy bitmap effect until the matching Pop.
type PushEffectCommand struct {
	Effect      drawing.BitmapEffect
	EffectInput *drawing.BitmapEffectInput
}

// Type implements Command.
func (PushEffectCommand) Type() CommandType { return CmdPushEffect }

// PopCommand closes the innermost open bracket.
type PopCommand struct{}

// Type implements Command.
func (PopCommand) Type() CommandType { return CmdPop }

func (DrawDrawingCommand) command()          {}
func (DrawEllipseCommand) command()          {}
func (DrawGeometryCommand) command()         {}
func (DrawGlyphRunCommand) command()         {}
func (DrawImageCommand) command()            {}
func (DrawLineCommand) command()             {}
func (DrawRectangleCommand) command()        {}
func (DrawRoundedRectangleCommand) command() {}
func (DrawTextCommand) command()             {}
func (DrawVideoCommand) command()            {}
func (PushClipCommand) command()             {}
func (PushOpacityCommand) command()          {}
func (PushTransformCommand) command()        {}
func (PushGuidelineSetCommand) command()     {}
func (PushEffectCommand) command()           {}
func (PopCommand) command()                  {}

// --------------------------------------------------------------------------
// Bracket structure
// --------------------------------------------------------------------------

// ErrUnbalanced is wrapped by the error Balanced returns.
var ErrUnbalanced = errors.New("recording: unbalanced Push/Pop")

// Balanced checks that every Push in cmds has a matching Pop later in the
// list and that no Pop appears without an open bracket.
func Balanced(cmds []Command) error {
	depth := 0
	for i, c := range cmds {
		switch t := c.Type(); {
		case t.IsPush():
			depth++
		case t == CmdPop:
			if depth == 0 {
				return fmt.Errorf("%w: Pop at index %d has no open bracket", ErrUnbalanced, i)
			}
			depth--
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d bracket(s) left open", ErrUnbalanced, depth)
	}
	return nil
}
