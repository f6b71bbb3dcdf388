package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/drawing"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdDrawDrawing, "DrawDrawing"},
		{CmdDrawEllipse, "DrawEllipse"},
		{CmdDrawGeometry, "DrawGeometry"},
		{CmdDrawGlyphRun, "DrawGlyphRun"},
		{CmdDrawImage, "DrawImage"},
		{CmdDrawLine, "DrawLine"},
		{CmdDrawRectangle, "DrawRectangle"},
		{CmdDrawRoundedRectangle, "DrawRoundedRectangle"},
		{CmdDrawText, "DrawText"},
		{CmdDrawVideo, "DrawVideo"},
		{CmdPushClip, "PushClip"},
		{CmdPushOpacity, "PushOpacity"},
		{CmdPushTransform, "PushTransform"},
		{CmdPushGuidelineSet, "PushGuidelineSet"},
		{CmdPushEffect, "PushEffect"},
		{CmdPop, "Pop"},
		{CommandType(254), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandType_Kinds(t *testing.T) {
	for ct := CmdDrawDrawing; ct <= CmdPop; ct++ {
		draw, push := ct.IsDraw(), ct.IsPush()
		switch {
		case ct <= CmdDrawVideo:
			if !draw || push {
				t.Errorf("%v: IsDraw() = %v, IsPush() = %v", ct, draw, push)
			}
		case ct == CmdPop:
			if draw || push {
				t.Errorf("Pop: IsDraw() = %v, IsPush() = %v", draw, push)
			}
		default:
			if draw || !push {
				t.Errorf("%v: IsDraw() = %v, IsPush() = %v", ct, draw, push)
			}
		}
	}
}

func TestCommandInterface(t *testing.T) {
	pen := drawing.NewPen(drawing.Brushes.Red, 5)
	commands := []Command{
		DrawDrawingCommand{Drawing: drawing.NewDrawingGroup()},
		DrawEllipseCommand{Brush: drawing.Brushes.Pink, Pen: pen, Center: drawing.Pt(15, 15), RadiusX: 3, RadiusY: 8},
		DrawGeometryCommand{Brush: drawing.Brushes.Cyan, Geometry: drawing.NewRectangleGeometry(drawing.Rect{Width: 1, Height: 1})},
		DrawGlyphRunCommand{Brush: drawing.Brushes.Red, GlyphRun: &drawing.GlyphRun{}},
		DrawImageCommand{ImageSource: &drawing.BitmapImage{}},
		DrawLineCommand{Pen: pen, Point1: drawing.Pt(100, 100)},
		DrawRectangleCommand{Brush: drawing.Brushes.Blue, Rect: drawing.Rect{Width: 10, Height: 10}},
		DrawRoundedRectangleCommand{Brush: drawing.Brushes.Black, RadiusX: 5, RadiusY: 3},
		DrawTextCommand{Origin: drawing.Pt(1.5, -1.5)},
		DrawVideoCommand{Player: drawing.NewMediaPlayer("movie.wmv")},
		PushClipCommand{},
		PushOpacityCommand{Opacity: 0.5},
		PushTransformCommand{Transform: drawing.IdentityTransform()},
		PushGuidelineSetCommand{},
		PushEffectCommand{},
		PopCommand{},
	}

	for i, cmd := range commands {
		if got := cmd.Type(); got != CommandType(i) {
			t.Errorf("commands[%d].Type() = %v, want %v", i, got, CommandType(i))
		}
	}
}

func TestBalanced(t *testing.T) {
	push := PushOpacityCommand{Opacity: 0.5}
	draw := DrawLineCommand{}
	pop := PopCommand{}

	tests := []struct {
		name    string
		cmds    []Command
		wantErr bool
	}{
		{"empty", nil, false},
		{"draws only", []Command{draw, draw}, false},
		{"one bracket", []Command{push, draw, pop}, false},
		{"nested", []Command{push, push, draw, pop, draw, pop}, false},
		{"open bracket", []Command{push, draw}, true},
		{"stray pop", []Command{draw, pop}, true},
		{"pop before push", []Command{pop, push}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Balanced(tt.cmds)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Balanced() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnbalanced) {
				t.Errorf("Balanced() error = %v, want ErrUnbalanced", err)
			}
		})
	}
}
