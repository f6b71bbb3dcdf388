package recording

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/gogpu/drawing"
)

func types(cmds []Command) []CommandType {
	out := make([]CommandType, len(cmds))
	for i, c := range cmds {
		out[i] = c.Type()
	}
	return out
}

func TestNewVisualRecorder(t *testing.T) {
	v := drawing.NewDrawingVisual()
	rec := NewVisualRecorder(v)

	pen := drawing.NewPen(drawing.Brushes.Red, 5)
	rec.DrawLine(pen, drawing.Pt(0, 0), drawing.Pt(100, 100))
	rec.DrawRectangle(drawing.Brushes.Blue, nil, drawing.Rect{Width: 10, Height: 10})

	r, err := rec.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if r.Root() == nil || r.Root() != v.Drawing() {
		t.Fatal("Root() should be the visual's drawing")
	}
	if n := len(r.Root().Children); n != 2 {
		t.Errorf("root has %d children, want 2", n)
	}

	want := DrawLineCommand{Pen: pen, Point1: drawing.Pt(100, 100)}
	if diff := cmp.Diff(Command(want), r.Commands()[0], drawing.CompareOptions()); diff != "" {
		t.Errorf("first command mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorderNullPayloads(t *testing.T) {
	v := drawing.NewDrawingVisual()
	rec := NewVisualRecorder(v)

	pen := drawing.NewPen(drawing.Brushes.Red, 5)
	rect := drawing.Rect{X: 10, Y: 10, Width: 10, Height: 10}
	geom := drawing.NewRectangleGeometry(rect)

	rec.DrawLine(nil, drawing.Pt(10, 10), drawing.Pt(50, 50))
	rec.DrawRectangle(nil, nil, rect)
	rec.DrawRoundedRectangle(nil, nil, rect, 5, 6)
	rec.DrawEllipse(nil, nil, drawing.Pt(10, 10), 5, 7)
	rec.DrawGeometry(nil, nil, geom)
	rec.DrawGeometry(drawing.Brushes.Cyan, pen, nil)
	rec.DrawGlyphRun(nil, &drawing.GlyphRun{})
	rec.DrawGlyphRun(drawing.Brushes.Red, nil)
	rec.DrawImage(nil, rect)
	rec.DrawVideo(nil, rect)
	rec.DrawDrawing(nil)
	rec.DrawText(nil, drawing.Pt(1.5, -1.5))

	r, err := rec.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("recorded %v, want nothing", types(r.Commands()))
	}
	if r.Root() != nil {
		t.Errorf("Root() = %v, want nil", r.Root())
	}
}

func TestRecorderHalfNullPayloads(t *testing.T) {
	rec := NewVisualRecorder(drawing.NewDrawingVisual())
	pen := drawing.NewPen(drawing.Brushes.Red, 5)
	rect := drawing.Rect{X: 10, Y: 10, Width: 10, Height: 10}

	rec.DrawRectangle(nil, pen, rect)
	rec.DrawRectangle(drawing.Brushes.Red, nil, rect)
	rec.DrawEllipse(nil, pen, drawing.Pt(10, 10), 5, 7)
	rec.DrawGeometry(drawing.Brushes.Cyan, nil, drawing.NewRectangleGeometry(rect))

	r, err := rec.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if r.Len() != 4 || len(r.Root().Children) != 4 {
		t.Errorf("commands = %d, children = %d, want 4 and 4", r.Len(), len(r.Root().Children))
	}
}

func TestRecorderDrawText(t *testing.T) {
	rec := NewVisualRecorder(drawing.NewDrawingVisual())
	text := drawing.NewFormattedText("Hi", language.English, nil, 12, drawing.Brushes.Black)
	origin := drawing.Pt(1.5, -1.5)

	rec.DrawText(text, origin)
	r, err := rec.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	want := []CommandType{CmdPushGuidelineSet, CmdDrawText, CmdPop}
	if diff := cmp.Diff(want, types(r.Commands())); diff != "" {
		t.Fatalf("command types mismatch (-want +got):\n%s", diff)
	}

	gs := r.Commands()[0].(PushGuidelineSetCommand).GuidelineSet
	if !gs.Frozen {
		t.Error("guideline set should be frozen")
	}
	group := r.Root().Children[0].(*drawing.DrawingGroup)
	if !drawing.DeepEqual(gs, group.GuidelineSet) {
		t.Errorf("guideline set differs from tree:\n%s", drawing.Diff(gs, group.GuidelineSet))
	}
}

func TestRecorderTrailingPops(t *testing.T) {
	rec := NewVisualRecorder(drawing.NewDrawingVisual())
	rec.PushTransform(&drawing.TranslateTransform{X: 10, Y: 10})
	rec.PushOpacity(0.5)
	rec.PushClip(nil)
	if err := rec.Pop(); err != nil {
		t.Fatalf("Pop() error = %v", err)
	}
	if rec.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", rec.Depth())
	}

	r, err := rec.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	want := []CommandType{CmdPushTransform, CmdPushOpacity, CmdPushClip, CmdPop, CmdPop, CmdPop}
	if diff := cmp.Diff(want, types(r.Commands())); diff != "" {
		t.Errorf("command types mismatch (-want +got):\n%s", diff)
	}
	if err := Balanced(r.Commands()); err != nil {
		t.Errorf("Balanced() = %v", err)
	}
}

func TestRecorderPopWithoutPush(t *testing.T) {
	rec := NewVisualRecorder(drawing.NewDrawingVisual())
	if err := rec.Pop(); !errors.Is(err, drawing.ErrPopWithoutPush) {
		t.Errorf("Pop() error = %v, want ErrPopWithoutPush", err)
	}
	if len(rec.Commands()) != 0 {
		t.Error("a rejected Pop must not be recorded")
	}
}

func TestRecorderClosed(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	rec := NewVisualRecorder(drawing.NewDrawingVisual(), WithLogger(logger))
	if err := rec.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := rec.Close(); !errors.Is(err, ErrRecorderClosed) {
		t.Errorf("second Close() error = %v, want ErrRecorderClosed", err)
	}
	if err := rec.Pop(); !errors.Is(err, ErrRecorderClosed) {
		t.Errorf("Pop() error = %v, want ErrRecorderClosed", err)
	}

	rec.DrawLine(drawing.NewPen(drawing.Brushes.Red, 1), drawing.Pt(0, 0), drawing.Pt(1, 1))
	if !strings.Contains(buf.String(), "op=DrawLine") {
		t.Errorf("log output %q does not mention the ignored call", buf.String())
	}

	r, err := rec.Finish()
	if !errors.Is(err, ErrRecorderClosed) {
		t.Errorf("Finish() error = %v, want ErrRecorderClosed", err)
	}
	if r == nil || r.Len() != 0 {
		t.Error("Finish() should still return the (empty) recording")
	}
}

func TestGroupRecorderOpenAppend(t *testing.T) {
	pen := drawing.NewPen(drawing.Brushes.Red, 5)
	rect := drawing.Rect{X: 10, Y: 10, Width: 10, Height: 10}

	tests := []struct {
		name     string
		reopen   func(*Recorder) error
		wantCmds []CommandType
	}{
		{"open clears", (*Recorder).Open, []CommandType{CmdDrawRectangle}},
		{"append keeps", (*Recorder).Append, []CommandType{CmdDrawLine, CmdDrawRectangle}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := drawing.NewDrawingGroup()
			rec := NewGroupRecorder(g)
			rec.DrawLine(pen, drawing.Pt(10, 10), drawing.Pt(50, 50))

			if err := tt.reopen(rec); !errors.Is(err, ErrStillOpen) {
				t.Errorf("reopen before Close: error = %v, want ErrStillOpen", err)
			}
			if err := rec.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}
			if err := tt.reopen(rec); err != nil {
				t.Fatalf("reopen error = %v", err)
			}
			rec.DrawRectangle(drawing.Brushes.Red, pen, rect)

			r, err := rec.Finish()
			if err != nil {
				t.Fatalf("Finish() error = %v", err)
			}
			if r.Root() != g {
				t.Error("Root() should be the target group")
			}
			if diff := cmp.Diff(tt.wantCmds, types(r.Commands())); diff != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", diff)
			}
			if len(g.Children) != len(tt.wantCmds) {
				t.Errorf("group has %d children, want %d", len(g.Children), len(tt.wantCmds))
			}
		})
	}
}

func TestVisualRecorderCannotReopen(t *testing.T) {
	rec := NewVisualRecorder(drawing.NewDrawingVisual())
	_ = rec.Close()
	if err := rec.Open(); !errors.Is(err, ErrNotGroupTarget) {
		t.Errorf("Open() error = %v, want ErrNotGroupTarget", err)
	}
	if err := rec.Append(); !errors.Is(err, ErrNotGroupTarget) {
		t.Errorf("Append() error = %v, want ErrNotGroupTarget", err)
	}
}

func TestCloseAppendsPopsBeforeAppend(t *testing.T) {
	g := drawing.NewDrawingGroup()
	rec := NewGroupRecorder(g)
	pen := drawing.NewPen(drawing.Brushes.Red, 1)

	rec.PushOpacity(0.5)
	rec.DrawLine(pen, drawing.Pt(0, 0), drawing.Pt(1, 1))
	_ = rec.Close()
	_ = rec.Append()
	rec.DrawLine(pen, drawing.Pt(1, 1), drawing.Pt(2, 2))

	r, err := rec.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	want := []CommandType{CmdPushOpacity, CmdDrawLine, CmdPop, CmdDrawLine}
	if diff := cmp.Diff(want, types(r.Commands())); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordingPlayback(t *testing.T) {
	rec := NewVisualRecorder(drawing.NewDrawingVisual())
	pen := drawing.NewPen(drawing.Brushes.Red, 5)
	text := drawing.NewFormattedText("Hi", language.English, nil, 12, drawing.Brushes.Black)

	rec.PushOpacity(0.5)
	rec.DrawLine(pen, drawing.Pt(0, 0), drawing.Pt(1, 1))
	rec.DrawText(text, drawing.Pt(0, 0))
	rec.DrawVideo(drawing.NewMediaPlayer("movie.wmv"), drawing.Rect{})
	r, err := rec.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	b := newMockBackend("playback")
	if err := r.Playback(b); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}
	if b.beginCalls != 1 || b.endCalls != 1 {
		t.Errorf("Begin/End calls = %d/%d, want 1/1", b.beginCalls, b.endCalls)
	}

	want := []string{"PushOpacity", "DrawLine", "PushGuidelineSet", "DrawGlyphRun", "Pop", "DrawVideo", "Pop"}
	if diff := cmp.Diff(want, b.ops); diff != "" {
		t.Errorf("playback mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordingPlaybackUnbalanced(t *testing.T) {
	r := NewRecording(nil, []Command{PopCommand{}})
	err := r.Playback(newMockBackend("bad"))
	if !errors.Is(err, drawing.ErrPopWithoutPush) {
		t.Errorf("Playback() error = %v, want ErrPopWithoutPush", err)
	}
}
