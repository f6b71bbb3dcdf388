package recording

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/drawing"
)

// mockBackend is a minimal backend implementation for testing.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	ops        []string
	depth      int
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin() error {
	b.beginCalls++
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) op(name string) { b.ops = append(b.ops, name) }

func (b *mockBackend) DrawLine(*drawing.Pen, drawing.Point, *drawing.AnimationClock, drawing.Point, *drawing.AnimationClock) {
	b.op("DrawLine")
}

func (b *mockBackend) DrawRectangle(drawing.Brush, *drawing.Pen, drawing.Rect, *drawing.AnimationClock) {
	b.op("DrawRectangle")
}

func (b *mockBackend) DrawRoundedRectangle(drawing.Brush, *drawing.Pen, drawing.Rect, *drawing.AnimationClock, float64, *drawing.AnimationClock, float64, *drawing.AnimationClock) {
	b.op("DrawRoundedRectangle")
}

func (b *mockBackend) DrawEllipse(drawing.Brush, *drawing.Pen, drawing.Point, *drawing.AnimationClock, float64, *drawing.AnimationClock, float64, *drawing.AnimationClock) {
	b.op("DrawEllipse")
}

func (b *mockBackend) DrawGeometry(drawing.Brush, *drawing.Pen, drawing.Geometry) {
	b.op("DrawGeometry")
}

func (b *mockBackend) DrawImage(drawing.ImageSource, drawing.Rect, *drawing.AnimationClock) {
	b.op("DrawImage")
}

func (b *mockBackend) DrawGlyphRun(drawing.Brush, *drawing.GlyphRun) { b.op("DrawGlyphRun") }

func (b *mockBackend) DrawVideo(*drawing.MediaPlayer, drawing.Rect, *drawing.AnimationClock) {
	b.op("DrawVideo")
}

func (b *mockBackend) DrawDrawing(drawing.Drawing)                  { b.op("DrawDrawing") }
func (b *mockBackend) PushClip(drawing.Geometry)                    { b.push("PushClip") }
func (b *mockBackend) PushOpacity(float64, *drawing.AnimationClock) { b.push("PushOpacity") }
func (b *mockBackend) PushTransform(drawing.Transform)              { b.push("PushTransform") }
func (b *mockBackend) PushGuidelineSet(*drawing.GuidelineSet)       { b.push("PushGuidelineSet") }

func (b *mockBackend) PushEffect(drawing.BitmapEffect, *drawing.BitmapEffectInput) {
	b.push("PushEffect")
}

func (b *mockBackend) push(name string) {
	b.depth++
	b.op(name)
}

func (b *mockBackend) Pop() error {
	if b.depth == 0 {
		return drawing.ErrPopWithoutPush
	}
	b.depth--
	b.op("Pop")
	return nil
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", func() Backend {
		return newMockBackend("test")
	})

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}

	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	_, err := NewBackend("unknown")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("error = %v, want ErrUnknownBackend", err)
	}
	if want := `recording: unknown backend "unknown" (forgotten import?)`; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestRegisterNilFactory(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil factory")
		}
	}()
	Register("nil", nil)
}

func TestRegisterDuplicate(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	factory := func() Backend { return newMockBackend("dup") }
	Register("dup", factory)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for duplicate registration")
		}
	}()
	Register("dup", factory)
}

func TestUnregister(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("temp", func() Backend { return newMockBackend("temp") })
	if !IsRegistered("temp") {
		t.Fatal("temp should be registered")
	}

	Unregister("temp")
	if IsRegistered("temp") {
		t.Error("temp should not be registered after Unregister")
	}

	// no-op for unknown names
	Unregister("never-registered")
}

func TestBackendsSorted(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	for _, name := range []string{"trace", "alpha", "tree"} {
		Register(name, func() Backend { return newMockBackend(name) })
	}

	got := Backends()
	want := []string{"alpha", "trace", "tree"}
	if len(got) != len(want) {
		t.Fatalf("Backends() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Backends()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if Count() != 3 {
		t.Errorf("Count() = %d, want 3", Count())
	}
}

func TestMustBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("must", func() Backend { return newMockBackend("must") })
	if b := MustBackend("must"); b == nil {
		t.Error("MustBackend returned nil")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown backend")
		}
	}()
	MustBackend("missing")
}

func TestRegistryConcurrentAccess(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("shared", func() Backend { return newMockBackend("shared") })

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := NewBackend("shared"); err != nil {
				t.Errorf("NewBackend: %v", err)
			}
			_ = Backends()
			_ = IsRegistered("shared")
		}()
	}
	wg.Wait()
}
