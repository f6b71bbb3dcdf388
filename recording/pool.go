package recording

import (
	"fmt"

	"github.com/gogpu/drawing"
)

// InvalidRef is the sentinel value for an invalid reference.
// Adding a nil resource to a pool returns it.
const InvalidRef = ^uint32(0)

// BrushRef is a reference to a brush in a ResourcePool.
type BrushRef uint32

// PenRef is a reference to a pen in a ResourcePool.
type PenRef uint32

// GeometryRef is a reference to a geometry in a ResourcePool.
type GeometryRef uint32

// ImageRef is a reference to an image source in a ResourcePool.
type ImageRef uint32

// ClockRef is a reference to an animation clock in a ResourcePool.
type ClockRef uint32

// IsValid returns true if the reference points to a brush.
func (r BrushRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a pen.
func (r PenRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a geometry.
func (r GeometryRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to an image source.
func (r ImageRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a clock.
func (r ClockRef) IsValid() bool { return uint32(r) != InvalidRef }

func (r BrushRef) String() string    { return refString("brush", uint32(r)) }
func (r PenRef) String() string      { return refString("pen", uint32(r)) }
func (r GeometryRef) String() string { return refString("geometry", uint32(r)) }
func (r ImageRef) String() string    { return refString("image", uint32(r)) }
func (r ClockRef) String() string    { return refString("clock", uint32(r)) }

func refString(kind string, r uint32) string {
	if r == InvalidRef {
		return "nil"
	}
	return fmt.Sprintf("%s#%d", kind, r)
}

// table interns values by identity. Pointers and interface values holding
// pointers compare by address, so a resource shared between commands gets
// a single reference.
type table[T comparable] struct {
	items []T
	index map[T]uint32
}

func (t *table[T]) add(v T) uint32 {
	if ref, ok := t.index[v]; ok {
		return ref
	}
	if t.index == nil {
		t.index = make(map[T]uint32)
	}
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := uint32(len(t.items))
	t.items = append(t.items, v)
	t.index[v] = ref
	return ref
}

func (t *table[T]) get(ref uint32) (T, bool) {
	if int(ref) >= len(t.items) {
		var zero T
		return zero, false
	}
	return t.items[ref], true
}

func (t *table[T]) clear() {
	t.items = t.items[:0]
	clear(t.index)
}

// ResourcePool collects the distinct resources referenced by a sequence of
// commands. Adding the same resource twice returns the same reference.
//
// ResourcePool is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type ResourcePool struct {
	brushes    table[drawing.Brush]
	pens       table[*drawing.Pen]
	geometries table[drawing.Geometry]
	images     table[drawing.ImageSource]
	clocks     table[*drawing.AnimationClock]
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{}
}

// AddBrush adds a brush to the pool and returns its reference.
func (p *ResourcePool) AddBrush(b drawing.Brush) BrushRef {
	if drawing.IsNil(b) {
		return BrushRef(InvalidRef)
	}
	return BrushRef(p.brushes.add(b))
}

// GetBrush returns the brush for the given reference, or nil.
func (p *ResourcePool) GetBrush(ref BrushRef) drawing.Brush {
	b, _ := p.brushes.get(uint32(ref))
	return b
}

// BrushCount returns the number of brushes in the pool.
func (p *ResourcePool) BrushCount() int { return len(p.brushes.items) }

// AddPen adds a pen to the pool and returns its reference.
func (p *ResourcePool) AddPen(pen *drawing.Pen) PenRef {
	if pen == nil {
		return PenRef(InvalidRef)
	}
	return PenRef(p.pens.add(pen))
}

// GetPen returns the pen for the given reference, or nil.
func (p *ResourcePool) GetPen(ref PenRef) *drawing.Pen {
	pen, _ := p.pens.get(uint32(ref))
	return pen
}

// PenCount returns the number of pens in the pool.
func (p *ResourcePool) PenCount() int { return len(p.pens.items) }

// AddGeometry adds a geometry to the pool and returns its reference.
func (p *ResourcePool) AddGeometry(g drawing.Geometry) GeometryRef {
	if drawing.IsNil(g) {
		return GeometryRef(InvalidRef)
	}
	return GeometryRef(p.geometries.add(g))
}

// GetGeometry returns the geometry for the given reference, or nil.
func (p *ResourcePool) GetGeometry(ref GeometryRef) drawing.Geometry {
	g, _ := p.geometries.get(uint32(ref))
	return g
}

// GeometryCount returns the number of geometries in the pool.
func (p *ResourcePool) GeometryCount() int { return len(p.geometries.items) }

// AddImage adds an image source to the pool and returns its reference.
func (p *ResourcePool) AddImage(src drawing.ImageSource) ImageRef {
	if drawing.IsNil(src) {
		return ImageRef(InvalidRef)
	}
	return ImageRef(p.images.add(src))
}

// GetImage returns the image source for the given reference, or nil.
func (p *ResourcePool) GetImage(ref ImageRef) drawing.ImageSource {
	src, _ := p.images.get(uint32(ref))
	return src
}

// ImageCount returns the number of image sources in the pool.
func (p *ResourcePool) ImageCount() int { return len(p.images.items) }

// AddClock adds an animation clock to the pool and returns its reference.
func (p *ResourcePool) AddClock(c *drawing.AnimationClock) ClockRef {
	if c == nil {
		return ClockRef(InvalidRef)
	}
	return ClockRef(p.clocks.add(c))
}

// GetClock returns the clock for the given reference, or nil.
func (p *ResourcePool) GetClock(ref ClockRef) *drawing.AnimationClock {
	c, _ := p.clocks.get(uint32(ref))
	return c
}

// ClockCount returns the number of clocks in the pool.
func (p *ResourcePool) ClockCount() int { return len(p.clocks.items) }

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.brushes.clear()
	p.pens.clear()
	p.geometries.clear()
	p.images.clear()
	p.clocks.clear()
}

// Collect adds every resource referenced by cmds to the pool, in command
// order.
func (p *ResourcePool) Collect(cmds []Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case DrawEllipseCommand:
			p.AddBrush(c.Brush)
			p.AddPen(c.Pen)
			p.AddClock(c.CenterAnimation)
			p.AddClock(c.RadiusXAnimation)
			p.AddClock(c.RadiusYAnimation)
		case DrawGeometryCommand:
			p.AddBrush(c.Brush)
			p.AddPen(c.Pen)
			p.AddGeometry(c.Geometry)
		case DrawGlyphRunCommand:
			p.AddBrush(c.Brush)
		case DrawImageCommand:
			p.AddImage(c.ImageSource)
			p.AddClock(c.RectAnimation)
		case DrawLineCommand:
			p.AddPen(c.Pen)
			p.AddClock(c.Point0Animation)
			p.AddClock(c.Point1Animation)
		case DrawRectangleCommand:
			p.AddBrush(c.Brush)
			p.AddPen(c.Pen)
			p.AddClock(c.RectAnimation)
		case DrawRoundedRectangleCommand:
			p.AddBrush(c.Brush)
			p.AddPen(c.Pen)
			p.AddClock(c.RectAnimation)
			p.AddClock(c.RadiusXAnimation)
			p.AddClock(c.RadiusYAnimation)
		case DrawTextCommand:
			if c.Text != nil {
				p.AddBrush(c.Text.Foreground)
			}
		case DrawVideoCommand:
			p.AddClock(c.RectAnimation)
		case PushClipCommand:
			p.AddGeometry(c.Clip)
		case PushOpacityCommand:
			p.AddClock(c.OpacityAnimation)
		}
	}
}
