package drawing

// GlyphRun is a sequence of positioned glyphs sharing one font and size.
type GlyphRun struct {
	FontFamily     string
	EmSize         float64
	BaselineOrigin Point
	GlyphIndices   []uint16
	AdvanceWidths  []float64
	Characters     string
	BidiLevel      int
}

// Width returns the sum of the advance widths.
func (g *GlyphRun) Width() float64 {
	var w float64
	for _, a := range g.AdvanceWidths {
		w += a
	}
	return w
}

// Bounds returns the advance box of the run, from the baseline up by
// EmSize.
func (g *GlyphRun) Bounds() Rect {
	return Rect{
		X:      g.BaselineOrigin.X,
		Y:      g.BaselineOrigin.Y - g.EmSize,
		Width:  g.Width(),
		Height: g.EmSize,
	}
}
