package drawing

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	shapinglang "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// Typeface is a parsed font. It is safe for concurrent use.
type Typeface struct {
	Family string

	metrics *opentype.Font // ascent/descent, names
	shaper  *font.Font     // HarfBuzz shaping
}

// ParseTypeface parses TrueType or OpenType font data.
func ParseTypeface(data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("drawing: failed to parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("drawing: failed to parse font: %w", err)
	}
	family, err := otf.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		family = ""
	}
	return &Typeface{Family: family, metrics: otf, shaper: face.Font}, nil
}

var defaultTypeface = sync.OnceValue(func() *Typeface {
	t, err := ParseTypeface(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return t
})

// DefaultTypeface returns the Go Regular typeface.
func DefaultTypeface() *Typeface { return defaultTypeface() }

// lineMetrics returns ascent, descent and line height at emSize.
func (t *Typeface) lineMetrics(emSize float64) (ascent, descent, height float64) {
	var buf sfnt.Buffer
	m, err := t.metrics.Metrics(&buf, floatToFixed(emSize), xfont.HintingNone)
	if err != nil {
		return 0, 0, 0
	}
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent), fixedToFloat(m.Height)
}

// FlowDirection is the base direction of a paragraph.
type FlowDirection uint8

const (
	LeftToRight FlowDirection = iota
	RightToLeft
)

func (d FlowDirection) String() string {
	if d == RightToLeft {
		return "RightToLeft"
	}
	return "LeftToRight"
}

// FormattedText is a single line of text laid out with one typeface.
type FormattedText struct {
	Text          string
	Culture       language.Tag
	FlowDirection FlowDirection
	Typeface      *Typeface
	EmSize        float64
	Foreground    Brush
}

// NewFormattedText creates formatted text. A nil typeface selects
// DefaultTypeface and a nil foreground selects Brushes.Black. The flow
// direction follows the first strong character.
func NewFormattedText(text string, culture language.Tag, typeface *Typeface, emSize float64, foreground Brush) *FormattedText {
	if typeface == nil {
		typeface = DefaultTypeface()
	}
	if IsNil(foreground) {
		foreground = Brushes.Black
	}
	return &FormattedText{
		Text:          text,
		Culture:       culture,
		FlowDirection: flowDirection(text),
		Typeface:      typeface,
		EmSize:        emSize,
		Foreground:    foreground,
	}
}

func flowDirection(text string) FlowDirection {
	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return LeftToRight
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return LeftToRight
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return RightToLeft
	}
	return LeftToRight
}

// Brush returns the foreground brush, or Brushes.Black when it is nil.
func (t *FormattedText) Brush() Brush {
	if IsNil(t.Foreground) {
		return Brushes.Black
	}
	return t.Foreground
}

// Baseline returns the distance from the top of the line to the baseline.
func (t *FormattedText) Baseline() float64 {
	ascent, _, _ := t.Typeface.lineMetrics(t.EmSize)
	return ascent
}

// Height returns the line height.
func (t *FormattedText) Height() float64 {
	_, _, h := t.Typeface.lineMetrics(t.EmSize)
	return h
}

// Width returns the advance width of the shaped text.
func (t *FormattedText) Width() float64 {
	return t.GlyphRun(Point{}).Width()
}

// GlyphRun shapes the text and returns the glyph run whose top-left
// corner is at origin.
func (t *FormattedText) GlyphRun(origin Point) *GlyphRun {
	runes := []rune(t.Text)
	run := &GlyphRun{
		FontFamily:     t.Typeface.Family,
		EmSize:         t.EmSize,
		BaselineOrigin: Point{X: origin.X, Y: origin.Y + t.Baseline()},
		Characters:     t.Text,
	}
	if t.FlowDirection == RightToLeft {
		run.BidiLevel = 1
	}
	if len(runes) == 0 {
		return run
	}

	dir := di.DirectionLTR
	if t.FlowDirection == RightToLeft {
		dir = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(t.Typeface.shaper),
		Size:      floatToFixed(t.EmSize),
		Script:    detectScript(runes),
		Language:  shapinglang.NewLanguage(t.Culture.String()),
	}
	out := (&shaping.HarfbuzzShaper{}).Shape(input)

	run.GlyphIndices = make([]uint16, len(out.Glyphs))
	run.AdvanceWidths = make([]float64, len(out.Glyphs))
	for i, g := range out.Glyphs {
		run.GlyphIndices[i] = uint16(g.GlyphID) //nolint:gosec // glyph IDs fit in uint16
		run.AdvanceWidths[i] = fixedToFloat(g.Advance)
	}
	return run
}

func detectScript(runes []rune) shapinglang.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return shapinglang.LookupScript(r)
	}
	return shapinglang.Latin
}

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }
func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
