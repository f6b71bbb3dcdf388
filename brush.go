package drawing

// Brush paints an area. The set of implementations is closed.
type Brush interface {
	brushMarker()
}

// SolidColorBrush paints with a single color.
type SolidColorBrush struct {
	Color   Color
	Opacity float64
}

// NewSolidColorBrush creates an opaque brush of the given color.
func NewSolidColorBrush(c Color) *SolidColorBrush {
	return &SolidColorBrush{Color: c, Opacity: 1}
}

func (*SolidColorBrush) brushMarker() {}

func (b *SolidColorBrush) String() string {
	if b == nil {
		return "<nil>"
	}
	return b.Color.Hex()
}

// Brushes holds shared brushes for the CSS named colors used throughout
// the package. The same pointer is returned on every access.
var Brushes = struct {
	Black, White, Red, Green, Blue *SolidColorBrush
	Yellow, Cyan, Pink, Orange     *SolidColorBrush
	Transparent                    *SolidColorBrush
}{
	Black:       named("black"),
	White:       named("white"),
	Red:         named("red"),
	Green:       named("green"),
	Blue:        named("blue"),
	Yellow:      named("yellow"),
	Cyan:        named("cyan"),
	Pink:        named("pink"),
	Orange:      named("orange"),
	Transparent: named("transparent"),
}

func named(name string) *SolidColorBrush {
	return NewSolidColorBrush(MustParseColor(name))
}
