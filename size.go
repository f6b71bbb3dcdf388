package drawing

import (
	"math"
	"strings"
)

// Size is a width and height pair. A size with negative components is
// only valid as EmptySize.
type Size struct {
	Width, Height float64
}

// NewSize returns a size, rejecting negative dimensions.
func NewSize(width, height float64) (Size, error) {
	if width < 0 || height < 0 {
		return Size{}, ErrNegativeSize
	}
	return Size{Width: width, Height: height}, nil
}

// EmptySize returns the empty size (-Infinity, -Infinity).
func EmptySize() Size {
	return Size{Width: math.Inf(-1), Height: math.Inf(-1)}
}

// IsEmpty reports whether s is the empty size.
func (s Size) IsEmpty() bool {
	return s.Width < 0
}

// ToVector converts the size to a vector.
func (s Size) ToVector() Vector {
	return Vector{X: s.Width, Y: s.Height}
}

// ToPoint converts the size to a point.
func (s Size) ToPoint() Point {
	return Point{X: s.Width, Y: s.Height}
}

// String returns "width,height" or "Empty".
func (s Size) String() string {
	if s.IsEmpty() {
		return "Empty"
	}
	return joinFloats(s.Width, s.Height)
}

// ParseSize parses "width,height" or "Empty".
func ParseSize(s string) (Size, error) {
	if strings.TrimSpace(s) == "Empty" {
		return EmptySize(), nil
	}
	n, err := parseNumbers("Size", s, 2)
	if err != nil {
		return Size{}, err
	}
	sz, err := NewSize(n[0], n[1])
	if err != nil {
		return Size{}, &ParseError{Type: "Size", Input: s, Err: err}
	}
	return sz, nil
}
