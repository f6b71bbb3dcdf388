package drawing

import (
	"errors"
	"fmt"
)

// Sentinel errors for the drawing package.
var (
	// ErrNegativeSize is returned when a width or height is negative.
	ErrNegativeSize = errors.New("drawing: width and height cannot be negative")

	// ErrSingularMatrix is returned when inverting a matrix with a zero determinant.
	ErrSingularMatrix = errors.New("drawing: matrix is not invertible")

	// ErrParse is wrapped by every ParseError.
	ErrParse = errors.New("drawing: invalid syntax")

	// ErrContextClosed is returned when a closed DrawingContext is used.
	ErrContextClosed = errors.New("drawing: drawing context is closed")

	// ErrPopWithoutPush is returned by Pop when no bracket is open.
	ErrPopWithoutPush = errors.New("drawing: Pop called without a matching Push")

	// ErrEmptyFontData is returned when parsing an empty typeface.
	ErrEmptyFontData = errors.New("drawing: empty font data")
)

// ParseError describes a failed conversion from a string.
type ParseError struct {
	Type  string // "Point", "Rect", ...
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("drawing: parse %s %q: %v", e.Type, e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
