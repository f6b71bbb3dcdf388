package drawing

import (
	"reflect"
	"slices"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/path"
)

// Equality compares attribute values taken from commands and drawings.
type Equality interface {
	// ValueEqual compares simple values: numbers, points, rects, matrices.
	ValueEqual(a, b any) bool

	// DeepEqual compares composite values structurally: brushes, pens,
	// geometries, transforms, guideline sets, effects, drawings.
	DeepEqual(a, b any) bool
}

// DefaultEquality is the Equality used unless another is supplied.
// Absent values (nil pointers, nil interfaces) equal only other absent
// values.
var DefaultEquality Equality = structuralEquality{}

// CompareOptions are the go-cmp options behind DefaultEquality.
func CompareOptions() cmp.Options {
	return cmp.Options{
		cmp.Comparer(func(a, b *Typeface) bool { return a == b }),
		cmp.Comparer(func(a, b language.Tag) bool { return a == b }),
		cmp.Comparer(func(a, b *path.Data) bool {
			if a == nil || b == nil {
				return a == b
			}
			return slices.Equal(a.Cmds, b.Cmds) && slices.Equal(a.Coords, b.Coords)
		}),
	}
}

type structuralEquality struct{}

func (structuralEquality) ValueEqual(a, b any) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if ta, tb := reflect.TypeOf(a), reflect.TypeOf(b); ta != tb || !ta.Comparable() {
		return ta == tb && cmp.Equal(a, b, CompareOptions())
	}
	return a == b
}

func (structuralEquality) DeepEqual(a, b any) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() && a == b {
		return true
	}
	return cmp.Equal(a, b, CompareOptions())
}

// ValueEqual reports whether a and b are equal simple values.
func ValueEqual(a, b any) bool { return DefaultEquality.ValueEqual(a, b) }

// DeepEqual reports whether a and b are structurally equal.
func DeepEqual(a, b any) bool { return DefaultEquality.DeepEqual(a, b) }

// Diff returns a human-readable report of the differences between a and b,
// or "" if they are equal.
func Diff(a, b any) string {
	return cmp.Diff(a, b, CompareOptions())
}

// IsNil reports whether v is nil or a nil pointer, map, slice, func or
// interface wrapped in a non-nil interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
