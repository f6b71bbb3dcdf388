package drawing

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// tokens splits s on commas and white space, invariant culture.
func tokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseNumbers parses exactly n numbers from s.
func parseNumbers(typ, s string, n int) ([]float64, error) {
	fields := tokens(s)
	if len(fields) != n {
		return nil, &ParseError{Type: typ, Input: s, Err: errWrongCount(n, len(fields))}
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, &ParseError{Type: typ, Input: s, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

type countError struct{ want, got int }

func (e countError) Error() string {
	return "expected " + strconv.Itoa(e.want) + " values, got " + strconv.Itoa(e.got)
}

func errWrongCount(want, got int) error { return countError{want: want, got: got} }

// formatFloat formats v the way the string forms of the value types expect:
// shortest round-trip representation, "Infinity" for infinities.
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func joinFloats(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ",")
}
