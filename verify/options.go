package verify

import (
	"log/slog"

	"github.com/gogpu/drawing"
)

// Option configures a Verifier.
type Option func(*Verifier)

// WithReporter sends each mismatch to r as it is found, in addition to
// returning it.
func WithReporter(r Reporter) Option {
	return func(v *Verifier) {
		v.reporter = r
	}
}

// WithLogger sets the logger for traversal and mismatch events. By
// default the verifier logs through drawing.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(v *Verifier) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithEquality replaces the comparison used for attribute checks.
func WithEquality(eq drawing.Equality) Option {
	return func(v *Verifier) {
		if eq != nil {
			v.eq = eq
		}
	}
}
