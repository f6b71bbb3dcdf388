package verify

import (
	"log/slog"
	"sync"
	"testing"
)

// Reporter receives mismatches as the verifier finds them.
type Reporter interface {
	Report(Mismatch)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Mismatch)

// Report calls f(m).
func (f ReporterFunc) Report(m Mismatch) { f(m) }

// Collector is a Reporter that keeps every mismatch. It is safe for
// concurrent use.
type Collector struct {
	mu         sync.Mutex
	mismatches []Mismatch
}

// Report implements Reporter.
func (c *Collector) Report(m Mismatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mismatches = append(c.mismatches, m)
}

// Mismatches returns a copy of the collected mismatches.
func (c *Collector) Mismatches() []Mismatch {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Mismatch(nil), c.mismatches...)
}

// Len returns the number of collected mismatches.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.mismatches)
}

// Reset discards the collected mismatches.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mismatches = nil
}

// LogReporter logs each mismatch at Error level.
func LogReporter(l *slog.Logger) Reporter {
	return ReporterFunc(func(m Mismatch) {
		l.Error("verify: mismatch",
			"path", m.Path,
			"message", m.Message,
			"expected", show(m.Expected),
			"actual", show(m.Actual))
	})
}

// TestReporter fails tb for each mismatch without stopping the test.
func TestReporter(tb testing.TB) Reporter {
	return ReporterFunc(func(m Mismatch) {
		tb.Helper()
		tb.Error(m.String())
	})
}

// MultiReporter forwards each mismatch to every reporter in order.
func MultiReporter(rs ...Reporter) Reporter {
	return ReporterFunc(func(m Mismatch) {
		for _, r := range rs {
			if r != nil {
				r.Report(m)
			}
		}
	})
}
