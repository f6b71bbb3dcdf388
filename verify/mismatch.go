package verify

import (
	"fmt"

	"github.com/gogpu/drawing"
)

// Mismatch describes one difference between a drawing tree and the
// command list it was expected to come from.
type Mismatch struct {
	// Path locates the node, e.g. "root/children[2]/children[0]".
	Path string

	// Message says what differs.
	Message string

	// Expected is the value derived from the commands, Actual the value
	// found in the tree. Either may be nil.
	Expected any
	Actual   any
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s (expected %s, actual %s)", m.Path, m.Message, show(m.Expected), show(m.Actual))
}

// Diff returns a go-cmp report of the difference between Expected and
// Actual, or "" if they are structurally equal.
func (m Mismatch) Diff() string {
	return drawing.Diff(m.Expected, m.Actual)
}

func show(v any) string {
	if drawing.IsNil(v) {
		return "<nil>"
	}
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%+v", v)
}
