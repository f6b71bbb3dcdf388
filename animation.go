package drawing

import "time"

// AnimationClock is an opaque handle attached to an animated parameter.
// Drawings store the clock alongside the base value; nothing here
// advances time.
type AnimationClock struct {
	Name          string
	Duration      time.Duration
	RepeatForever bool
}

// NewAnimationClock creates a named clock with the given duration.
func NewAnimationClock(name string, d time.Duration) *AnimationClock {
	return &AnimationClock{Name: name, Duration: d}
}

func (c *AnimationClock) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name + "(" + c.Duration.String() + ")"
}
