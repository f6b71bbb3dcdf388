package drawing

// GuidelineSet holds snapping guidelines in the X and Y directions.
type GuidelineSet struct {
	GuidelinesX []float64
	GuidelinesY []float64

	// Frozen is set by Freeze. Text layout pushes frozen sets.
	Frozen bool
}

// NewGuidelineSet creates an unfrozen guideline set.
func NewGuidelineSet(x, y []float64) *GuidelineSet {
	return &GuidelineSet{GuidelinesX: x, GuidelinesY: y}
}

// Freeze marks the set read-only.
func (g *GuidelineSet) Freeze() { g.Frozen = true }
