package drawing

// PenLineCap describes the shape at the end of a line.
type PenLineCap uint8

const (
	PenLineCapFlat PenLineCap = iota
	PenLineCapSquare
	PenLineCapRound
	PenLineCapTriangle
)

// PenLineJoin describes how two segments are joined.
type PenLineJoin uint8

const (
	PenLineJoinMiter PenLineJoin = iota
	PenLineJoinBevel
	PenLineJoinRound
)

// DashStyle is a dash pattern in multiples of the pen thickness.
type DashStyle struct {
	Dashes []float64
	Offset float64
}

// Pen describes how a shape is outlined.
type Pen struct {
	Brush      Brush
	Thickness  float64
	StartCap   PenLineCap
	EndCap     PenLineCap
	DashCap    PenLineCap
	LineJoin   PenLineJoin
	MiterLimit float64
	DashStyle  *DashStyle
}

// NewPen creates a solid pen with flat caps and miter joins.
func NewPen(brush Brush, thickness float64) *Pen {
	return &Pen{
		Brush:      brush,
		Thickness:  thickness,
		DashCap:    PenLineCapSquare,
		MiterLimit: 10,
	}
}
