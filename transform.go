package drawing

// Transform is a two-dimensional transformation that can be pushed onto a
// DrawingContext. The set of implementations is closed.
type Transform interface {
	// Value returns the matrix the transform currently represents.
	Value() Matrix

	transformMarker()
}

// TranslateTransform moves content by X and Y.
type TranslateTransform struct {
	X, Y float64
}

func (t *TranslateTransform) Value() Matrix { return translation(t.X, t.Y) }

// ScaleTransform scales content about (CenterX, CenterY).
type ScaleTransform struct {
	ScaleX, ScaleY   float64
	CenterX, CenterY float64
}

func (t *ScaleTransform) Value() Matrix {
	return scaling(t.ScaleX, t.ScaleY, t.CenterX, t.CenterY)
}

// RotateTransform rotates content by Angle degrees about (CenterX, CenterY).
type RotateTransform struct {
	Angle            float64
	CenterX, CenterY float64
}

func (t *RotateTransform) Value() Matrix {
	return rotation(t.Angle, t.CenterX, t.CenterY)
}

// SkewTransform skews content by AngleX and AngleY degrees about
// (CenterX, CenterY).
type SkewTransform struct {
	AngleX, AngleY   float64
	CenterX, CenterY float64
}

func (t *SkewTransform) Value() Matrix {
	return translation(-t.CenterX, -t.CenterY).
		Append(skewing(t.AngleX, t.AngleY)).
		Translate(t.CenterX, t.CenterY)
}

// MatrixTransform wraps an arbitrary Matrix.
type MatrixTransform struct {
	Matrix Matrix
}

func (t *MatrixTransform) Value() Matrix { return t.Matrix }

// TransformGroup composes its children in order.
type TransformGroup struct {
	Children []Transform
}

func (t *TransformGroup) Value() Matrix {
	m := IdentityMatrix()
	for _, c := range t.Children {
		if c != nil {
			m = m.Append(c.Value())
		}
	}
	return m
}

func (*TranslateTransform) transformMarker() {}
func (*ScaleTransform) transformMarker()     {}
func (*RotateTransform) transformMarker()    {}
func (*SkewTransform) transformMarker()      {}
func (*MatrixTransform) transformMarker()    {}
func (*TransformGroup) transformMarker()     {}

var identityTransform = &MatrixTransform{Matrix: IdentityMatrix()}

// IdentityTransform returns the shared identity transform.
// Callers must not modify it.
func IdentityTransform() Transform { return identityTransform }
