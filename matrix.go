package drawing

import (
	"math"
	"strings"
)

// Matrix is a 3x3 affine transformation matrix in row-vector convention:
//
//	| M11      M12      0 |
//	| M21      M22      0 |
//	| OffsetX  OffsetY  1 |
//
// A point (x, y) maps to
//
//	x' = x*M11 + y*M21 + OffsetX
//	y' = x*M12 + y*M22 + OffsetY
//
// The zero Matrix is not the identity; use IdentityMatrix.
type Matrix struct {
	M11, M12         float64
	M21, M22         float64
	OffsetX, OffsetY float64
}

// IdentityMatrix returns the identity transformation matrix.
func IdentityMatrix() Matrix {
	return Matrix{M11: 1, M22: 1}
}

// NewMatrix creates a matrix from its six components.
func NewMatrix(m11, m12, m21, m22, offsetX, offsetY float64) Matrix {
	return Matrix{M11: m11, M12: m12, M21: m21, M22: m22, OffsetX: offsetX, OffsetY: offsetY}
}

// IsIdentity reports whether m is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == IdentityMatrix()
}

// Determinant returns M11*M22 - M12*M21.
func (m Matrix) Determinant() float64 {
	return m.M11*m.M22 - m.M12*m.M21
}

// HasInverse reports whether m can be inverted.
func (m Matrix) HasInverse() bool {
	return !isZero(m.Determinant())
}

// Invert returns the inverse of m, or ErrSingularMatrix.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if isZero(det) {
		return m, ErrSingularMatrix
	}
	inv := 1 / det
	return Matrix{
		M11:     m.M22 * inv,
		M12:     -m.M12 * inv,
		M21:     -m.M21 * inv,
		M22:     m.M11 * inv,
		OffsetX: (m.M21*m.OffsetY - m.OffsetX*m.M22) * inv,
		OffsetY: (m.OffsetX*m.M12 - m.M11*m.OffsetY) * inv,
	}, nil
}

// Multiply returns a*b: the transformation a followed by b.
func Multiply(a, b Matrix) Matrix {
	return Matrix{
		M11:     a.M11*b.M11 + a.M12*b.M21,
		M12:     a.M11*b.M12 + a.M12*b.M22,
		M21:     a.M21*b.M11 + a.M22*b.M21,
		M22:     a.M21*b.M12 + a.M22*b.M22,
		OffsetX: a.OffsetX*b.M11 + a.OffsetY*b.M21 + b.OffsetX,
		OffsetY: a.OffsetX*b.M12 + a.OffsetY*b.M22 + b.OffsetY,
	}
}

// Append returns m followed by n.
func (m Matrix) Append(n Matrix) Matrix { return Multiply(m, n) }

// Prepend returns n followed by m.
func (m Matrix) Prepend(n Matrix) Matrix { return Multiply(n, m) }

// Translate appends a translation.
func (m Matrix) Translate(dx, dy float64) Matrix {
	m.OffsetX += dx
	m.OffsetY += dy
	return m
}

// TranslatePrepend prepends a translation.
func (m Matrix) TranslatePrepend(dx, dy float64) Matrix {
	return m.Prepend(translation(dx, dy))
}

// Scale appends a scale about the origin.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Append(scaling(sx, sy, 0, 0))
}

// ScaleAt appends a scale about (cx, cy).
func (m Matrix) ScaleAt(sx, sy, cx, cy float64) Matrix {
	return m.Append(scaling(sx, sy, cx, cy))
}

// ScalePrepend prepends a scale about the origin.
func (m Matrix) ScalePrepend(sx, sy float64) Matrix {
	return m.Prepend(scaling(sx, sy, 0, 0))
}

// ScaleAtPrepend prepends a scale about (cx, cy).
func (m Matrix) ScaleAtPrepend(sx, sy, cx, cy float64) Matrix {
	return m.Prepend(scaling(sx, sy, cx, cy))
}

// Rotate appends a rotation of angle degrees about the origin.
func (m Matrix) Rotate(angle float64) Matrix {
	return m.Append(rotation(angle, 0, 0))
}

// RotateAt appends a rotation of angle degrees about (cx, cy).
func (m Matrix) RotateAt(angle, cx, cy float64) Matrix {
	return m.Append(rotation(angle, cx, cy))
}

// RotatePrepend prepends a rotation of angle degrees about the origin.
func (m Matrix) RotatePrepend(angle float64) Matrix {
	return m.Prepend(rotation(angle, 0, 0))
}

// RotateAtPrepend prepends a rotation of angle degrees about (cx, cy).
func (m Matrix) RotateAtPrepend(angle, cx, cy float64) Matrix {
	return m.Prepend(rotation(angle, cx, cy))
}

// Skew appends a skew of skewX and skewY degrees.
func (m Matrix) Skew(skewX, skewY float64) Matrix {
	return m.Append(skewing(skewX, skewY))
}

// SkewPrepend prepends a skew of skewX and skewY degrees.
func (m Matrix) SkewPrepend(skewX, skewY float64) Matrix {
	return m.Prepend(skewing(skewX, skewY))
}

// TransformPoint applies m to p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: p.X*m.M11 + p.Y*m.M21 + m.OffsetX,
		Y: p.X*m.M12 + p.Y*m.M22 + m.OffsetY,
	}
}

// TransformPoints applies m to every point and returns a new slice.
func (m Matrix) TransformPoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// TransformVector applies the linear part of m to v.
func (m Matrix) TransformVector(v Vector) Vector {
	return Vector{
		X: v.X*m.M11 + v.Y*m.M21,
		Y: v.X*m.M12 + v.Y*m.M22,
	}
}

// TransformVectors applies the linear part of m to every vector.
func (m Matrix) TransformVectors(vs []Vector) []Vector {
	out := make([]Vector, len(vs))
	for i, v := range vs {
		out[i] = m.TransformVector(v)
	}
	return out
}

// String returns "Identity" or "m11,m12,m21,m22,offsetX,offsetY".
func (m Matrix) String() string {
	if m.IsIdentity() {
		return "Identity"
	}
	return joinFloats(m.M11, m.M12, m.M21, m.M22, m.OffsetX, m.OffsetY)
}

// ParseMatrix parses "Identity" or six numbers.
func ParseMatrix(s string) (Matrix, error) {
	if strings.TrimSpace(s) == "Identity" {
		return IdentityMatrix(), nil
	}
	n, err := parseNumbers("Matrix", s, 6)
	if err != nil {
		return Matrix{}, err
	}
	return NewMatrix(n[0], n[1], n[2], n[3], n[4], n[5]), nil
}

func translation(dx, dy float64) Matrix {
	return Matrix{M11: 1, M22: 1, OffsetX: dx, OffsetY: dy}
}

func scaling(sx, sy, cx, cy float64) Matrix {
	return Matrix{M11: sx, M22: sy, OffsetX: cx - sx*cx, OffsetY: cy - sy*cy}
}

func rotation(angle, cx, cy float64) Matrix {
	rad := math.Mod(angle, 360) * (math.Pi / 180)
	sin, cos := math.Sincos(rad)
	return Matrix{
		M11:     cos,
		M12:     sin,
		M21:     -sin,
		M22:     cos,
		OffsetX: cx*(1-cos) + cy*sin,
		OffsetY: cy*(1-cos) - cx*sin,
	}
}

func skewing(skewX, skewY float64) Matrix {
	return Matrix{
		M11: 1,
		M12: math.Tan(math.Mod(skewY, 360) * (math.Pi / 180)),
		M21: math.Tan(math.Mod(skewX, 360) * (math.Pi / 180)),
		M22: 1,
	}
}

// isZero reports whether v is within rounding distance of zero.
func isZero(v float64) bool {
	return math.Abs(v) < 10*epsilon
}

const epsilon = 2.2204460492503131e-16
