package drawing

import "math"

// Vector is a displacement in two-dimensional space.
type Vector struct {
	X, Y float64
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// AddPoint returns p displaced by v.
func (v Vector) AddPoint(p Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Mul returns the vector scaled by s.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by s.
func (v Vector) Div(s float64) Vector {
	return v.Mul(1 / s)
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Determinant returns the determinant of the 2x2 matrix with rows v and w.
func Determinant(v, w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared length of the vector.
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to (NaN, NaN).
func (v Vector) Normalize() Vector {
	// Scale first so Length does not overflow for huge components.
	v = v.Div(math.Max(math.Abs(v.X), math.Abs(v.Y)))
	return v.Div(v.Length())
}

// Negate returns the vector with both components negated.
func (v Vector) Negate() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Transform returns the vector transformed by m. Offsets are ignored.
func (v Vector) Transform(m Matrix) Vector {
	return m.TransformVector(v)
}

// ToPoint converts the vector to a point.
func (v Vector) ToPoint() Point {
	return Point{X: v.X, Y: v.Y}
}

// ToSize converts the vector to a size with the absolute values of X and Y.
func (v Vector) ToSize() Size {
	return Size{Width: math.Abs(v.X), Height: math.Abs(v.Y)}
}

// AngleBetween returns the signed angle in degrees from v to w.
func AngleBetween(v, w Vector) float64 {
	sin := v.X*w.Y - w.X*v.Y
	cos := v.X*w.X + v.Y*w.Y
	return math.Atan2(sin, cos) * (180 / math.Pi)
}

// String returns "x,y".
func (v Vector) String() string {
	return joinFloats(v.X, v.Y)
}

// ParseVector parses "x,y" or "x y".
func ParseVector(s string) (Vector, error) {
	n, err := parseNumbers("Vector", s, 2)
	if err != nil {
		return Vector{}, err
	}
	return Vector{X: n[0], Y: n[1]}, nil
}
