package drawing

import "math"

// Point is a location in two-dimensional space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// SubVector returns the point displaced by -v.
func (p Point) SubVector(v Vector) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

// Offset returns the point moved by dx and dy.
func (p Point) Offset(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Transform returns the point transformed by m, offset included.
func (p Point) Transform(m Matrix) Point {
	return m.TransformPoint(p)
}

// ToVector converts the point to a vector from the origin.
func (p Point) ToVector() Vector {
	return Vector{X: p.X, Y: p.Y}
}

// ToSize converts the point to a size with the absolute values of X and Y.
func (p Point) ToSize() Size {
	return Size{Width: math.Abs(p.X), Height: math.Abs(p.Y)}
}

// String returns "x,y".
func (p Point) String() string {
	return joinFloats(p.X, p.Y)
}

// ParsePoint parses "x,y" or "x y".
func ParsePoint(s string) (Point, error) {
	v, err := parseNumbers("Point", s, 2)
	if err != nil {
		return Point{}, err
	}
	return Point{X: v[0], Y: v[1]}, nil
}
