package drawing

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func nearPoint(a, b Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)

	if got, want := p.Add(Vec(3, 4)), Pt(4, 6); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := p.Sub(Pt(4, 6)), Vec(-3, -4); got != want {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := p.SubVector(Vec(1, 1)), Pt(0, 1); got != want {
		t.Errorf("SubVector() = %v, want %v", got, want)
	}
	if got, want := p.Offset(-1, 10), Pt(0, 12); got != want {
		t.Errorf("Offset() = %v, want %v", got, want)
	}
	if got, want := Pt(-3, 4).ToSize(), (Size{Width: 3, Height: 4}); got != want {
		t.Errorf("ToSize() = %v, want %v", got, want)
	}
	if got, want := p.ToVector(), Vec(1, 2); got != want {
		t.Errorf("ToVector() = %v, want %v", got, want)
	}
}

func TestPointTransform(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", IdentityMatrix(), Pt(3, 4), Pt(3, 4)},
		{"translate", IdentityMatrix().Translate(10, 20), Pt(1, 1), Pt(11, 21)},
		{"scale", IdentityMatrix().Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90", IdentityMatrix().Rotate(90), Pt(1, 0), Pt(0, 1)},
		{"translate then scale", IdentityMatrix().Translate(10, 20).Scale(2, 3), Pt(1, 1), Pt(22, 63)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Transform(tt.m); !nearPoint(got, tt.want) {
				t.Errorf("Transform() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointStringAndParse(t *testing.T) {
	if got, want := Pt(1.5, -2).String(), "1.5,-2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	tests := []struct {
		in      string
		want    Point
		wantErr bool
	}{
		{"1.5,-2", Pt(1.5, -2), false},
		{" 1.5 , -2 ", Pt(1.5, -2), false},
		{"3 4", Pt(3, 4), false},
		{"1,2,3", Point{}, true},
		{"x,2", Point{}, true},
		{"", Point{}, true},
	}
	for _, tt := range tests {
		got, err := ParsePoint(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrParse) {
				t.Errorf("ParsePoint(%q) error = %v, want ErrParse", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePoint(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
