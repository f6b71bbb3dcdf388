package drawing

import (
	"errors"
	"testing"
)

func nearMatrix(a, b Matrix) bool {
	return near(a.M11, b.M11) && near(a.M12, b.M12) &&
		near(a.M21, b.M21) && near(a.M22, b.M22) &&
		near(a.OffsetX, b.OffsetX) && near(a.OffsetY, b.OffsetY)
}

func TestMatrixIdentity(t *testing.T) {
	m := IdentityMatrix()
	if !m.IsIdentity() {
		t.Error("IdentityMatrix().IsIdentity() = false")
	}
	if (Matrix{}).IsIdentity() {
		t.Error("zero Matrix reported as identity")
	}
	if got := m.String(); got != "Identity" {
		t.Errorf("String() = %q, want Identity", got)
	}
	if got := m.Determinant(); got != 1 {
		t.Errorf("Determinant() = %v, want 1", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := NewMatrix(2, 0, 0, 4, 10, 20)
	inv, err := m.Invert()
	if err != nil {
		t.Fatalf("Invert() error = %v", err)
	}
	want := NewMatrix(0.5, 0, 0, 0.25, -5, -5)
	if inv != want {
		t.Errorf("Invert() = %v, want %v", inv, want)
	}
	if got := m.Append(inv); !got.IsIdentity() {
		t.Errorf("m * m^-1 = %v, want identity", got)
	}

	singular := NewMatrix(1, 2, 2, 4, 0, 0)
	if singular.HasInverse() {
		t.Error("HasInverse() = true for singular matrix")
	}
	if _, err := singular.Invert(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Invert() error = %v, want ErrSingularMatrix", err)
	}
	if got := NewMatrix(1, 2, 3, 4, 0, 0).Determinant(); got != -2 {
		t.Errorf("Determinant() = %v, want -2", got)
	}
}

func TestMatrixAppendPrepend(t *testing.T) {
	scale := IdentityMatrix().Scale(2, 2)

	tests := []struct {
		name string
		m    Matrix
		want Point
	}{
		{"translate", scale.Translate(1, 0), Pt(3, 0)},
		{"translate prepend", scale.TranslatePrepend(1, 0), Pt(4, 0)},
		{"scale at", IdentityMatrix().ScaleAt(2, 2, 10, 10), Pt(-8, -10)},
		{"scale prepend", IdentityMatrix().Translate(1, 0).ScalePrepend(3, 1), Pt(4, 0)},
		{"scale at prepend", IdentityMatrix().Translate(1, 0).ScaleAtPrepend(2, 1, 1, 0), Pt(2, 0)},
		{"rotate at", IdentityMatrix().RotateAt(180, 1, 0), Pt(1, 0)},
		{"rotate prepend", IdentityMatrix().Translate(1, 0).RotatePrepend(90), Pt(1, 1)},
		{"rotate at prepend", IdentityMatrix().Translate(5, 0).RotateAtPrepend(180, 1, 0), Pt(6, 0)},
		{"append", scale.Append(IdentityMatrix().Translate(1, 1)), Pt(3, 1)},
		{"prepend", scale.Prepend(IdentityMatrix().Translate(1, 1)), Pt(4, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(Pt(1, 0)); !nearPoint(got, tt.want) {
				t.Errorf("TransformPoint(1,0) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrixSkew(t *testing.T) {
	m := IdentityMatrix().Skew(45, 0)
	if got := m.TransformPoint(Pt(0, 1)); !nearPoint(got, Pt(1, 1)) {
		t.Errorf("Skew(45, 0) maps (0,1) to %v, want (1,1)", got)
	}
	p := IdentityMatrix().Translate(0, 1).SkewPrepend(0, 45)
	if got := p.TransformPoint(Pt(1, 0)); !nearPoint(got, Pt(1, 2)) {
		t.Errorf("SkewPrepend(0, 45) maps (1,0) to %v, want (1,2)", got)
	}
}

func TestMatrixMultiply(t *testing.T) {
	a := NewMatrix(1, 2, 3, 4, 5, 6)
	b := NewMatrix(7, 8, 9, 10, 11, 12)
	want := NewMatrix(25, 28, 57, 64, 100, 112)
	if got := Multiply(a, b); got != want {
		t.Errorf("Multiply() = %v, want %v", got, want)
	}
	if got := a.TransformPoints([]Point{{X: 1, Y: 1}}); got[0] != Pt(9, 12) {
		t.Errorf("TransformPoints() = %v", got)
	}
}

func TestMatrixStringAndParse(t *testing.T) {
	m := NewMatrix(1, 2, 3, 4, 5.5, -6)
	if got := m.String(); got != "1,2,3,4,5.5,-6" {
		t.Errorf("String() = %q", got)
	}
	parsed, err := ParseMatrix(m.String())
	if err != nil || parsed != m {
		t.Errorf("ParseMatrix(%q) = %v, %v", m.String(), parsed, err)
	}
	if id, err := ParseMatrix("Identity"); err != nil || !id.IsIdentity() {
		t.Errorf("ParseMatrix(Identity) = %v, %v", id, err)
	}
	if _, err := ParseMatrix("1,2"); !errors.Is(err, ErrParse) {
		t.Errorf("ParseMatrix(1,2) error = %v", err)
	}
}

func TestTransformValues(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		want Point
	}{
		{"translate", &TranslateTransform{X: 10, Y: 10}, Pt(11, 10)},
		{"scale", &ScaleTransform{ScaleX: 2, ScaleY: 2, CenterX: 1}, Pt(1, 0)},
		{"rotate", &RotateTransform{Angle: 90}, Pt(0, 1)},
		{"skew", &SkewTransform{AngleY: 45}, Pt(1, 1)},
		{"matrix", &MatrixTransform{Matrix: IdentityMatrix().Scale(3, 3)}, Pt(3, 0)},
		{"group", &TransformGroup{Children: []Transform{
			&ScaleTransform{ScaleX: 2, ScaleY: 2},
			&TranslateTransform{X: 1},
		}}, Pt(3, 0)},
		{"identity", IdentityTransform(), Pt(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.Value().TransformPoint(Pt(1, 0)); !nearPoint(got, tt.want) {
				t.Errorf("Value().TransformPoint(1,0) = %v, want %v", got, tt.want)
			}
		})
	}
	if IdentityTransform() != IdentityTransform() {
		t.Error("IdentityTransform() is not shared")
	}
}
