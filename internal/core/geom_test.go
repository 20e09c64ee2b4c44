package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a, b := V(1, 2), V(4, 6)

	if got := a.Add(b); got != V(5, 8) {
		t.Errorf("Add = %+v, expected {5 8}", got)
	}
	if got := b.Sub(a); got != V(3, 4) {
		t.Errorf("Sub = %+v, expected {3 4}", got)
	}
	if got := a.Scale(3); got != V(3, 6) {
		t.Errorf("Scale = %+v, expected {3 6}", got)
	}
	if got := b.Sub(a).Len(); got != 5 {
		t.Errorf("Len = %f, expected 5", got)
	}
	if got := a.Dist(b); got != 5 {
		t.Errorf("Dist = %f, expected 5", got)
	}
	if got := a.Mid(b); got != V(2.5, 4) {
		t.Errorf("Mid = %+v, expected {2.5 4}", got)
	}
}

func TestDistIsSymmetric(t *testing.T) {
	a, b := V(-3, 7.5), V(12, -1)
	if math.Abs(a.Dist(b)-b.Dist(a)) > 1e-12 {
		t.Errorf("Dist not symmetric: %f vs %f", a.Dist(b), b.Dist(a))
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi float64
		want        float64
	}{
		{5.5, 0, 10, 5.5},
		{-1.5, 0, 10, 0},
		{15.5, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{3, 4, 4, 4},
	}
	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%g, %g, %g) = %g, expected %g", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}
