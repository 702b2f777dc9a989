package mat44

import (
	"math"
	"testing"

	"tilecast/vmath/point3"
	"tilecast/vmath/vec3"
)

func matNear(a, b T, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestInverseRoundTrip(t *testing.T) {
	m := T{
		2, 1, 0, 3,
		0, 1, 4, -1,
		5, 0, 1, 0,
		0, 0, 0, 1,
	}

	if got := MulMM(m, Inverse(m)); !matNear(got, Identity(), 1e-9) {
		t.Errorf("m * Inverse(m) = %v, want identity", got)
	}
	if got := MulMM(Inverse(m), m); !matNear(got, Identity(), 1e-9) {
		t.Errorf("Inverse(m) * m = %v, want identity", got)
	}
}

func TestTransposeInvolution(t *testing.T) {
	m := T{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	if got := Transpose(Transpose(m)); got != m {
		t.Errorf("Transpose(Transpose(m)) = %v, want %v", got, m)
	}
}

func TestTransformPointAppliesTranslation(t *testing.T) {
	m := T{
		1, 0, 0, 10,
		0, 1, 0, -3,
		0, 0, 1, 0.5,
		0, 0, 0, 1,
	}

	if got := TransformPoint(m, point3.T{1, 2, 3}); got != (point3.T{11, -1, 3.5}) {
		t.Errorf("TransformPoint = %v, want {11, -1, 3.5}", got)
	}
}

func TestTransformPointHomogeneousDivide(t *testing.T) {
	m := T{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 1, 0,
	}

	if got := TransformPoint(m, point3.T{1, 2, 2}); got != (point3.T{0.5, 1, 1}) {
		t.Errorf("TransformPoint = %v, want {0.5, 1, 1}", got)
	}
}

func TestTransformVecIgnoresTranslation(t *testing.T) {
	m := T{
		1, 0, 0, 10,
		0, 1, 0, -3,
		0, 0, 1, 0.5,
		0, 0, 0, 1,
	}

	if got := TransformVec(m, vec3.T{1, 2, 3}); got != (vec3.T{1, 2, 3}) {
		t.Errorf("TransformVec = %v, want {1, 2, 3}", got)
	}
}
