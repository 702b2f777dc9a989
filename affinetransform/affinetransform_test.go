package affinetransform

import (
	"math"
	"testing"

	"tilecast/vmath/mat44"
	"tilecast/vmath/point3"
	"tilecast/vmath/vec3"
)

func pointNear(a, b point3.T, tol float64) bool {
	return math.Abs(a[0]-b[0]) <= tol && math.Abs(a[1]-b[1]) <= tol && math.Abs(a[2]-b[2]) <= tol
}

func vecNear(a, b vec3.T, tol float64) bool {
	return math.Abs(a[0]-b[0]) <= tol && math.Abs(a[1]-b[1]) <= tol && math.Abs(a[2]-b[2]) <= tol
}

func matNear(a, b mat44.T, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func testTransforms(t *testing.T) map[string]AffineTransform {
	t.Helper()

	scale, err := Scale(2, 3, 0.25)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	rotate, err := Rotate(vec3.T{1, 1, 1}, 72)
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}

	translate := Translate(5, -2, 11)
	return map[string]AffineTransform{
		"identity":  Identity(),
		"translate": translate,
		"scale":     scale,
		"rotateX":   RotateX(30),
		"rotateY":   RotateY(-120),
		"rotateZ":   RotateZ(45),
		"rotate":    rotate,
		"composed":  Compose(translate, Compose(rotate, scale)),
	}
}

func TestRoundTripPoints(t *testing.T) {
	p := point3.T{1.5, -2, 0.75}

	for name, tf := range testTransforms(t) {
		t.Run(name, func(t *testing.T) {
			got := tf.InverseTransformPoint(tf.TransformPoint(p))
			if !pointNear(got, p, 1e-9) {
				t.Errorf("Inverse(Transform(p)) = %v, want %v", got, p)
			}
		})
	}
}

func TestRoundTripVectors(t *testing.T) {
	v := vec3.T{-3, 0.5, 2}

	for name, tf := range testTransforms(t) {
		t.Run(name, func(t *testing.T) {
			got := tf.InverseTransformVec(tf.TransformVec(v))
			if !vecNear(got, v, 1e-9) {
				t.Errorf("Inverse(Transform(v)) = %v, want %v", got, v)
			}
		})
	}
}

// The cached inverse must agree with a numeric inverse of the forward
// matrix, so the analytic constructions can't drift from the matrices
// they claim to invert.
func TestAnalyticInverseMatchesNumeric(t *testing.T) {
	for name, tf := range testTransforms(t) {
		t.Run(name, func(t *testing.T) {
			if got := tf.Inverse(); !matNear(got, mat44.Inverse(tf.Forward()), 1e-9) {
				t.Errorf("Cached inverse %v disagrees with numeric inverse of the forward matrix", got)
			}
		})
	}
}

func TestForwardInverseComposeToIdentity(t *testing.T) {
	for name, tf := range testTransforms(t) {
		t.Run(name, func(t *testing.T) {
			if got := mat44.MulMM(tf.Forward(), tf.Inverse()); !matNear(got, mat44.Identity(), 1e-9) {
				t.Errorf("forward * inverse = %v, want identity", got)
			}
		})
	}
}

func TestComposeAppliesSecondArgumentFirst(t *testing.T) {
	// Scale by 2, then translate: the translation must not be scaled.
	scale, err := UniformScale(2)
	if err != nil {
		t.Fatalf("UniformScale: %v", err)
	}
	tf := Compose(Translate(10, 0, 0), scale)

	got := tf.TransformPoint(point3.T{1, 1, 1})
	if want := (point3.T{12, 2, 2}); !pointNear(got, want, 1e-12) {
		t.Errorf("Compose(translate, scale).TransformPoint = %v, want %v", got, want)
	}
}

func TestComposeWithIdentityIsNoOp(t *testing.T) {
	tf := Translate(1, 2, 3)
	p := point3.T{4, 5, 6}

	if got := Compose(tf, Identity()).TransformPoint(p); got != tf.TransformPoint(p) {
		t.Errorf("Compose(tf, identity) moved %v to %v", tf.TransformPoint(p), got)
	}
	if got := Compose(Identity(), tf).TransformPoint(p); got != tf.TransformPoint(p) {
		t.Errorf("Compose(identity, tf) moved %v to %v", tf.TransformPoint(p), got)
	}
}

func TestInvertSwaps(t *testing.T) {
	tf := Translate(1, 2, 3)
	inv := tf.Invert()

	if got := inv.TransformPoint(point3.T{1, 2, 3}); got != (point3.T{0, 0, 0}) {
		t.Errorf("Inverted translate moved point to %v, want origin", got)
	}
}

func TestRotateRejectsZeroAxis(t *testing.T) {
	if _, err := Rotate(vec3.T{}, 45); err == nil {
		t.Errorf("Rotate with zero axis succeeded, want error")
	}
}

func TestScaleRejectsZeroFactor(t *testing.T) {
	if _, err := Scale(1, 0, 1); err == nil {
		t.Errorf("Scale with zero factor succeeded, want error")
	}
}

func TestVectorTransformIgnoresTranslation(t *testing.T) {
	tf := Translate(100, 100, 100)

	if got := tf.TransformVec(vec3.T{1, 0, 0}); got != (vec3.T{1, 0, 0}) {
		t.Errorf("Translated vector = %v, want {1, 0, 0}", got)
	}
}
