// Package affinetransform implements affine maps of three-dimensional
// space.  Every transform carries its inverse, computed analytically at
// construction time, so applying the inverse never costs a matrix solve.
package affinetransform

import (
	"fmt"
	"math"

	"tilecast/vmath/mat44"
	"tilecast/vmath/point3"
	"tilecast/vmath/vec3"
)

// AffineTransform is immutable once constructed.  The forward and inverse
// matrices compose to the identity up to floating-point error.
type AffineTransform struct {
	forward mat44.T
	inverse mat44.T
}

func Identity() AffineTransform {
	return AffineTransform{
		forward: mat44.Identity(),
		inverse: mat44.Identity(),
	}
}

func Translate(x, y, z float64) AffineTransform {
	return AffineTransform{
		forward: mat44.T{
			1, 0, 0, x,
			0, 1, 0, y,
			0, 0, 1, z,
			0, 0, 0, 1,
		},
		inverse: mat44.T{
			1, 0, 0, -x,
			0, 1, 0, -y,
			0, 0, 1, -z,
			0, 0, 0, 1,
		},
	}
}

// Scale builds a per-axis scale.  A zero factor is rejected because its
// reciprocal inverse would not be finite.
func Scale(x, y, z float64) (AffineTransform, error) {
	if x == 0 || y == 0 || z == 0 {
		return AffineTransform{}, fmt.Errorf("scale factors must be nonzero, got (%v, %v, %v)", x, y, z)
	}
	return AffineTransform{
		forward: mat44.T{
			x, 0, 0, 0,
			0, y, 0, 0,
			0, 0, z, 0,
			0, 0, 0, 1,
		},
		inverse: mat44.T{
			1 / x, 0, 0, 0,
			0, 1 / y, 0, 0,
			0, 0, 1 / z, 0,
			0, 0, 0, 1,
		},
	}, nil
}

// UniformScale scales all three axes by s.
func UniformScale(s float64) (AffineTransform, error) {
	return Scale(s, s, s)
}

// RotateX rotates counterclockwise about the x axis.  The angle is in
// degrees.  Rotation matrices are orthonormal, so the inverse is the
// transpose.
func RotateX(angleDegrees float64) AffineTransform {
	sin, cos := math.Sincos(angleDegrees * math.Pi / 180.0)
	forward := mat44.T{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	}
	return AffineTransform{forward: forward, inverse: mat44.Transpose(forward)}
}

// RotateY rotates counterclockwise about the y axis.  The angle is in
// degrees.
func RotateY(angleDegrees float64) AffineTransform {
	sin, cos := math.Sincos(angleDegrees * math.Pi / 180.0)
	forward := mat44.T{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	}
	return AffineTransform{forward: forward, inverse: mat44.Transpose(forward)}
}

// RotateZ rotates counterclockwise about the z axis.  The angle is in
// degrees.
func RotateZ(angleDegrees float64) AffineTransform {
	sin, cos := math.Sincos(angleDegrees * math.Pi / 180.0)
	forward := mat44.T{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return AffineTransform{forward: forward, inverse: mat44.Transpose(forward)}
}

// Rotate rotates counterclockwise about an arbitrary axis.  The angle is in
// degrees.  The axis must have nonzero length.
func Rotate(axis vec3.T, angleDegrees float64) (AffineTransform, error) {
	if axis.IsZero() {
		return AffineTransform{}, fmt.Errorf("rotation axis has zero length")
	}
	n := vec3.Normalize(axis)

	sin, cos := math.Sincos(angleDegrees * math.Pi / 180.0)
	ncos := 1.0 - cos

	forward := mat44.T{
		n[0]*n[0]*ncos + cos, n[1]*n[0]*ncos - n[2]*sin, n[2]*n[0]*ncos + n[1]*sin, 0,
		n[0]*n[1]*ncos + n[2]*sin, n[1]*n[1]*ncos + cos, n[2]*n[1]*ncos - n[0]*sin, 0,
		n[0]*n[2]*ncos - n[1]*sin, n[1]*n[2]*ncos + n[0]*sin, n[2]*n[2]*ncos + cos, 0,
		0, 0, 0, 1,
	}
	return AffineTransform{forward: forward, inverse: mat44.Transpose(forward)}, nil
}

// Compose returns the transform that applies b, then a.  Forward matrices
// compose as a*b; the inverses compose in the opposite order.
func Compose(a, b AffineTransform) AffineTransform {
	return AffineTransform{
		forward: mat44.MulMM(a.forward, b.forward),
		inverse: mat44.MulMM(b.inverse, a.inverse),
	}
}

// Invert swaps the forward and inverse matrices.
func (t AffineTransform) Invert() AffineTransform {
	return AffineTransform{forward: t.inverse, inverse: t.forward}
}

func (t AffineTransform) Forward() mat44.T {
	return t.forward
}

func (t AffineTransform) Inverse() mat44.T {
	return t.inverse
}

func (t AffineTransform) TransformPoint(p point3.T) point3.T {
	return mat44.TransformPoint(t.forward, p)
}

func (t AffineTransform) InverseTransformPoint(p point3.T) point3.T {
	return mat44.TransformPoint(t.inverse, p)
}

func (t AffineTransform) TransformVec(v vec3.T) vec3.T {
	return mat44.TransformVec(t.forward, v)
}

func (t AffineTransform) InverseTransformVec(v vec3.T) vec3.T {
	return mat44.TransformVec(t.inverse, v)
}
