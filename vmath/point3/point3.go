// Package point3 implements three-dimensional positions.  Positions and
// directions are kept as separate types: a point transforms with the
// translation component of an affine map, a vec3.T does not.
package point3

import "tilecast/vmath/vec3"

type T [3]float64

// AddPV offsets a point by a vector, yielding a point.
func AddPV(a T, b vec3.T) T {
	return T{
		a[0] + b[0],
		a[1] + b[1],
		a[2] + b[2],
	}
}

// SubPP is the displacement from b to a.
func SubPP(a, b T) vec3.T {
	return vec3.T{
		a[0] - b[0],
		a[1] - b[1],
		a[2] - b[2],
	}
}

// AsVec reinterprets the point as its displacement from the origin.
func AsVec(a T) vec3.T {
	return vec3.T{a[0], a[1], a[2]}
}
