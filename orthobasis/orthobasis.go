// Package orthobasis builds right-handed orthonormal frames from one or two
// directions.
package orthobasis

import (
	"fmt"
	"math"

	"github.com/golang/glog"

	"tilecast/vmath/vec3"
)

// T is a basis of three mutually orthogonal unit vectors with W × U = V.
type T struct {
	U vec3.T
	V vec3.T
	W vec3.T
}

// FromW builds a basis whose W axis points along a.  U is chosen by
// branching on the larger of W's x and y components, which keeps the
// construction stable for near axis-aligned inputs.
func FromW(a vec3.T) (T, error) {
	if a.IsZero() {
		return T{}, fmt.Errorf("basis vector has zero length")
	}

	w := vec3.Normalize(a)

	var u vec3.T
	if w[0] > w[1] {
		invLength := 1.0 / math.Sqrt(w[0]*w[0]+w[2]*w[2])
		u = vec3.T{-w[2] * invLength, 0.0, w[0] * invLength}
	} else {
		invLength := 1.0 / math.Sqrt(w[1]*w[1]+w[2]*w[2])
		u = vec3.T{0.0, w[2] * invLength, -w[1] * invLength}
	}

	return T{
		U: u,
		V: vec3.CProd(w, u),
		W: w,
	}, nil
}

// FromWV builds a basis whose W axis points along a, with V forced to point
// roughly along b.  Nearly collinear inputs produce a best-effort basis and
// a diagnostic; zero-length inputs are an error.
func FromWV(a, b vec3.T) (T, error) {
	if a.IsZero() {
		return T{}, fmt.Errorf("basis vector a has zero length")
	}
	if b.IsZero() {
		return T{}, fmt.Errorf("basis vector b has zero length")
	}

	if math.Abs(vec3.IProd(vec3.Normalize(a), vec3.Normalize(b))) > 1.0-1e-9 {
		glog.Warningf("Basis vectors %v and %v are nearly collinear", a, b)
	}

	w := vec3.Normalize(a)
	u := vec3.Normalize(vec3.CProd(b, w))

	return T{
		U: u,
		V: vec3.CProd(w, u),
		W: w,
	}, nil
}
