package shape

import (
	"fmt"
	"math"

	"tilecast/affinetransform"
	"tilecast/ray"
	"tilecast/vmath/point3"
	"tilecast/vmath/vec3"
)

// Sphere is a sphere of the given radius centered at the object-space
// origin, placed into the world by its transform.  Immutable.
type Sphere struct {
	objectToWorld affinetransform.AffineTransform
	radius        float64
}

func NewSphere(objectToWorld affinetransform.AffineTransform, radius float64) (*Sphere, error) {
	if radius < 0 {
		return nil, fmt.Errorf("sphere radius must not be negative, got %v", radius)
	}
	return &Sphere{objectToWorld: objectToWorld, radius: radius}, nil
}

// Intersect reports whether r hits the sphere.  The quadratic is solved in
// object space with the q-form root extraction, which avoids catastrophic
// cancellation when the roots are nearly equal.
//
// A hit is reported whenever either root is non-negative.  There is no
// minimum-epsilon or maximum-distance clip, so a ray whose origin lies on
// or inside the sphere still reports a hit.  This matches the reference
// behavior and is relied on by callers; do not tighten it.
func (s *Sphere) Intersect(r ray.Ray) bool {
	transformed := r.InverseTransform(s.objectToWorld)

	o := point3.AsVec(transformed.Point)
	d := transformed.Slope

	a := vec3.IProd(d, d)
	b := 2.0 * vec3.IProd(d, o)
	c := vec3.IProd(o, o) - s.radius*s.radius

	disc := b*b - 4.0*a*c
	if disc < 0 {
		return false
	}

	root := math.Sqrt(disc)
	var q float64
	if b < 0 {
		q = -0.5 * (b - root)
	} else {
		q = -0.5 * (b + root)
	}

	t0 := q / a
	t1 := c / q

	return t0 >= 0 || t1 >= 0
}
