// Package shape implements the geometric primitives the renderer can
// intersect rays against.
package shape

import "tilecast/ray"

// Shape is the one capability every primitive provides: a boolean
// visibility predicate.  There is deliberately no parametric distance or
// surface record; see Sphere.Intersect for the edge cases that follow.
type Shape interface {
	Intersect(r ray.Ray) bool
}
