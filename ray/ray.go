// Package ray implements view rays.
package ray

import (
	"tilecast/affinetransform"
	"tilecast/vmath/point3"
	"tilecast/vmath/vec3"
)

// Ray is a half-line with origin Point and direction Slope.  Slope is not
// required to be unit length, and nothing in this package normalizes it.
type Ray struct {
	Point point3.T
	Slope vec3.T
}

func (r Ray) Eval(t float64) point3.T {
	return point3.T{
		r.Point[0] + t*r.Slope[0],
		r.Point[1] + t*r.Slope[1],
		r.Point[2] + t*r.Slope[2],
	}
}

// Transform applies a to the origin and direction independently.  The
// direction length is left alone so that parameter values stay comparable
// across spaces.
func (r Ray) Transform(a affinetransform.AffineTransform) Ray {
	return Ray{
		Point: a.TransformPoint(r.Point),
		Slope: a.TransformVec(r.Slope),
	}
}

// InverseTransform applies the inverse of a to the origin and direction
// independently.
func (r Ray) InverseTransform(a affinetransform.AffineTransform) Ray {
	return Ray{
		Point: a.InverseTransformPoint(r.Point),
		Slope: a.InverseTransformVec(r.Slope),
	}
}
