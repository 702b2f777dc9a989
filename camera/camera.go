// Package camera maps image-space samples to world-space view rays.
package camera

import (
	"fmt"
	"math"

	"tilecast/orthobasis"
	"tilecast/ray"
	"tilecast/sampling"
	"tilecast/vmath/point3"
	"tilecast/vmath/vec3"
)

type Camera interface {
	GenerateRay(s sampling.Sample) ray.Ray
}

// PerspectiveCamera is a pinhole camera.  The image-plane extents are
// derived from the field of view once at construction; the camera is
// immutable afterwards and safe for concurrent use.
type PerspectiveCamera struct {
	origin point3.T
	basis  orthobasis.T

	// Dimensions of the image plane at unit distance from the origin.
	planeWidth  float64
	planeHeight float64

	invXResolution float64
	invYResolution float64
}

// NewPerspective creates a camera at origin looking along lookat, with up
// fixing the roll.  fov is the horizontal field of view in degrees,
// exclusive between 0 and 180.
func NewPerspective(xResolution, yResolution int, origin point3.T, lookat, up vec3.T, fov float64) (*PerspectiveCamera, error) {
	if xResolution < 1 {
		return nil, fmt.Errorf("horizontal resolution must be at least one, got %d", xResolution)
	}
	if yResolution < 1 {
		return nil, fmt.Errorf("vertical resolution must be at least one, got %d", yResolution)
	}
	if fov <= 0 {
		return nil, fmt.Errorf("field of view must be larger than zero degrees, got %v", fov)
	}
	if fov >= 180 {
		return nil, fmt.Errorf("field of view must be smaller than 180 degrees, got %v", fov)
	}

	basis, err := orthobasis.FromWV(lookat, up)
	if err != nil {
		return nil, fmt.Errorf("while building view basis: %w", err)
	}

	planeWidth := 2.0 * math.Tan(0.5*fov*math.Pi/180.0)
	planeHeight := planeWidth * float64(yResolution) / float64(xResolution)

	return &PerspectiveCamera{
		origin:         origin,
		basis:          basis,
		planeWidth:     planeWidth,
		planeHeight:    planeHeight,
		invXResolution: 1.0 / float64(xResolution),
		invYResolution: 1.0 / float64(yResolution),
	}, nil
}

// NewPerspectiveLookAt creates a camera at origin looking toward the given
// destination point.
func NewPerspectiveLookAt(xResolution, yResolution int, origin, destination point3.T, up vec3.T, fov float64) (*PerspectiveCamera, error) {
	return NewPerspective(xResolution, yResolution, origin, point3.SubPP(destination, origin), up, fov)
}

// GenerateRay maps s to the ray from the camera origin through the
// corresponding point on the image plane.  The direction is not
// normalized; the sphere intersection predicate is invariant under
// direction scaling.
func (c *PerspectiveCamera) GenerateRay(s sampling.Sample) ray.Ray {
	u := c.planeWidth * (s.X*c.invXResolution - 0.5)
	v := c.planeHeight * (s.Y*c.invYResolution - 0.5)

	direction := vec3.AddVV(
		c.basis.W,
		vec3.AddVV(vec3.MulVS(c.basis.U, u), vec3.MulVS(c.basis.V, v)),
	)

	return ray.Ray{Point: c.origin, Slope: direction}
}
