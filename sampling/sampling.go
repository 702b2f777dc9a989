// Package sampling carries the data a camera needs to generate a ray on
// the image plane.
package sampling

// Sample is a continuous image-space coordinate.  X lies in
// [0, xResolution) and Y in [0, yResolution).
type Sample struct {
	X float64
	Y float64
}
