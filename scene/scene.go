// Package scene describes what to render and drives the tile-parallel
// render itself.
package scene

import (
	"tilecast/camera"
	"tilecast/film"
	"tilecast/shape"
)

// Scene is an ordered list of shapes seen through one camera.  Rays are
// tested against the shapes in list order, short-circuiting on the first
// hit, so the order is part of the scene description.
type Scene struct {
	Shapes []shape.Shape
	Camera camera.Camera
}

// RenderOptions configures one render.  Zero values select the defaults
// noted on each field.
type RenderOptions struct {
	// TileWidth and TileHeight bound the size of the tiles handed to
	// workers.  Default 32x32.
	TileWidth  int
	TileHeight int

	// Workers is the number of tiles rendered concurrently.  Default is
	// the logical core count.
	Workers int

	// Passes is the number of accumulation passes over every pixel.
	// Default 1.
	Passes int

	// HitColor is accumulated for pixels whose ray hits a shape,
	// MissColor for the rest.
	HitColor  film.RGBSpectrum
	MissColor film.RGBSpectrum
}

const (
	defaultTileWidth  = 32
	defaultTileHeight = 32
)

// ProgressFunc receives the number of newly finished pixels after each
// tile completes.  Calls are serialized by the scheduler, but may come
// from any worker goroutine.
type ProgressFunc func(newPixels, totalPixels int)
