package film

import "fmt"

// FrameBuffer is a fixed-size grid of accumulating pixels.  It is created
// once per render and never resized.  Concurrent writers must restrict
// themselves to disjoint tiles; the buffer itself takes no locks.
type FrameBuffer struct {
	XResolution int
	YResolution int

	// Row-major, y*XResolution+x.
	pixels []Pixel
}

func NewFrameBuffer(xResolution, yResolution int) (*FrameBuffer, error) {
	if xResolution <= 0 {
		return nil, fmt.Errorf("horizontal resolution must be larger than zero, got %d", xResolution)
	}
	if yResolution <= 0 {
		return nil, fmt.Errorf("vertical resolution must be larger than zero, got %d", yResolution)
	}
	return &FrameBuffer{
		XResolution: xResolution,
		YResolution: yResolution,
		pixels:      make([]Pixel, xResolution*yResolution),
	}, nil
}

// Pixel returns the accumulator at (x, y).  Out-of-range coordinates are a
// programming error and panic like any bad index.
func (fb *FrameBuffer) Pixel(x, y int) *Pixel {
	if x < 0 || x >= fb.XResolution || y < 0 || y >= fb.YResolution {
		panic(fmt.Sprintf("film: pixel index (%d, %d) out of range [0, %d) x [0, %d)",
			x, y, fb.XResolution, fb.YResolution))
	}
	return &fb.pixels[y*fb.XResolution+x]
}

// Bounds is the tile covering the whole buffer.
func (fb *FrameBuffer) Bounds() Tile {
	return Tile{XStart: 0, YStart: 0, XEnd: fb.XResolution, YEnd: fb.YResolution}
}

// Subdivide partitions the buffer into tiles of at most the preferred
// width and height.  The tiles exactly and disjointly cover the buffer.
func (fb *FrameBuffer) Subdivide(prefWidth, prefHeight int) ([]Tile, error) {
	return fb.Bounds().Subdivide(prefWidth, prefHeight)
}
