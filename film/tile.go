package film

import "fmt"

// Tile is the half-open pixel rectangle [XStart, XEnd) x [YStart, YEnd),
// the unit of parallel render work.
type Tile struct {
	XStart int
	YStart int
	XEnd   int
	YEnd   int
}

func (t Tile) Width() int {
	return t.XEnd - t.XStart
}

func (t Tile) Height() int {
	return t.YEnd - t.YStart
}

// PixelCount is the number of pixels covered by the tile.
func (t Tile) PixelCount() int {
	return t.Width() * t.Height()
}

// Subdivide partitions the tile into sub-tiles of at most the preferred
// width and height, scanning in raster order.  The result covers the tile
// exactly, with no overlaps; tiles on the far edges may be smaller than
// preferred.
func (t Tile) Subdivide(prefWidth, prefHeight int) ([]Tile, error) {
	if prefWidth <= 0 {
		return nil, fmt.Errorf("preferred tile width must be larger than zero, got %d", prefWidth)
	}
	if prefHeight <= 0 {
		return nil, fmt.Errorf("preferred tile height must be larger than zero, got %d", prefHeight)
	}

	var result []Tile
	for y := t.YStart; y < t.YEnd; y += prefHeight {
		for x := t.XStart; x < t.XEnd; x += prefWidth {
			xEnd := x + prefWidth
			if xEnd > t.XEnd {
				xEnd = t.XEnd
			}
			yEnd := y + prefHeight
			if yEnd > t.YEnd {
				yEnd = t.YEnd
			}
			result = append(result, Tile{XStart: x, YStart: y, XEnd: xEnd, YEnd: yEnd})
		}
	}
	return result, nil
}
