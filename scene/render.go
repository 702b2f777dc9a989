package scene

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"tilecast/film"
	"tilecast/sampling"
)

// Render rasterizes s into fb, one task per tile.  The tile partition is
// built before any task is dispatched, so concurrent tasks write disjoint
// pixel ranges and the buffer needs no locking; only the progress counter
// is shared, under a mutex.
//
// Render blocks until every dispatched tile has finished.  A panicking
// tile task is contained: it is logged, its tile keeps whatever was
// accumulated before the panic, and the remaining tiles still render.  In
// that case Render returns an error describing the degraded output.  When
// Render returns, the buffer is safe for single-threaded reading; Render
// returning is the render-complete signal.
//
// A cancelled ctx stops dispatch of further tiles; tiles already running
// complete normally.
func Render(ctx context.Context, s *Scene, options *RenderOptions, fb *film.FrameBuffer, progress ProgressFunc) error {
	tileWidth := options.TileWidth
	if tileWidth <= 0 {
		tileWidth = defaultTileWidth
	}
	tileHeight := options.TileHeight
	if tileHeight <= 0 {
		tileHeight = defaultTileHeight
	}
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	passes := options.Passes
	if passes <= 0 {
		passes = 1
	}

	tiles, err := fb.Subdivide(tileWidth, tileHeight)
	if err != nil {
		return fmt.Errorf("while partitioning frame buffer: %w", err)
	}

	totalPixels := passes * fb.XResolution * fb.YResolution

	// progressMutex locks failedTiles and serializes progress callbacks.
	var progressMutex sync.Mutex
	failedTiles := 0

	// Use errgroup and semaphore to bound the number of in-flight tile
	// tasks to the worker count.
	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(workers))

	dispatched := 0
	for _, tile := range tiles {
		tile := tile // https://golang.org/doc/faq#closures_and_goroutines

		if err := sem.Acquire(ctx, 1); err != nil {
			// Dispatch refused; tiles already running drain below.
			break
		}
		dispatched++

		eg.Go(func() error {
			defer sem.Release(1)

			ok := renderTile(s, options, fb, tile, passes)

			progressMutex.Lock()
			defer progressMutex.Unlock()
			if !ok {
				failedTiles++
				return nil
			}
			if progress != nil {
				progress(passes*tile.PixelCount(), totalPixels)
			}
			return nil
		})
	}

	// Tile failures are contained in renderTile, so the group error is
	// only the context error propagated through Acquire.
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("while waiting for completion of errgroup: %w", err)
	}

	if dispatched < len(tiles) {
		return fmt.Errorf("render cancelled after dispatching %d of %d tiles: %w", dispatched, len(tiles), ctx.Err())
	}
	if failedTiles > 0 {
		return fmt.Errorf("render degraded: %d of %d tiles failed; affected regions hold partial or black pixels", failedTiles, len(tiles))
	}
	return nil
}

// renderTile accumulates one sample per pass into every pixel of the tile,
// in raster order.  Samples are taken at pixel centers.  Returns false
// when the task panicked.
func renderTile(s *Scene, options *RenderOptions, fb *film.FrameBuffer, tile film.Tile, passes int) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("Tile [%d, %d) x [%d, %d) failed: %v", tile.XStart, tile.XEnd, tile.YStart, tile.YEnd, r)
			ok = false
		}
	}()

	for pass := 0; pass < passes; pass++ {
		for y := tile.YStart; y < tile.YEnd; y++ {
			for x := tile.XStart; x < tile.XEnd; x++ {
				r := s.Camera.GenerateRay(sampling.Sample{X: float64(x) + 0.5, Y: float64(y) + 0.5})

				hit := false
				for _, sh := range s.Shapes {
					if sh.Intersect(r) {
						hit = true
						break
					}
				}

				if hit {
					fb.Pixel(x, y).AddSpectrum(options.HitColor, 1.0)
				} else {
					fb.Pixel(x, y).AddSpectrum(options.MissColor, 1.0)
				}
			}
		}
	}

	return true
}
