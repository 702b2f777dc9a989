// Command renderer renders the demo sphere scene into a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"runtime/pprof"

	"github.com/golang/glog"

	"tilecast/affinetransform"
	"tilecast/camera"
	"tilecast/film"
	"tilecast/progress"
	"tilecast/scene"
	"tilecast/shape"
	"tilecast/vmath/point3"
	"tilecast/vmath/vec3"
)

var (
	outputFile = flag.String("output-file", "output.png", "Output image file")
	width      = flag.Int("width", 640, "Output image width")
	height     = flag.Int("height", 640, "Output image height")

	tileWidth  = flag.Int("tile-width", 32, "Preferred render tile width")
	tileHeight = flag.Int("tile-height", 32, "Preferred render tile height")
	workers    = flag.Int("workers", 0, "Number of parallel tile workers (0 = logical core count)")
	passes     = flag.Int("passes", 1, "Number of accumulation passes per pixel")

	fov         = flag.Float64("fov", 90.0, "Horizontal field of view in degrees")
	sensitivity = flag.Float64("sensitivity", 1.0, "Inverse exposure applied during tone mapping")
	gamma       = flag.Float64("gamma", 2.2, "Gamma correction applied during tone mapping")

	quiet = flag.Bool("quiet", false, "Suppress the console progress bar")

	cpuprofile = flag.String("cpu-profile", "", "write cpu profile to `file`")
	memprofile = flag.String("mem-profile", "", "write memory profile to `file`")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := do(); err != nil {
		log.Fatalf("Error: %v", err)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}

// demoScene is five spheres floating in front of the camera: a large one
// straight ahead and four smaller ones behind it at the diagonals.
func demoScene(width, height int, fov float64) (*scene.Scene, error) {
	spheres := []struct {
		x, y, z float64
		radius  float64
	}{
		{0, 0, 10, 5},
		{4, -4, 12, 4},
		{-4, -4, 12, 4},
		{4, 4, 12, 4},
		{-4, 4, 12, 4},
	}

	s := &scene.Scene{}
	for _, sp := range spheres {
		sphere, err := shape.NewSphere(affinetransform.Translate(sp.x, sp.y, sp.z), sp.radius)
		if err != nil {
			return nil, fmt.Errorf("while building sphere at (%v, %v, %v): %w", sp.x, sp.y, sp.z, err)
		}
		s.Shapes = append(s.Shapes, sphere)
	}

	cam, err := camera.NewPerspective(width, height, point3.T{}, vec3.T{0, 0, 1}, vec3.T{0, 1, 0}, fov)
	if err != nil {
		return nil, fmt.Errorf("while building camera: %w", err)
	}
	s.Camera = cam

	return s, nil
}

func do() error {
	s, err := demoScene(*width, *height, *fov)
	if err != nil {
		return err
	}

	fb, err := film.NewFrameBuffer(*width, *height)
	if err != nil {
		return fmt.Errorf("while allocating frame buffer: %w", err)
	}

	renderPasses := *passes
	if renderPasses <= 0 {
		renderPasses = 1
	}

	reporter := progress.NewReporter("Rendering", 40, renderPasses*(*width)*(*height), *quiet)

	options := &scene.RenderOptions{
		TileWidth:  *tileWidth,
		TileHeight: *tileHeight,
		Workers:    *workers,
		Passes:     renderPasses,
		HitColor:   film.RGBSpectrum{R: 1, G: 0, B: 0},
		MissColor:  film.Black,
	}

	renderErr := scene.Render(context.Background(), s, options, fb, func(newPixels, totalPixels int) {
		reporter.Update(newPixels)
	})
	reporter.Done()
	if renderErr != nil {
		// Degraded renders still produce an image; save what we have.
		glog.Errorf("Render did not fully complete: %v", renderErr)
	}

	rgba, err := fb.ToRGBA(*sensitivity, *gamma)
	if err != nil {
		return fmt.Errorf("while tone-mapping frame buffer: %w", err)
	}

	img := &image.RGBA{
		Pix:    rgba,
		Stride: 4 * fb.XResolution,
		Rect:   image.Rect(0, 0, fb.XResolution, fb.YResolution),
	}

	out, err := os.Create(*outputFile)
	if err != nil {
		return fmt.Errorf("while opening output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("while encoding output image: %w", err)
	}

	return renderErr
}
