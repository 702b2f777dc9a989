package camera

import (
	"math"
	"testing"

	"tilecast/sampling"
	"tilecast/vmath/point3"
	"tilecast/vmath/vec3"
)

func TestNewPerspectiveValidation(t *testing.T) {
	cases := []struct {
		name    string
		xRes    int
		yRes    int
		lookat  vec3.T
		fov     float64
		wantErr bool
	}{
		{"valid", 640, 480, vec3.T{0, 0, 1}, 90, false},
		{"narrowFOV", 640, 480, vec3.T{0, 0, 1}, 0.001, false},
		{"zeroXRes", 0, 480, vec3.T{0, 0, 1}, 90, true},
		{"zeroYRes", 640, 0, vec3.T{0, 0, 1}, 90, true},
		{"negativeXRes", -640, 480, vec3.T{0, 0, 1}, 90, true},
		{"zeroFOV", 640, 480, vec3.T{0, 0, 1}, 0, true},
		{"negativeFOV", 640, 480, vec3.T{0, 0, 1}, -10, true},
		{"fov180", 640, 480, vec3.T{0, 0, 1}, 180, true},
		{"fovOver180", 640, 480, vec3.T{0, 0, 1}, 270, true},
		{"zeroLookat", 640, 480, vec3.T{}, 90, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPerspective(tc.xRes, tc.yRes, point3.T{}, tc.lookat, vec3.T{0, 1, 0}, tc.fov)
			if gotErr := err != nil; gotErr != tc.wantErr {
				t.Errorf("NewPerspective error = %v, want error: %v", err, tc.wantErr)
			}
		})
	}
}

func TestGenerateRayCenter(t *testing.T) {
	cam, err := NewPerspective(640, 480, point3.T{1, 2, 3}, vec3.T{0, 0, 1}, vec3.T{0, 1, 0}, 90)
	if err != nil {
		t.Fatalf("NewPerspective: %v", err)
	}

	r := cam.GenerateRay(sampling.Sample{X: 320, Y: 240})

	if r.Point != (point3.T{1, 2, 3}) {
		t.Errorf("Ray origin = %v, want camera origin {1, 2, 3}", r.Point)
	}

	// The center of the image plane lies straight down the view axis.
	want := vec3.T{0, 0, 1}
	if diff := vec3.SubVV(r.Slope, want); diff.Norm() > 1e-12 {
		t.Errorf("Center ray direction = %v, want %v", r.Slope, want)
	}
}

func TestGenerateRayEdges(t *testing.T) {
	// 90 degree horizontal FOV: the plane half-width at unit distance is
	// tan(45) = 1, so the left and right plane edges sit at u = -1, +1.
	cam, err := NewPerspective(100, 100, point3.T{}, vec3.T{0, 0, 1}, vec3.T{0, 1, 0}, 90)
	if err != nil {
		t.Fatalf("NewPerspective: %v", err)
	}

	left := cam.GenerateRay(sampling.Sample{X: 0, Y: 50})
	if got := left.Slope[0]; math.Abs(got - -1.0) > 1e-12 {
		t.Errorf("Left edge ray u component = %v, want -1", got)
	}

	right := cam.GenerateRay(sampling.Sample{X: 100, Y: 50})
	if got := right.Slope[0]; math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Right edge ray u component = %v, want 1", got)
	}
}

func TestGenerateRayAspectRatio(t *testing.T) {
	// Twice as wide as tall: the vertical extent is half the horizontal.
	cam, err := NewPerspective(200, 100, point3.T{}, vec3.T{0, 0, 1}, vec3.T{0, 1, 0}, 90)
	if err != nil {
		t.Fatalf("NewPerspective: %v", err)
	}

	top := cam.GenerateRay(sampling.Sample{X: 100, Y: 100})
	if got := top.Slope[1]; math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Top edge ray v component = %v, want 0.5", got)
	}
}

func TestNewPerspectiveLookAt(t *testing.T) {
	cam, err := NewPerspectiveLookAt(64, 64, point3.T{0, 0, -5}, point3.T{0, 0, 5}, vec3.T{0, 1, 0}, 90)
	if err != nil {
		t.Fatalf("NewPerspectiveLookAt: %v", err)
	}

	r := cam.GenerateRay(sampling.Sample{X: 32, Y: 32})
	want := vec3.T{0, 0, 1}
	if diff := vec3.SubVV(r.Slope, want); diff.Norm() > 1e-12 {
		t.Errorf("Center ray direction = %v, want %v", r.Slope, want)
	}
}

func TestGenerateRayIsPure(t *testing.T) {
	cam, err := NewPerspective(64, 64, point3.T{}, vec3.T{0, 0, 1}, vec3.T{0, 1, 0}, 90)
	if err != nil {
		t.Fatalf("NewPerspective: %v", err)
	}

	s := sampling.Sample{X: 10.5, Y: 20.5}
	first := cam.GenerateRay(s)
	second := cam.GenerateRay(s)

	if first != second {
		t.Errorf("GenerateRay not deterministic: %v then %v", first, second)
	}
}
