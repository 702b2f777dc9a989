package film

import (
	"fmt"
	"image/color"
	"math"
)

// Tone mapping converts accumulated radiance to display-range color:
// radiance is clamped to [0, 1/sensitivity], scaled by the sensitivity
// into [0, 1], gamma corrected, and quantized to 8 bits per channel.  The
// conversion is lossy except at sensitivity 1, gamma 1.

func validateToneMapParams(sensitivity, gamma float64) error {
	if math.IsNaN(sensitivity) || math.IsInf(sensitivity, 0) {
		return fmt.Errorf("sensitivity must be finite, got %v", sensitivity)
	}
	if sensitivity <= 0 {
		return fmt.Errorf("sensitivity must be larger than zero, got %v", sensitivity)
	}
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return fmt.Errorf("gamma must be finite, got %v", gamma)
	}
	if gamma <= 0 {
		return fmt.Errorf("gamma must be larger than zero, got %v", gamma)
	}
	return nil
}

func displayColor(s RGBSpectrum, sensitivity, invSensitivity, invGamma float64) color.RGBA {
	rgb := s.Clamp(0, invSensitivity).Scale(sensitivity).Pow(invGamma).Scale(255).ToRGB()
	return color.RGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 255,
	}
}

// ToDisplayColor tone-maps a single radiance value.
func ToDisplayColor(s RGBSpectrum, sensitivity, gamma float64) (color.RGBA, error) {
	if err := validateToneMapParams(sensitivity, gamma); err != nil {
		return color.RGBA{}, err
	}
	return displayColor(s, sensitivity, 1.0/sensitivity, 1.0/gamma), nil
}

// ToRGBA tone-maps the whole buffer into a flat 8-bit RGBA array in
// bottom-to-top row order: row 0 of the result holds the buffer's highest
// y row.  Consumers that draw top-down therefore display the image
// upright.  The caller must not be rendering into the buffer concurrently.
func (fb *FrameBuffer) ToRGBA(sensitivity, gamma float64) ([]uint8, error) {
	if err := validateToneMapParams(sensitivity, gamma); err != nil {
		return nil, err
	}

	invSensitivity := 1.0 / sensitivity
	invGamma := 1.0 / gamma

	result := make([]uint8, 4*fb.XResolution*fb.YResolution)
	for y := 0; y < fb.YResolution; y++ {
		for x := 0; x < fb.XResolution; x++ {
			c := displayColor(fb.pixels[y*fb.XResolution+x].Spectrum(), sensitivity, invSensitivity, invGamma)

			i := 4 * ((fb.YResolution-y-1)*fb.XResolution + x)
			result[i+0] = c.R
			result[i+1] = c.G
			result[i+2] = c.B
			result[i+3] = c.A
		}
	}
	return result, nil
}
