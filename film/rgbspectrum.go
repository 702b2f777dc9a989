// Package film implements the accumulation buffer a render writes into and
// the tone-mapping pass that converts it to displayable color.
package film

import (
	"fmt"
	"math"
)

// RGBSpectrum is a linear radiance triple.  Components are unbounded but
// always finite; construction rejects infinities and NaN.  Values are
// immutable, every operation returns a new spectrum.
type RGBSpectrum struct {
	R, G, B float64
}

// Black is the zero spectrum.
var Black = RGBSpectrum{}

func validComponent(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func NewRGBSpectrum(r, g, b float64) (RGBSpectrum, error) {
	if !validComponent(r) {
		return RGBSpectrum{}, fmt.Errorf("red component is not finite: %v", r)
	}
	if !validComponent(g) {
		return RGBSpectrum{}, fmt.Errorf("green component is not finite: %v", g)
	}
	if !validComponent(b) {
		return RGBSpectrum{}, fmt.Errorf("blue component is not finite: %v", b)
	}
	return RGBSpectrum{R: r, G: g, B: b}, nil
}

func (s RGBSpectrum) Add(o RGBSpectrum) RGBSpectrum {
	return RGBSpectrum{s.R + o.R, s.G + o.G, s.B + o.B}
}

func (s RGBSpectrum) Sub(o RGBSpectrum) RGBSpectrum {
	return RGBSpectrum{s.R - o.R, s.G - o.G, s.B - o.B}
}

// Mul multiplies component-wise.
func (s RGBSpectrum) Mul(o RGBSpectrum) RGBSpectrum {
	return RGBSpectrum{s.R * o.R, s.G * o.G, s.B * o.B}
}

func (s RGBSpectrum) Scale(scalar float64) RGBSpectrum {
	return RGBSpectrum{scalar * s.R, scalar * s.G, scalar * s.B}
}

// Divide scales by the reciprocal of divisor.  The divisor must be nonzero.
func (s RGBSpectrum) Divide(divisor float64) RGBSpectrum {
	return s.Scale(1.0 / divisor)
}

// Pow raises every component to the given power.  Power 1 is the common
// gamma-off path and short-circuits.
func (s RGBSpectrum) Pow(power float64) RGBSpectrum {
	if power == 1.0 {
		return s
	}
	return RGBSpectrum{
		math.Pow(s.R, power),
		math.Pow(s.G, power),
		math.Pow(s.B, power),
	}
}

// Clamp limits every component to [low, high].
func (s RGBSpectrum) Clamp(low, high float64) RGBSpectrum {
	return RGBSpectrum{
		math.Min(high, math.Max(low, s.R)),
		math.Min(high, math.Max(low, s.G)),
		math.Min(high, math.Max(low, s.B)),
	}
}

func (s RGBSpectrum) IsBlack() bool {
	return s.R == 0 && s.G == 0 && s.B == 0
}

func quantizeComponent(v float64) uint32 {
	q := int64(math.Round(v))
	if q < 0 {
		q = 0
	}
	if q > 255 {
		q = 255
	}
	return uint32(q)
}

// ToRGB packs the spectrum into a 32-bit ARGB color, rounding each
// component to the nearest integer in [0, 255].  Alpha is always opaque.
// Callers are expected to have scaled the components to display range
// first; see ToDisplayColor.
func (s RGBSpectrum) ToRGB() uint32 {
	r := quantizeComponent(s.R)
	g := quantizeComponent(s.G)
	b := quantizeComponent(s.B)
	return 255<<24 | r<<16 | g<<8 | b
}
