package film

// Pixel accumulates a weighted sum of radiance samples.  A freshly created
// pixel is black with zero weight.
//
// Pixels are not internally synchronized.  During a render each pixel is
// written by exactly one worker, because workers are handed disjoint tiles;
// concurrent readers outside the joined state see torn values.
type Pixel struct {
	colorSum  RGBSpectrum
	weightSum float64
}

// Add accumulates one radiance sample.  The weight must not be negative.
func (p *Pixel) Add(r, g, b, weight float64) {
	p.colorSum.R += r * weight
	p.colorSum.G += g * weight
	p.colorSum.B += b * weight
	p.weightSum += weight
}

// AddSpectrum accumulates a spectrum sample with the given weight.
func (p *Pixel) AddSpectrum(s RGBSpectrum, weight float64) {
	p.Add(s.R, s.G, s.B, weight)
}

// Spectrum returns the weighted average of the accumulated samples, or
// black when nothing has been accumulated.
func (p *Pixel) Spectrum() RGBSpectrum {
	if p.weightSum == 0 {
		return Black
	}
	return p.colorSum.Divide(p.weightSum)
}
