package course

// Kernel widths used by successive smoothing passes. Each pass averages a
// wider neighborhood, killing the high-frequency jitter that makes a
// resting ball visibly vibrate.
var smoothKernels = [][]float64{
	{1, 2, 1},
	{1, 2, 4, 2, 1},
	{1, 2, 3, 4, 3, 2, 1},
}

// Samples either side of the green complex over which smoothing ramps
// from frozen to full strength.
const greenFeatherSamples = 4

// smooth runs weighted local averaging over all samples outside the green
// complex. The green and its transition slopes keep their authored
// elevation, so repeated passes cannot flatten the shaping. Out-of-range
// kernel taps repeat the edge sample, and smoothing strength feathers to
// zero at the green-complex border, so neither boundary turns into a
// jitter source of its own.
func (hm *HeightMap) smooth(passes int) {
	for pass := 0; pass < passes; pass++ {
		kernel := smoothKernels[pass%len(smoothKernels)]
		half := len(kernel) / 2
		out := make([]float64, len(hm.samples))

		for i := range hm.samples {
			x := hm.samples[i].X
			if hm.green.InComplex(x) {
				out[i] = hm.samples[i].Y
				continue
			}

			var sum, weight float64
			for k, w := range kernel {
				j := i + k - half
				if j < 0 {
					j = 0
				}
				if j >= len(hm.samples) {
					j = len(hm.samples) - 1
				}
				sum += hm.samples[j].Y * w
				weight += w
			}
			smoothed := sum / weight

			if t := hm.greenFeather(x); t < 1 {
				smoothed = hm.samples[i].Y + (smoothed-hm.samples[i].Y)*t
			}
			out[i] = smoothed
		}

		for i := range hm.samples {
			hm.samples[i].Y = out[i]
		}
	}
}

// greenFeather returns the smoothing strength at x: 0 at the green-complex
// border, ramping to 1 over a few samples away from it.
func (hm *HeightMap) greenFeather(x float64) float64 {
	fw := greenFeatherSamples * hm.segmentWidth
	left := hm.green.StartX - hm.green.SlopeWidth
	right := hm.green.EndX() + hm.green.SlopeWidth

	var d float64
	switch {
	case x < left:
		d = left - x
	case x > right:
		d = x - right
	default:
		return 0
	}
	if d >= fw {
		return 1
	}
	return d / fw
}
