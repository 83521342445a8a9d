// Package course builds the per-hole terrain: a 1-D height field with a
// shaped green complex, plus water and bunker areas owned by the hole.
package course

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sample is one height-field sample. The world uses screen coordinates,
// so a larger Y is lower ground.
type Sample struct {
	X       float64
	Y       float64
	IsGreen bool
}

// GenParams holds terrain generation parameters.
type GenParams struct {
	Width        float64
	SegmentWidth float64
	BaseHeight   float64
	HeightFloor  float64 // terrain y never goes above (smaller than) this

	HillAmplitude   float64
	HillFrequency   float64
	DetailAmplitude float64
	DetailFrequency float64
	NoiseAmplitude  float64
	NoiseScale      float64

	SmoothPasses int
}

// GreenZone describes the green surface and its slope-transition zone.
type GreenZone struct {
	StartX     float64
	Width      float64
	SlopeWidth float64
	Elevation  float64 // height above BaseHeight, up-positive
}

// EndX returns the far edge of the putting surface.
func (g GreenZone) EndX() float64 { return g.StartX + g.Width }

// CenterX returns the horizontal center of the putting surface.
func (g GreenZone) CenterX() float64 { return g.StartX + g.Width/2 }

// Contains reports whether x is on the putting surface.
func (g GreenZone) Contains(x float64) bool {
	return x >= g.StartX && x <= g.EndX()
}

// InComplex reports whether x is on the green or its transition slopes.
func (g GreenZone) InComplex(x float64) bool {
	return x >= g.StartX-g.SlopeWidth && x <= g.EndX()+g.SlopeWidth
}

// HeightMap is an immutable height field sampled at fixed spacing.
// Built once per hole; all queries clamp out-of-range x.
type HeightMap struct {
	samples      []Sample
	segmentWidth float64
	width        float64
	baseHeight   float64
	green        GreenZone
}

// Generate builds the height field: two superposed sine waves for rolling
// hills, a low-amplitude simplex octave for per-hole variation, smoothstep
// shaping through the green complex, and a floor clamp. The result is
// smoothed before being returned and never mutated afterwards.
func Generate(seed int64, p GenParams, green GreenZone) *HeightMap {
	noise := opensimplex.New(seed)
	count := int(p.Width/p.SegmentWidth) + 1
	samples := make([]Sample, count)

	for i := 0; i < count; i++ {
		x := float64(i) * p.SegmentWidth

		// Rolling hills as an up-positive elevation offset from base.
		elev := p.HillAmplitude*math.Sin(x*p.HillFrequency) +
			p.DetailAmplitude*math.Sin(x*p.DetailFrequency) +
			p.NoiseAmplitude*noise.Eval2(x*p.NoiseScale, 0)

		onGreen := green.Contains(x)
		switch {
		case onGreen:
			elev = green.Elevation
		case green.InComplex(x):
			// Blend natural terrain into the authored green elevation
			// across the slope-transition zone.
			var t float64
			if x < green.StartX {
				t = (x - (green.StartX - green.SlopeWidth)) / green.SlopeWidth
			} else {
				t = (green.EndX() + green.SlopeWidth - x) / green.SlopeWidth
			}
			t = smoothstep(t)
			elev = elev + (green.Elevation-elev)*t
		}

		y := p.BaseHeight - elev
		if y < p.HeightFloor {
			y = p.HeightFloor
		}

		samples[i] = Sample{X: x, Y: y, IsGreen: onGreen}
	}

	hm := &HeightMap{
		samples:      samples,
		segmentWidth: p.SegmentWidth,
		width:        p.Width,
		baseHeight:   p.BaseHeight,
		green:        green,
	}
	hm.smooth(p.SmoothPasses)
	return hm
}

// smoothstep maps t in [0,1] to the classic 3t^2-2t^3 ease curve.
func smoothstep(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// Width returns the course length in world units.
func (hm *HeightMap) Width() float64 { return hm.width }

// SegmentWidth returns the horizontal sample spacing.
func (hm *HeightMap) SegmentWidth() float64 { return hm.segmentWidth }

// Samples returns the raw height samples for terrain rendering.
func (hm *HeightMap) Samples() []Sample { return hm.samples }

// Green returns the green zone this height field was shaped around.
func (hm *HeightMap) Green() GreenZone { return hm.green }

// HeightAt returns the terrain surface y at x, linearly interpolating
// between the bracketing samples. Out-of-range x clamps to the edge sample.
func (hm *HeightMap) HeightAt(x float64) float64 {
	n := len(hm.samples)
	if n == 0 {
		return hm.baseHeight
	}
	if x <= 0 {
		return hm.samples[0].Y
	}
	if x >= hm.width {
		return hm.samples[n-1].Y
	}

	i := int(x / hm.segmentWidth)
	if i >= n-1 {
		return hm.samples[n-1].Y
	}
	a := hm.samples[i]
	b := hm.samples[i+1]
	t := (x - a.X) / hm.segmentWidth
	return a.Y + (b.Y-a.Y)*t
}

// SlopeAt returns rise/run at x. The green is forced flat so the ball sits
// still on it, and domain edges report zero. Where the local segment is
// steep, a farther sample is used so single-segment artifacts do not read
// as a cliff.
func (hm *HeightMap) SlopeAt(x float64) float64 {
	n := len(hm.samples)
	if n < 2 || x <= 0 || x >= hm.width {
		return 0
	}
	if hm.green.Contains(x) {
		return 0
	}

	i := int(x / hm.segmentWidth)
	if i >= n-1 {
		return 0
	}

	local := (hm.samples[i+1].Y - hm.samples[i].Y) / hm.segmentWidth

	// Look further ahead on steep local slopes; the steeper the segment
	// looks, the wider the baseline used to judge it.
	span := 1
	switch {
	case math.Abs(local) > 1.2:
		span = 3
	case math.Abs(local) > 0.6:
		span = 2
	}
	if span > 1 {
		j := i + span
		if j > n-1 {
			j = n - 1
		}
		if j > i {
			return (hm.samples[j].Y - hm.samples[i].Y) / (float64(j-i) * hm.segmentWidth)
		}
	}
	return local
}

// NormalAt returns the unit surface normal at x, pointing away from the
// ground (negative y is up).
func (hm *HeightMap) NormalAt(x float64) (nx, ny float64) {
	s := hm.SlopeAt(x)
	inv := 1 / math.Sqrt(1+s*s)
	return -s * inv, -inv
}

// OnGreen reports whether x is on the putting surface.
func (hm *HeightMap) OnGreen(x float64) bool {
	return hm.green.Contains(x)
}

// HighestSurface returns the smallest surface y (the highest ground) in
// [x0, x1]. Hazard levels are set just above this so the whole area sits
// under the water or sand surface.
func (hm *HeightMap) HighestSurface(x0, x1 float64) float64 {
	highest := hm.HeightAt(x0)
	if y := hm.HeightAt(x1); y < highest {
		highest = y
	}
	for _, s := range hm.samples {
		if s.X < x0 || s.X > x1 {
			continue
		}
		if s.Y < highest {
			highest = s.Y
		}
	}
	return highest
}
