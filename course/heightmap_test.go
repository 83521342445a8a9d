package course

import (
	"math"
	"testing"
)

func testGenParams() GenParams {
	return GenParams{
		Width:           8000,
		SegmentWidth:    10,
		BaseHeight:      600,
		HeightFloor:     380,
		HillAmplitude:   60,
		HillFrequency:   0.002,
		DetailAmplitude: 20,
		DetailFrequency: 0.011,
		NoiseAmplitude:  25,
		NoiseScale:      0.0008,
		SmoothPasses:    2,
	}
}

func testGreen() GreenZone {
	return GreenZone{StartX: 6400, Width: 600, SlopeWidth: 300, Elevation: 40}
}

func TestGenerateSampleCount(t *testing.T) {
	p := testGenParams()
	hm := Generate(42, p, testGreen())

	want := int(p.Width/p.SegmentWidth) + 1
	if got := len(hm.Samples()); got != want {
		t.Fatalf("sample count = %d, want %d", got, want)
	}
}

func TestGenerateRespectsFloor(t *testing.T) {
	p := testGenParams()
	// Exaggerate amplitudes so the floor clamp is actually exercised.
	p.HillAmplitude = 400
	p.NoiseAmplitude = 200
	hm := Generate(7, p, testGreen())

	for _, s := range hm.Samples() {
		if s.Y < p.HeightFloor-1e-9 {
			t.Fatalf("sample at x=%.1f has y=%.2f above floor %.1f", s.X, s.Y, p.HeightFloor)
		}
	}
}

func TestGenerateGreenIsFlatAtElevation(t *testing.T) {
	p := testGenParams()
	green := testGreen()
	hm := Generate(99, p, green)

	wantY := p.BaseHeight - green.Elevation
	for x := green.StartX; x <= green.EndX(); x += 25 {
		if got := hm.HeightAt(x); math.Abs(got-wantY) > 1e-6 {
			t.Errorf("HeightAt(%.0f) = %.4f, want %.4f", x, got, wantY)
		}
		if got := hm.SlopeAt(x); got != 0 {
			t.Errorf("SlopeAt(%.0f) = %.4f, want 0", x, got)
		}
		if !hm.OnGreen(x) {
			t.Errorf("OnGreen(%.0f) = false, want true", x)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := testGenParams()
	green := testGreen()

	a := Generate(1234, p, green)
	b := Generate(1234, p, green)
	for i, s := range a.Samples() {
		if s != b.Samples()[i] {
			t.Fatalf("sample %d differs between identical seeds: %+v vs %+v", i, s, b.Samples()[i])
		}
	}

	c := Generate(1235, p, green)
	same := true
	for i, s := range a.Samples() {
		if s.Y != c.Samples()[i].Y {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical terrain")
	}
}

func TestHeightAtClampsAndInterpolates(t *testing.T) {
	p := testGenParams()
	hm := Generate(42, p, testGreen())
	samples := hm.Samples()

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"left edge", -500, samples[0].Y},
		{"right edge", p.Width + 500, samples[len(samples)-1].Y},
		{"on sample", samples[10].X, samples[10].Y},
		{"midpoint", samples[10].X + p.SegmentWidth/2, (samples[10].Y + samples[11].Y) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hm.HeightAt(tt.x); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HeightAt(%.1f) = %.4f, want %.4f", tt.x, got, tt.want)
			}
		})
	}
}

func TestHeightAtContinuity(t *testing.T) {
	p := testGenParams()
	hm := Generate(42, p, testGreen())

	// Height must change gradually; a jump larger than a segment's worth of
	// steep slope means the interpolation is broken.
	prev := hm.HeightAt(0)
	for x := 1.0; x < p.Width; x += 1.0 {
		y := hm.HeightAt(x)
		if math.Abs(y-prev) > 25 {
			t.Fatalf("discontinuity at x=%.0f: %.2f -> %.2f", x, prev, y)
		}
		prev = y
	}
}

func TestSlopeAtMatchesFiniteDifference(t *testing.T) {
	p := testGenParams()
	hm := Generate(42, p, testGreen())

	// On gentle terrain the reported slope should track the finite
	// difference of HeightAt; the widened baseline only kicks in on steep
	// segments.
	for x := 200.0; x < 6000; x += 333 {
		got := hm.SlopeAt(x)
		if math.Abs(got) > 0.6 {
			continue
		}
		i := int(x / p.SegmentWidth)
		fd := (hm.Samples()[i+1].Y - hm.Samples()[i].Y) / p.SegmentWidth
		if math.Abs(got-fd) > 1e-9 {
			t.Errorf("SlopeAt(%.0f) = %.4f, finite difference = %.4f", x, got, fd)
		}
	}
}

func TestSlopeAtEdgesZero(t *testing.T) {
	p := testGenParams()
	hm := Generate(42, p, testGreen())

	for _, x := range []float64{-10, 0, p.Width, p.Width + 10} {
		if got := hm.SlopeAt(x); got != 0 {
			t.Errorf("SlopeAt(%.0f) = %.4f, want 0", x, got)
		}
	}
}

func TestNormalAtUnitLengthAndUpward(t *testing.T) {
	p := testGenParams()
	hm := Generate(42, p, testGreen())

	for x := 100.0; x < p.Width; x += 500 {
		nx, ny := hm.NormalAt(x)
		if l := math.Hypot(nx, ny); math.Abs(l-1) > 1e-9 {
			t.Errorf("NormalAt(%.0f) length = %.6f, want 1", x, l)
		}
		if ny >= 0 {
			t.Errorf("NormalAt(%.0f) ny = %.4f, want negative (up)", x, ny)
		}
	}
}

func TestHighestSurface(t *testing.T) {
	p := testGenParams()
	hm := Generate(42, p, testGreen())

	x0, x1 := 1000.0, 2000.0
	highest := hm.HighestSurface(x0, x1)

	for x := x0; x <= x1; x += 5 {
		if y := hm.HeightAt(x); y < highest-1e-9 {
			t.Fatalf("HeightAt(%.0f) = %.2f is above HighestSurface = %.2f", x, y, highest)
		}
	}
}

func TestSmoothReducesRoughness(t *testing.T) {
	p := testGenParams()
	p.SmoothPasses = 0
	rough := Generate(42, p, testGreen())

	p.SmoothPasses = 3
	smooth := Generate(42, p, testGreen())

	if r, s := roughness(rough), roughness(smooth); s > r {
		t.Errorf("smoothing increased roughness: %.4f -> %.4f", r, s)
	}
}

func TestSmoothKeepsBoundariesCalm(t *testing.T) {
	p := testGenParams()
	green := testGreen()
	p.SmoothPasses = 0
	rough := Generate(42, p, green)
	p.SmoothPasses = 3
	smoothed := Generate(42, p, green)

	// The course edges and the green-complex borders are where partial
	// kernels and the frozen zone meet the smoothed field; none of them
	// may end up rougher than the raw terrain.
	windows := []struct {
		name   string
		x0, x1 float64
	}{
		{"left edge", 0, 500},
		{"right edge", p.Width - 500, p.Width},
		{"front of green complex", green.StartX - green.SlopeWidth - 250, green.StartX - green.SlopeWidth + 250},
		{"back of green complex", green.EndX() + green.SlopeWidth - 250, green.EndX() + green.SlopeWidth + 250},
	}

	for _, w := range windows {
		t.Run(w.name, func(t *testing.T) {
			r := windowRoughness(rough, w.x0, w.x1)
			s := windowRoughness(smoothed, w.x0, w.x1)
			if s > r*1.1 {
				t.Errorf("roughness in [%.0f, %.0f] rose from %.4f to %.4f", w.x0, w.x1, r, s)
			}
		})
	}
}

// roughness sums squared second differences of the height samples.
func roughness(hm *HeightMap) float64 {
	s := hm.Samples()
	var sum float64
	for i := 1; i < len(s)-1; i++ {
		d := s[i-1].Y - 2*s[i].Y + s[i+1].Y
		sum += d * d
	}
	return sum
}

// windowRoughness is roughness restricted to samples with x in [x0, x1].
func windowRoughness(hm *HeightMap, x0, x1 float64) float64 {
	s := hm.Samples()
	var sum float64
	for i := 1; i < len(s)-1; i++ {
		if s[i].X < x0 || s[i].X > x1 {
			continue
		}
		d := s[i-1].Y - 2*s[i].Y + s[i+1].Y
		sum += d * d
	}
	return sum
}
