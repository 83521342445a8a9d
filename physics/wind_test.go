package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dghein/fairway/config"
)

func testWindConfig() config.WindConfig {
	return config.WindConfig{
		MaxSpeed:        20,
		UpdateInterval:  3.0,
		SpeedJitter:     4,
		DirectionJitter: 40,
		ForceMultiplier: 6,
	}
}

func TestWindStaysInBounds(t *testing.T) {
	w := NewWind(testWindConfig(), rand.New(rand.NewSource(7)))

	// Long run of perturbations; speed must stay clamped and direction
	// normalized the whole way.
	for i := 0; i < 10000; i++ {
		w.Update(0.5)
		if w.Speed < 0 || w.Speed > 20 {
			t.Fatalf("speed %.2f out of [0, 20] after %d updates", w.Speed, i)
		}
		if w.DirectionDeg < 0 || w.DirectionDeg >= 360 {
			t.Fatalf("direction %.2f out of [0, 360) after %d updates", w.DirectionDeg, i)
		}
	}
}

func TestWindOnlyChangesOnInterval(t *testing.T) {
	w := NewWind(testWindConfig(), rand.New(rand.NewSource(7)))
	speed, dir := w.Speed, w.DirectionDeg

	// Below the interval nothing moves.
	w.Update(2.9)
	if w.Speed != speed || w.DirectionDeg != dir {
		t.Fatal("wind changed before the update interval elapsed")
	}

	// Crossing the interval perturbs the state.
	w.Update(0.2)
	if w.Speed == speed && w.DirectionDeg == dir {
		t.Fatal("wind unchanged after the update interval elapsed")
	}
}

func TestWindForceVector(t *testing.T) {
	cfg := testWindConfig()
	w := NewWind(cfg, rand.New(rand.NewSource(7)))
	w.Speed = 10

	tests := []struct {
		name         string
		deg          float64
		wantX, wantY float64
	}{
		{"east", 0, 60, 0},
		{"up", 90, 0, -60},
		{"west", 180, -60, 0},
		{"down", 270, 0, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.DirectionDeg = tt.deg
			fx, fy := w.ForceVector()
			if math.Abs(fx-tt.wantX) > 1e-9 || math.Abs(fy-tt.wantY) > 1e-9 {
				t.Errorf("ForceVector at %.0f deg = (%.2f, %.2f), want (%.2f, %.2f)",
					tt.deg, fx, fy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestWindZeroSpeedNoForce(t *testing.T) {
	w := NewWind(testWindConfig(), rand.New(rand.NewSource(7)))
	w.Speed = 0
	if fx, fy := w.ForceVector(); fx != 0 || fy != 0 {
		t.Errorf("zero-speed force = (%.4f, %.4f), want (0, 0)", fx, fy)
	}
}
