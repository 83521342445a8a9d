package physics

import (
	"math"
	"math/rand"

	"github.com/dghein/fairway/config"
)

// Wind is a slow random walk over speed and direction. It is read every
// frame for a force vector and perturbed on a fixed interval.
type Wind struct {
	Speed        float64 // clamped to [0, MaxSpeed]
	DirectionDeg float64 // wraps mod 360

	maxSpeed  float64
	interval  float64
	speedJit  float64
	dirJit    float64
	forceMult float64

	elapsed float64
	rng     *rand.Rand
}

// NewWind creates a wind model with a random initial state.
func NewWind(cfg config.WindConfig, rng *rand.Rand) *Wind {
	return &Wind{
		Speed:        rng.Float64() * cfg.MaxSpeed * 0.5,
		DirectionDeg: rng.Float64() * 360,
		maxSpeed:     cfg.MaxSpeed,
		interval:     cfg.UpdateInterval,
		speedJit:     cfg.SpeedJitter,
		dirJit:       cfg.DirectionJitter,
		forceMult:    cfg.ForceMultiplier,
		rng:          rng,
	}
}

// Update accumulates elapsed time and perturbs speed and direction by
// independent bounded random deltas once per interval.
func (w *Wind) Update(dt float64) {
	w.elapsed += dt
	for w.elapsed >= w.interval {
		w.elapsed -= w.interval

		w.Speed += (w.rng.Float64()*2 - 1) * w.speedJit
		if w.Speed < 0 {
			w.Speed = 0
		}
		if w.Speed > w.maxSpeed {
			w.Speed = w.maxSpeed
		}

		w.DirectionDeg += (w.rng.Float64()*2 - 1) * w.dirJit
		w.DirectionDeg = math.Mod(w.DirectionDeg, 360)
		if w.DirectionDeg < 0 {
			w.DirectionDeg += 360
		}
	}
}

// ForceVector converts the polar wind state to a Cartesian force. The
// vertical sign flips so positive "upward" wind pushes toward smaller y,
// matching the down-positive rendering coordinates.
func (w *Wind) ForceVector() (fx, fy float64) {
	rad := w.DirectionDeg * math.Pi / 180
	fx = math.Cos(rad) * w.Speed * w.forceMult
	fy = -math.Sin(rad) * w.Speed * w.forceMult
	return fx, fy
}
