// Package effects runs the transient particle effects (water splash, sand
// spray, hole-out confetti) on a small ECS world.
package effects

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
)

// Kind identifies a particle effect type.
type Kind uint8

const (
	KindSplash Kind = iota
	KindSand
	KindConfetti
)

// Position is a particle world position component.
type Position struct {
	X, Y float32
}

// Velocity is a particle velocity component.
type Velocity struct {
	X, Y float32
}

// Particle carries lifetime and appearance.
type Particle struct {
	Life    float32 // seconds remaining
	MaxLife float32
	Size    float32
	Kind    Kind
}

// View is a render-ready particle snapshot.
type View struct {
	X, Y  float32
	Size  float32
	Alpha float32
	Kind  Kind
}

const particleGravity = 900.0 // units/s^2, lighter than the ball

// System owns the particle entities and their per-frame integration.
type System struct {
	world  *ecs.World
	mapper *ecs.Map3[Position, Velocity, Particle]
	filter *ecs.Filter3[Position, Velocity, Particle]
	rng    *rand.Rand
	count  int
}

// NewSystem creates an empty particle system.
func NewSystem(rng *rand.Rand) *System {
	world := ecs.NewWorld()
	return &System{
		world:  world,
		mapper: ecs.NewMap3[Position, Velocity, Particle](world),
		filter: ecs.NewFilter3[Position, Velocity, Particle](world),
		rng:    rng,
	}
}

// Count returns the number of live particles.
func (s *System) Count() int { return s.count }

// SpawnSplash bursts water droplets upward from a splash point.
func (s *System) SpawnSplash(x, y float32) {
	s.spawnBurst(x, y, KindSplash, 26, 120, 380, 0.9)
}

// SpawnSand kicks up a short, low spray of sand.
func (s *System) SpawnSand(x, y float32) {
	s.spawnBurst(x, y, KindSand, 14, 60, 200, 0.6)
}

// SpawnConfetti celebrates a holed ball.
func (s *System) SpawnConfetti(x, y float32) {
	s.spawnBurst(x, y, KindConfetti, 40, 150, 420, 1.6)
}

// spawnBurst emits count particles in an upward fan.
func (s *System) spawnBurst(x, y float32, kind Kind, count int, minSpeed, maxSpeed float64, life float32) {
	for i := 0; i < count; i++ {
		// Fan between 30 and 150 degrees, up-biased
		angle := (30 + s.rng.Float64()*120) * math.Pi / 180
		speed := minSpeed + s.rng.Float64()*(maxSpeed-minSpeed)

		pos := Position{X: x, Y: y}
		vel := Velocity{
			X: float32(math.Cos(angle) * speed),
			Y: float32(-math.Sin(angle) * speed),
		}
		maxLife := life * (0.6 + s.rng.Float32()*0.4)
		p := Particle{
			Life:    maxLife,
			MaxLife: maxLife,
			Size:    1.5 + s.rng.Float32()*2.5,
			Kind:    kind,
		}
		s.mapper.NewEntity(&pos, &vel, &p)
		s.count++
	}
}

// Update integrates particles and removes the expired ones.
func (s *System) Update(dt float64) {
	dt32 := float32(dt)

	var expired []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		pos, vel, p := query.Get()

		p.Life -= dt32
		if p.Life <= 0 {
			expired = append(expired, query.Entity())
			continue
		}

		vel.Y += particleGravity * dt32
		pos.X += vel.X * dt32
		pos.Y += vel.Y * dt32
	}

	// Removal happens after iteration completes
	for _, e := range expired {
		s.mapper.Remove(e)
		s.count--
	}
}

// Snapshot returns render-ready views of all live particles.
func (s *System) Snapshot() []View {
	out := make([]View, 0, s.count)
	query := s.filter.Query()
	for query.Next() {
		pos, _, p := query.Get()
		out = append(out, View{
			X:     pos.X,
			Y:     pos.Y,
			Size:  p.Size,
			Alpha: p.Life / p.MaxLife,
			Kind:  p.Kind,
		})
	}
	return out
}
