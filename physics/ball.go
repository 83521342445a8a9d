package physics

import (
	"math"
	"math/rand"

	"github.com/dghein/fairway/config"
)

// Course is the terrain contract the ball consults every tick. A nil
// course is tolerated: queries fall back to neutral values and the ball
// simply free-falls.
type Course interface {
	HeightAt(x float64) float64
	SlopeAt(x float64) float64
	OnGreen(x float64) bool
	WaterAt(x, y float64) bool
	BunkerAt(x, y float64) bool
	DropPosition(x, y, approachDir float64) (float64, float64)
	InHole(x, y float64) bool
}

// SlopeBands is the slope-banded collision response table. Thresholds are
// rise/run magnitudes; ordering very_steep > steep > rest_angle is assumed.
type SlopeBands struct {
	Steep            float64
	VerySteep        float64
	RestAngle        float64
	SteepBounce      float64
	SteepRepel       float64
	ModerateRedirect float64
	FlatDamping      float64
	DownslopePush    float64
}

// BallParams holds the ball integration constants.
type BallParams struct {
	Radius            float64
	Gravity           float64
	StableDelay       float64
	GroundTolerance   float64
	SteepTolerance    float64
	AirborneClearance float64
	BackspinReversal  float64
	BackspinBounce    float64
	GreenFriction     float64
	WindSpeedScale    float64
	MinBounceSpeed    float64
	UnitsPerYard      float64

	Slopes SlopeBands
}

// BallParamsFromConfig maps the loaded config onto ball parameters.
func BallParamsFromConfig(cfg *config.Config) BallParams {
	return BallParams{
		Radius:            cfg.Ball.Radius,
		Gravity:           cfg.Ball.Gravity,
		StableDelay:       cfg.Ball.StableDelay,
		GroundTolerance:   cfg.Ball.GroundTolerance,
		SteepTolerance:    cfg.Ball.SteepTolerance,
		AirborneClearance: cfg.Ball.AirborneClearance,
		BackspinReversal:  cfg.Ball.BackspinReversal,
		BackspinBounce:    cfg.Ball.BackspinBounce,
		GreenFriction:     cfg.Ball.GreenFriction,
		WindSpeedScale:    cfg.Ball.WindSpeedScale,
		MinBounceSpeed:    cfg.Ball.MinBounceSpeed,
		UnitsPerYard:      cfg.Units.PerYard,
		Slopes: SlopeBands{
			Steep:            cfg.Slopes.Steep,
			VerySteep:        cfg.Slopes.VerySteep,
			RestAngle:        cfg.Slopes.RestAngle,
			SteepBounce:      cfg.Slopes.SteepBounce,
			SteepRepel:       cfg.Slopes.SteepRepel,
			ModerateRedirect: cfg.Slopes.ModerateRedirect,
			FlatDamping:      cfg.Slopes.FlatDamping,
			DownslopePush:    cfg.Slopes.DownslopePush,
		},
	}
}

// Ball is the ball state machine: stabilized at rest, tracking while a
// shot is in motion, and latched once holed. All mutation happens inside
// Hit and Update on the single frame-driven thread of control.
type Ball struct {
	X, Y   float64
	VX, VY float64

	p      BallParams
	course Course
	rng    *rand.Rand

	club   ClubSpec
	clubID Club

	tracking        bool
	stabilized      bool
	holed           bool
	inBunker        bool
	backspinPending bool
	bounceRetain    float64

	frozenX, frozenY float64

	startX, startY float64
	distance       float64 // furthest distance from shot start, units
	lastShotYards  float64
	stopTimer      float64
	shots          int
}

// NewBall creates a stabilized ball at the origin. Attach a course and
// place it before play.
func NewBall(p BallParams, rng *rand.Rand) *Ball {
	b := &Ball{p: p, rng: rng, stabilized: true}
	b.club = ClubSpec{Friction: 1, StopSpeed: 1, BounceRetain: 0}
	return b
}

// AttachCourse wires the terrain the ball collides with.
func (b *Ball) AttachCourse(c Course) { b.course = c }

// PlaceAt rests the ball on the terrain surface at x and stabilizes it.
func (b *Ball) PlaceAt(x float64) {
	b.X = x
	b.Y = b.groundAt(x) - b.p.Radius
	b.VX, b.VY = 0, 0
	b.freeze()
}

// ResetForHole places the ball on the tee of a new hole and clears all
// per-hole state.
func (b *Ball) ResetForHole(teeX float64) {
	b.holed = false
	b.inBunker = false
	b.backspinPending = false
	b.shots = 0
	b.distance = 0
	b.lastShotYards = 0
	b.PlaceAt(teeX)
}

// IsTracking reports whether a shot is in motion.
func (b *Ball) IsTracking() bool { return b.tracking }

// IsStabilized reports whether the ball is frozen at rest.
func (b *Ball) IsStabilized() bool { return b.stabilized }

// Holed reports whether the ball has dropped; latched until ResetForHole.
func (b *Ball) Holed() bool { return b.holed }

// InBunker reports whether the ball currently sits in sand.
func (b *Ball) InBunker() bool { return b.inBunker }

// Shots returns the strokes taken since ResetForHole.
func (b *Ball) Shots() int { return b.shots }

// CurrentYards returns the live distance of the shot in play.
func (b *Ball) CurrentYards() float64 { return b.distance / b.p.UnitsPerYard }

// LastShotYards returns the distance of the last completed shot.
func (b *Ball) LastShotYards() float64 { return b.lastShotYards }

// Radius returns the ball radius.
func (b *Ball) Radius() float64 { return b.p.Radius }

// Hit launches the ball with the given club. Charge is the swing meter
// value in [0,1]; direction is +1 toward the green, -1 back toward the
// tee. A small per-club random variance models shot dispersion. Hitting
// always clears stabilization and restarts distance tracking. Ignored once
// the ball is holed.
func (b *Ball) Hit(club Club, spec ClubSpec, direction, charge float64, backspin bool) []Event {
	if b.holed {
		return nil
	}
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}

	speed := spec.HorizontalPower * spec.Power * charge
	speed *= 1 + (b.rng.Float64()*2-1)*spec.Variance

	b.VX = direction * speed
	if spec.CanFly {
		b.VY = -speed * spec.LaunchAngle
	} else {
		b.VY = 0
	}

	b.club = spec
	b.clubID = club
	b.stabilized = false
	b.tracking = true
	b.stopTimer = 0
	b.distance = 0
	b.startX, b.startY = b.X, b.Y
	b.backspinPending = backspin && spec.CanFly
	b.bounceRetain = spec.BounceRetain
	if b.backspinPending {
		b.bounceRetain = b.p.BackspinBounce
	}
	b.shots++

	return []Event{newBallHitEvent(b.X, b.Y, club)}
}

// Update advances the ball by dt seconds. Wind is the current force vector
// from the wind model; it only acts while the ball is airborne.
func (b *Ball) Update(dt float64, windFX, windFY float64) []Event {
	if b.stabilized || b.holed {
		// Pin the ball to its frozen position; no physics while at rest.
		b.X, b.Y = b.frozenX, b.frozenY
		b.VX, b.VY = 0, 0
		return nil
	}

	var events []Event

	groundY := b.groundAt(b.X)
	airborne := b.Y+b.p.Radius < groundY-b.p.AirborneClearance

	// Wind acts on the ball in flight, scaled by its current speed.
	if airborne {
		speed := math.Hypot(b.VX, b.VY)
		b.VX += windFX * speed * b.p.WindSpeedScale * dt
		b.VY += windFY * speed * b.p.WindSpeedScale * dt
	}

	b.VY += b.p.Gravity * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt

	grounded := b.resolveCollision(dt)

	if grounded {
		b.applyRolling(dt)
	}

	events = append(events, b.checkHazards()...)
	events = append(events, b.checkHole()...)

	// Fall-through prevention: integration error must never leave the
	// ball below the surface.
	if !b.stabilized && !b.holed {
		groundY = b.groundAt(b.X)
		if b.Y+b.p.Radius > groundY+b.p.SteepTolerance {
			b.Y = groundY - b.p.Radius
			if b.VY > 0 {
				b.VY = 0
			}
		}
	}

	if ev, stopped := b.checkStableStop(dt, grounded); stopped {
		events = append(events, ev)
	}

	// Shot distance only grows while tracking; rolling back toward the
	// tee never shrinks the recorded distance.
	if b.tracking {
		d := math.Hypot(b.X-b.startX, b.Y-b.startY)
		if d > b.distance {
			b.distance = d
		}
	}

	return events
}

// resolveCollision pushes the ball back above the surface and applies the
// slope-banded impact response. Returns whether the ball is on the ground.
func (b *Ball) resolveCollision(dt float64) bool {
	groundY := b.groundAt(b.X)
	slope := b.slopeAt(b.X)
	mag := math.Abs(slope)

	// Steep faces get a wider tolerance so the ball cannot tunnel through
	// a single tall segment.
	tol := b.p.GroundTolerance
	if mag > b.p.Slopes.Steep {
		tol = b.p.SteepTolerance
	}

	pen := (b.Y + b.p.Radius) - groundY
	if pen <= tol {
		return pen > -1
	}

	b.Y = groundY - b.p.Radius

	// One-time backspin impulse on the first ground contact of the shot.
	if b.backspinPending {
		b.VX *= b.p.BackspinReversal
		b.backspinPending = false
	}

	switch {
	case mag > b.p.Slopes.VerySteep:
		// Strong bounce-back: a near-wall face rejects the ball rather
		// than letting it climb.
		uphill := -sign(slope)
		if b.VX*uphill > 0 {
			b.VX = -b.VX * b.p.Slopes.SteepBounce
		}
		b.VX += sign(slope) * b.p.Slopes.SteepRepel * dt
		if b.VY > 0 {
			b.VY = -b.VY * b.p.Slopes.SteepBounce
		}

	case mag > b.p.Slopes.Steep:
		// Redirect the remaining velocity along the slope face.
		inv := 1 / math.Sqrt(1+slope*slope)
		tx, ty := inv, slope*inv
		along := b.VX*tx + b.VY*ty
		b.VX = along * tx * b.p.Slopes.ModerateRedirect
		b.VY = along * ty * b.p.Slopes.ModerateRedirect * b.p.Slopes.FlatDamping

	default:
		// Flat ground: rebound if still falling fast, otherwise settle.
		if b.VY > b.p.MinBounceSpeed {
			b.VY = -b.VY * b.bounceRetain
		} else {
			b.VY = 0
		}
	}

	return true
}

// applyRolling applies per-club rolling friction, the green surcharge and
// downhill acceleration while the ball is on the ground.
func (b *Ball) applyRolling(dt float64) {
	slope := b.slopeAt(b.X)

	// Gravity component along the surface rolls the ball downhill.
	b.VX += b.p.Gravity * slope / (1 + slope*slope) * dt

	loss := b.club.Friction * dt
	if b.onGreen(b.X) {
		loss += b.p.GreenFriction * dt
	}
	if loss > 1 {
		loss = 1
	}
	b.VX -= b.VX * loss
}

// checkHazards applies water and bunker effects at the current position.
func (b *Ball) checkHazards() []Event {
	if b.course == nil {
		return nil
	}
	var events []Event

	bottom := b.Y + b.p.Radius

	if b.course.WaterAt(b.X, bottom) {
		// Water: stop, relocate to the approach side, stabilize. The
		// penalty stroke is the orchestrator's to record.
		events = append(events, newWaterPenaltyEvent(b.X, b.Y))
		dropX, dropY := b.course.DropPosition(b.X, bottom, sign(b.VX))
		b.X = dropX
		b.Y = dropY - b.p.Radius
		b.VX, b.VY = 0, 0
		b.inBunker = false
		b.freeze()
		return events
	}

	inSand := b.course.BunkerAt(b.X, bottom)
	if inSand && !b.inBunker {
		// Sand kills speed once on entry; how much survives is a club
		// property.
		b.VX *= b.club.BunkerFactor
		b.VY *= b.club.BunkerFactor
		events = append(events, newBunkerEvent(b.X, b.Y, true))
	} else if !inSand && b.inBunker {
		events = append(events, newBunkerEvent(b.X, b.Y, false))
	}
	b.inBunker = inSand

	return events
}

// checkHole latches hole completion the first time the ball is within the
// capture radius of the pin.
func (b *Ball) checkHole() []Event {
	if b.course == nil || b.holed {
		return nil
	}
	if !b.course.InHole(b.X, b.Y) {
		return nil
	}

	b.holed = true
	b.tracking = false
	b.lastShotYards = b.distance / b.p.UnitsPerYard
	b.VX, b.VY = 0, 0
	b.freeze()
	return []Event{newHoleCompletedEvent(b.X, b.Y, b.lastShotYards, b.shots == 1)}
}

// checkStableStop freezes the ball once it has been slow for long enough.
// On a lie steeper than the rest angle it is pushed down-slope instead, so
// it cannot rest on an incline it should roll off of.
func (b *Ball) checkStableStop(dt float64, grounded bool) (Event, bool) {
	if !grounded || b.stabilized || b.holed || !b.tracking {
		return Event{}, false
	}
	if math.Abs(b.VX) >= b.club.StopSpeed {
		b.stopTimer = 0
		return Event{}, false
	}

	slope := b.slopeAt(b.X)
	if math.Abs(slope) > b.p.Slopes.RestAngle && !b.onGreen(b.X) {
		b.VX = sign(slope) * b.p.Slopes.DownslopePush
		b.stopTimer = 0
		return Event{}, false
	}

	// Grace period so a ball between bounces is not frozen mid-air.
	b.stopTimer += dt
	if b.stopTimer < b.p.StableDelay {
		return Event{}, false
	}

	b.tracking = false
	b.lastShotYards = b.distance / b.p.UnitsPerYard
	b.VX, b.VY = 0, 0
	b.freeze()
	return newBallStoppedEvent(b.X, b.Y, b.lastShotYards), true
}

// freeze stabilizes the ball at its current position.
func (b *Ball) freeze() {
	b.stabilized = true
	b.tracking = false
	b.stopTimer = 0
	b.frozenX, b.frozenY = b.X, b.Y
}

// groundAt returns the terrain height under x, or a far-away floor when no
// course is attached.
func (b *Ball) groundAt(x float64) float64 {
	if b.course == nil {
		return math.MaxFloat64
	}
	return b.course.HeightAt(x)
}

func (b *Ball) slopeAt(x float64) float64 {
	if b.course == nil {
		return 0
	}
	return b.course.SlopeAt(x)
}

func (b *Ball) onGreen(x float64) bool {
	if b.course == nil {
		return false
	}
	return b.course.OnGreen(x)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
