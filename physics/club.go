package physics

import (
	"fmt"

	"github.com/dghein/fairway/config"
)

// Club identifies a club in the bag.
type Club uint8

const (
	Driver Club = iota
	Iron
	Wedge
	Putter
)

var clubNames = [...]string{"driver", "iron", "wedge", "putter"}

// String returns the club name.
func (c Club) String() string {
	if int(c) < len(clubNames) {
		return clubNames[c]
	}
	return "unknown"
}

// ClubSpec is an immutable per-club tuning record. Launch fields shape the
// hit impulse; the remaining fields drive rolling friction, sand penalty
// and bounce while this club's shot is in play.
type ClubSpec struct {
	Power           float64 // charge multiplier scale
	LaunchAngle     float64 // vertical fraction of launch speed
	HorizontalPower float64 // base launch speed, units/s
	CanFly          bool

	Variance     float64 // shot dispersion, fraction of launch speed
	Friction     float64 // rolling velocity loss per second
	StopSpeed    float64 // horizontal speed considered stopped
	BunkerFactor float64 // velocity retained entering sand
	BounceRetain float64 // vertical rebound factor off the ground
}

// Bag holds the club table and a cursor for cycling. Pure lookup; specs are
// never mutated, only swapped by moving the cursor.
type Bag struct {
	specs   []ClubSpec
	current Club
}

// NewBag builds a bag from explicit specs. The bag starts on the first club.
func NewBag(specs []ClubSpec) *Bag {
	return &Bag{specs: specs}
}

// NewBagFromConfig builds a bag from the configured club table, in table
// order. Fails if the table is empty.
func NewBagFromConfig(clubs []config.ClubConfig) (*Bag, error) {
	if len(clubs) == 0 {
		return nil, fmt.Errorf("club table is empty")
	}
	specs := make([]ClubSpec, len(clubs))
	for i, c := range clubs {
		specs[i] = ClubSpec{
			Power:           c.Power,
			LaunchAngle:     c.LaunchAngle,
			HorizontalPower: c.HorizontalPower,
			CanFly:          c.CanFly,
			Variance:        c.Variance,
			Friction:        c.Friction,
			StopSpeed:       c.StopSpeed,
			BunkerFactor:    c.BunkerFactor,
			BounceRetain:    c.BounceRetain,
		}
	}
	return &Bag{specs: specs}, nil
}

// Len returns the number of clubs in the bag.
func (b *Bag) Len() int { return len(b.specs) }

// Current returns the selected club's spec.
func (b *Bag) Current() ClubSpec { return b.specs[b.current] }

// CurrentClub returns the selected club.
func (b *Bag) CurrentClub() Club { return b.current }

// Select switches to the given club. Out-of-range selections are ignored.
func (b *Bag) Select(c Club) {
	if int(c) < len(b.specs) {
		b.current = c
	}
}

// CycleNext advances the cursor, wrapping to the first club, and returns
// the newly selected club.
func (b *Bag) CycleNext() Club {
	b.current = Club((int(b.current) + 1) % len(b.specs))
	return b.current
}
