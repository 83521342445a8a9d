package game

import (
	"testing"

	"github.com/dghein/fairway/config"
	"github.com/dghein/fairway/course"
)

func holesTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading default config: %v", err)
	}
	return cfg
}

func TestBuildHoleDeterministic(t *testing.T) {
	cfg := holesTestConfig(t)

	a := buildHole(cfg, 42, 3)
	b := buildHole(cfg, 42, 3)

	ax, ay := a.PinPosition()
	bx, by := b.PinPosition()
	if ax != bx || ay != by {
		t.Error("pin position differs between identical builds")
	}
	if len(a.Hazards()) != len(b.Hazards()) {
		t.Fatalf("hazard count differs: %d vs %d", len(a.Hazards()), len(b.Hazards()))
	}
	for i := range a.Hazards() {
		if a.Hazards()[i] != b.Hazards()[i] {
			t.Errorf("hazard %d differs: %+v vs %+v", i, a.Hazards()[i], b.Hazards()[i])
		}
	}
}

func TestBuildHoleDiffersByNumber(t *testing.T) {
	cfg := holesTestConfig(t)

	a := buildHole(cfg, 42, 1)
	b := buildHole(cfg, 42, 2)

	ax, _ := a.PinPosition()
	bx, _ := b.PinPosition()
	if ax == bx {
		t.Error("consecutive holes share the same pin position")
	}
}

func TestBuildHoleLayoutInvariants(t *testing.T) {
	cfg := holesTestConfig(t)

	// Sweep a bunch of holes; the layout rules must hold for all of them.
	for number := 1; number <= 24; number++ {
		h := buildHole(cfg, 1234, number)
		green := h.Green()

		if h.Number() != number {
			t.Errorf("hole %d reports number %d", number, h.Number())
		}
		if h.Par() != cfg.Round.DefaultPar {
			t.Errorf("hole %d par = %d, want %d", number, h.Par(), cfg.Round.DefaultPar)
		}

		// Green lives in the final stretch, clear of the right edge.
		if green.StartX < cfg.Course.Width*0.68 {
			t.Errorf("hole %d green starts at %.0f, before the final stretch", number, green.StartX)
		}
		if green.EndX()+green.SlopeWidth > cfg.Course.Width {
			t.Errorf("hole %d green complex runs past the course edge", number)
		}

		pinX, _ := h.PinPosition()
		if !h.OnGreen(pinX) {
			t.Errorf("hole %d pin is off the green", number)
		}

		for _, hz := range h.Hazards() {
			// Hazards stay between the landing zone and the green complex.
			if hz.StartX < cfg.Round.HazardMinX {
				t.Errorf("hole %d hazard starts at %.0f, before min x %.0f",
					number, hz.StartX, cfg.Round.HazardMinX)
			}
			if hz.EndX() > green.StartX-green.SlopeWidth {
				t.Errorf("hole %d hazard reaches %.0f into the green complex", number, hz.EndX())
			}

			// The surface level sits above all terrain in the span, so a
			// grounded ball anywhere in the area registers as inside.
			for x := hz.StartX; x <= hz.EndX(); x += 25 {
				if ground := h.HeightAt(x); ground <= hz.Level {
					t.Errorf("hole %d hazard level %.1f not above terrain %.1f at x=%.0f",
						number, hz.Level, ground, x)
					break
				}
			}
		}

		// No two hazard areas touch.
		hs := h.Hazards()
		for i := 0; i < len(hs); i++ {
			for j := i + 1; j < len(hs); j++ {
				if hs[i].StartX < hs[j].EndX() && hs[i].EndX() > hs[j].StartX {
					t.Errorf("hole %d hazards %d and %d overlap", number, i, j)
				}
			}
		}
	}
}

func TestBuildHoleDropBoundsStopBeforeGreen(t *testing.T) {
	cfg := holesTestConfig(t)

	for number := 1; number <= 24; number++ {
		h := buildHole(cfg, 77, number)
		water, ok := h.FirstHazard(course.HazardWater)
		if !ok {
			continue
		}

		// A ball dropped after the water never lands on the green complex.
		x, _ := h.DropPosition(water.StartX+water.Width/2, water.Level+1, -1)
		if h.Green().InComplex(x) && x > h.Green().StartX-h.Green().SlopeWidth {
			t.Errorf("hole %d drop at %.0f landed on the green complex", number, x)
		}
	}
}
