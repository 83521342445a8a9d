// Package main calibrates club launch power against target carry
// distances by running the real ball simulation headlessly and minimizing
// the carry error with Nelder-Mead.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"gonum.org/v1/gonum/optimize"

	"github.com/dghein/fairway/config"
	"github.com/dghein/fairway/physics"
)

// targetCarries is the desired full-charge carry-plus-roll per club, in
// yards on flat ground with no wind.
var targetCarries = map[string]float64{
	"driver": 230,
	"iron":   160,
	"wedge":  80,
	"putter": 25,
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	outPath := flag.String("output", "", "Write tuned config YAML here (empty = print only)")
	maxEvals := flag.Int("max-evals", 400, "Maximum objective evaluations per club")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	for i := range cfg.Clubs {
		club := &cfg.Clubs[i]
		target, ok := targetCarries[club.Name]
		if !ok {
			fmt.Printf("%-8s no target, skipped\n", club.Name)
			continue
		}

		problem := optimize.Problem{
			Func: func(x []float64) float64 {
				carry := simulateCarry(cfg, *club, x[0])
				err := carry - target
				return err * err
			},
		}

		settings := &optimize.Settings{FuncEvaluations: *maxEvals}
		result, err := optimize.Minimize(problem, []float64{club.HorizontalPower}, settings, &optimize.NelderMead{})
		if err != nil {
			log.Fatalf("optimizing %s: %v", club.Name, err)
		}

		tuned := result.X[0]
		carry := simulateCarry(cfg, *club, tuned)
		fmt.Printf("%-8s power %6.1f -> %6.1f  carry %5.1f yd (target %5.1f)\n",
			club.Name, club.HorizontalPower, tuned, carry, target)
		club.HorizontalPower = tuned
	}

	if *outPath != "" {
		if err := cfg.WriteYAML(*outPath); err != nil {
			log.Fatalf("writing tuned config: %v", err)
		}
		fmt.Fprintf(os.Stderr, "tuned config written to %s\n", *outPath)
	}
}

// flatGround is the minimal course the calibration shots fly over: flat,
// hazard-free, with no hole to fall into.
type flatGround struct {
	height float64
}

func (f flatGround) HeightAt(x float64) float64 { return f.height }
func (f flatGround) SlopeAt(x float64) float64  { return 0 }
func (f flatGround) OnGreen(x float64) bool     { return false }
func (f flatGround) WaterAt(x, y float64) bool  { return false }
func (f flatGround) BunkerAt(x, y float64) bool { return false }
func (f flatGround) InHole(x, y float64) bool   { return false }
func (f flatGround) DropPosition(x, y, dir float64) (float64, float64) {
	return x, f.height
}

// simulateCarry hits one deterministic full-charge shot on flat ground
// and returns how far it went.
func simulateCarry(cfg *config.Config, club config.ClubConfig, horizontalPower float64) float64 {
	spec := physics.ClubSpec{
		Power:           club.Power,
		LaunchAngle:     club.LaunchAngle,
		HorizontalPower: horizontalPower,
		CanFly:          club.CanFly,
		Variance:        0, // deterministic for the optimizer
		Friction:        club.Friction,
		StopSpeed:       club.StopSpeed,
		BunkerFactor:    club.BunkerFactor,
		BounceRetain:    club.BounceRetain,
	}

	ball := physics.NewBall(physics.BallParamsFromConfig(cfg), rand.New(rand.NewSource(1)))
	ball.AttachCourse(flatGround{height: cfg.Course.BaseHeight})
	ball.PlaceAt(0)
	ball.Hit(physics.Driver, spec, 1, 1, false)

	dt := 1.0 / float64(cfg.Screen.TargetFPS)
	for i := 0; i < 60*60; i++ { // one simulated minute cap
		ball.Update(dt, 0, 0)
		if ball.IsStabilized() {
			break
		}
	}
	return ball.LastShotYards()
}
