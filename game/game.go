// Package game wires the course, ball, wind and clubs into a playable
// round and owns the per-frame update order.
package game

import (
	"log/slog"
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dghein/fairway/camera"
	"github.com/dghein/fairway/config"
	"github.com/dghein/fairway/course"
	"github.com/dghein/fairway/effects"
	"github.com/dghein/fairway/physics"
	"github.com/dghein/fairway/renderer"
	"github.com/dghein/fairway/telemetry"
	"github.com/dghein/fairway/ui"
)

// State is the shot-cycle state the orchestrator is in.
type State uint8

const (
	StateAiming State = iota
	StateCharging
	StateBallInMotion
	StateHoleComplete
	StateRoundComplete
)

// Options configures a new game.
type Options struct {
	Seed      int64
	Headless  bool
	OutputDir string
	Holes     int // 0 = use config
}

// Game holds the complete game state for one round.
type Game struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	hole *course.Hole
	ball *physics.Ball
	wind *physics.Wind
	bag  *physics.Bag

	session *Session
	sched   *Scheduler
	cam     *camera.Camera
	fx      *effects.System

	courseView *renderer.CourseView
	hud        *ui.HUD

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	state         State
	aimDir        float64 // +1 toward the green, -1 back
	backspin      bool
	charge        float64
	chargeRising  bool
	controlLocked bool

	tick     int64
	dt       float64
	headless bool
}

// NewGame creates a game from the loaded config and the given options.
func NewGame(opts Options) *Game {
	cfg := config.Cfg()

	holes := cfg.Round.Holes
	if opts.Holes > 0 {
		holes = opts.Holes
	}

	bag, err := physics.NewBagFromConfig(cfg.Clubs)
	if err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		cfg:      cfg,
		rng:      rng,
		seed:     opts.Seed,
		bag:      bag,
		session:  NewSession(holes, cfg.Round.DefaultPar),
		sched:    NewScheduler(),
		fx:       effects.NewSystem(rng),
		wind:     physics.NewWind(cfg.Wind, rng),
		ball:     physics.NewBall(physics.BallParamsFromConfig(cfg), rng),
		aimDir:   1,
		dt:       1.0 / float64(cfg.Screen.TargetFPS),
		headless: opts.Headless,
	}

	g.collector = telemetry.NewCollector()
	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("telemetry output disabled", "error", err)
		} else {
			g.output = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("writing config snapshot", "error", err)
			}
		}
	}

	g.cam = camera.New(
		cfg.Derived.ScreenW32, cfg.Derived.ScreenH32,
		float32(cfg.Course.Width), cfg.Derived.ScreenH32,
	)
	if !opts.Headless {
		g.courseView = renderer.NewCourseView(cfg)
		g.hud = ui.NewHUD(cfg)
	}

	g.startHole(1)
	return g
}

// Tick returns the number of update ticks since start.
func (g *Game) Tick() int64 { return g.tick }

// Session exposes the scorecard for the HUD and telemetry.
func (g *Game) Session() *Session { return g.session }

// RoundOver reports whether the round has finished and been logged.
func (g *Game) RoundOver() bool { return g.state == StateRoundComplete }

// startHole builds the hole layout, resets the ball to the tee and points
// the camera at it.
func (g *Game) startHole(number int) {
	g.hole = buildHole(g.cfg, g.seed, number)
	g.session.SetPar(g.hole.Par())

	g.ball.AttachCourse(g.hole)
	g.ball.ResetForHole(g.cfg.Course.TeeX)

	g.state = StateAiming
	g.aimDir = 1
	g.backspin = false
	g.charge = 0
	g.controlLocked = false

	g.cam.SnapTo(float32(g.ball.X), float32(g.ball.Y))

	pinX, _ := g.hole.PinPosition()
	slog.Info("hole started",
		"hole", number,
		"par", g.hole.Par(),
		"pin_yards", (pinX-g.cfg.Course.TeeX)/g.cfg.Units.PerYard,
		"hazards", len(g.hole.Hazards()),
	)
}

// Update runs one graphical frame: input, then simulation.
func (g *Game) Update() {
	dt := float64(rl.GetFrameTime())
	if dt > 0.1 {
		dt = 0.1 // clamp pauses and window drags
	}
	g.handleInput(dt)
	g.step(dt)
}

// UpdateHeadless runs one fixed-step frame with a simple auto-player in
// place of keyboard input, for soak runs and tuning.
func (g *Game) UpdateHeadless() {
	g.autoSwing()
	g.step(g.dt)
}

// step advances timers, wind, ball and effects by dt seconds.
func (g *Game) step(dt float64) {
	g.tick++
	g.sched.Advance(dt)
	g.wind.Update(dt)

	if g.state == StateCharging {
		g.advanceChargeMeter(dt)
	}

	windFX, windFY := g.wind.ForceVector()
	events := g.ball.Update(dt, windFX, windFY)
	g.handleEvents(events)

	g.fx.Update(dt)
	g.cam.Follow(float32(g.ball.X), float32(g.ball.Y), float32(dt))
}

// advanceChargeMeter sweeps the swing meter up and down while the player
// holds the swing key.
func (g *Game) advanceChargeMeter(dt float64) {
	rate := g.cfg.Swing.ChargeRate * dt
	if g.chargeRising {
		g.charge += rate
		if g.charge >= 1 {
			g.charge = 1
			g.chargeRising = false
		}
	} else {
		g.charge -= rate
		if g.charge <= g.cfg.Swing.MinCharge {
			g.charge = g.cfg.Swing.MinCharge
			g.chargeRising = true
		}
	}
}

// swing releases the charged shot.
func (g *Game) swing() {
	charge := g.charge
	if charge < g.cfg.Swing.MinCharge {
		charge = g.cfg.Swing.MinCharge
	}
	events := g.ball.Hit(g.bag.CurrentClub(), g.bag.Current(), g.aimDir, charge, g.backspin)
	g.handleEvents(events)
	g.charge = 0
	g.state = StateBallInMotion
}

// handleEvents fans discrete ball events out to the scorecard, effects,
// logging and scheduling.
func (g *Game) handleEvents(events []physics.Event) {
	for _, ev := range events {
		switch ev.Type {
		case physics.EventBallHit:
			g.session.RecordStroke()
			g.collector.RecordStroke(ev.Club.String())
			slog.Info("ball hit",
				"hole", g.session.CurrentHole(),
				"club", ev.Club.String(),
				"stroke", g.session.Current().Strokes,
				"wind", g.wind.Speed,
			)

		case physics.EventWaterPenalty:
			g.session.RecordPenalty()
			g.collector.RecordPenalty()
			g.fx.SpawnSplash(float32(ev.X), float32(ev.Y))
			g.controlLocked = true
			g.sched.Schedule(g.cfg.Round.PenaltyResume, func() {
				g.controlLocked = false
				g.state = StateAiming
			})
			slog.Info("water penalty", "hole", g.session.CurrentHole(), "x", ev.X)

		case physics.EventBunkerEnter:
			g.fx.SpawnSand(float32(ev.X), float32(ev.Y))
			slog.Info("bunker entered", "hole", g.session.CurrentHole(), "x", ev.X)

		case physics.EventBunkerExit:
			slog.Info("bunker exited", "hole", g.session.CurrentHole(), "x", ev.X)

		case physics.EventHoleCompleted:
			g.completeHole(ev)

		case physics.EventBallStopped:
			g.collector.RecordShotDistance(ev.Yards)
			if g.state == StateBallInMotion {
				g.state = StateAiming
			}
			slog.Info("ball stopped",
				"hole", g.session.CurrentHole(),
				"yards", ev.Yards,
				"on_green", g.hole.OnGreen(g.ball.X),
			)
		}
	}
}

// completeHole records the finished hole and schedules the transition.
func (g *Game) completeHole(ev physics.Event) {
	g.session.CompleteHole()
	g.collector.RecordShotDistance(ev.Yards)
	score := g.session.Current()
	g.collector.RecordHole(telemetry.HoleResult{
		Hole:      score.Hole,
		Par:       score.Par,
		Strokes:   score.Strokes,
		Penalties: score.Penalties,
		HoleInOne: ev.HoleInOne,
	})

	g.fx.SpawnConfetti(float32(ev.X), float32(ev.Y))
	g.state = StateHoleComplete
	slog.Info("hole completed",
		"hole", score.Hole,
		"par", score.Par,
		"strokes", score.Strokes,
		"hole_in_one", ev.HoleInOne,
	)

	g.sched.Schedule(g.cfg.Round.NextHoleDelay, func() {
		if g.session.Advance() {
			g.startHole(g.session.CurrentHole())
		} else {
			g.finishRound()
		}
	})
}

// finishRound logs the summary and writes the round record if output is
// enabled.
func (g *Game) finishRound() {
	g.state = StateRoundComplete

	stats := telemetry.ComputeRoundStats(g.collector.HoleResults(), g.collector.ShotDistances())
	slog.Info("round complete",
		"strokes", g.session.TotalStrokes(),
		"to_par", g.session.RelativeToPar(),
		"mean_strokes", stats.MeanStrokes,
		"stddev_strokes", stats.StddevStrokes,
		"longest_yards", stats.LongestShotYards,
	)

	if g.output != nil {
		if err := g.output.WriteRound(g.collector.HoleResults(), stats); err != nil {
			slog.Error("writing round log", "error", err)
		}
	}
}

// restartRound resets the scorecard and starts over on hole one.
func (g *Game) restartRound() {
	g.sched.Clear()
	g.session.Reset()
	g.collector.Reset()
	g.startHole(1)
	slog.Info("round restarted", "seed", g.seed)
}

// autoSwing is the headless stand-in for a player: pick a club by distance
// to the pin and swing at full charge whenever the ball is ready.
func (g *Game) autoSwing() {
	if g.state != StateAiming || g.controlLocked || g.ball.Holed() {
		return
	}

	pinX, _ := g.hole.PinPosition()
	toPin := pinX - g.ball.X
	yards := math.Abs(toPin) / g.cfg.Units.PerYard

	switch {
	case g.hole.OnGreen(g.ball.X):
		g.bag.Select(physics.Putter)
	case yards > 160:
		g.bag.Select(physics.Driver)
	case yards > 70:
		g.bag.Select(physics.Iron)
	default:
		g.bag.Select(physics.Wedge)
	}

	if toPin >= 0 {
		g.aimDir = 1
	} else {
		g.aimDir = -1
	}
	g.charge = clampCharge(yards / 220)
	g.swing()
}

func clampCharge(c float64) float64 {
	if c < 0.25 {
		return 0.25
	}
	if c > 1 {
		return 1
	}
	return c
}

// Draw renders one frame. Not called in headless mode.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 120, G: 185, B: 230, A: 255})

	g.courseView.Draw(g.hole, g.cam)
	if !g.ball.Holed() {
		g.courseView.DrawBall(float32(g.ball.X), float32(g.ball.Y), float32(g.ball.Radius()), g.cam)
	}
	g.courseView.DrawParticles(g.fx.Snapshot(), g.cam)

	g.hud.Draw(ui.HUDData{
		Hole:          g.session.CurrentHole(),
		Par:           g.session.Current().Par,
		Strokes:       g.session.Current().Strokes,
		TotalStrokes:  g.session.TotalStrokes(),
		ToPar:         g.session.RelativeToPar(),
		Club:          g.bag.CurrentClub().String(),
		Backspin:      g.backspin,
		WindSpeed:     g.wind.Speed,
		WindDeg:       g.wind.DirectionDeg,
		Charge:        g.charge,
		Charging:      g.state == StateCharging,
		ShotYards:     g.ball.CurrentYards(),
		LastShotYards: g.ball.LastShotYards(),
		InBunker:      g.ball.InBunker(),
		HoleComplete:  g.state == StateHoleComplete,
		RoundComplete: g.state == StateRoundComplete,
		Scores:        scoreRows(g.session),
	})

	rl.EndDrawing()
}

// scoreRows flattens the session scorecard for the HUD.
func scoreRows(s *Session) []ui.ScoreRow {
	scores := s.Scores()
	rows := make([]ui.ScoreRow, len(scores))
	for i, sc := range scores {
		rows[i] = ui.ScoreRow{Hole: sc.Hole, Par: sc.Par, Strokes: sc.Strokes, Completed: sc.Completed}
	}
	return rows
}

// Unload releases resources held by the game.
func (g *Game) Unload() {
	if g.output != nil {
		g.output.Close()
	}
}
