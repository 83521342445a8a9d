package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dghein/fairway/physics"
)

// handleInput polls the keyboard once per frame and drives the shot cycle.
func (g *Game) handleInput(dt float64) {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.restartRound()
		return
	}

	if g.controlLocked || g.state == StateRoundComplete || g.state == StateHoleComplete {
		return
	}

	// Club selection
	if rl.IsKeyPressed(rl.KeyC) || rl.IsKeyPressed(rl.KeyTab) {
		g.bag.CycleNext()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		g.bag.Select(physics.Driver)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		g.bag.Select(physics.Iron)
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		g.bag.Select(physics.Wedge)
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		g.bag.Select(physics.Putter)
	}

	// Aim and backspin
	if rl.IsKeyPressed(rl.KeyLeft) {
		g.aimDir = -1
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		g.aimDir = 1
	}
	if rl.IsKeyPressed(rl.KeyB) {
		g.backspin = !g.backspin
	}

	// Swing: hold to charge, release to hit
	switch g.state {
	case StateAiming:
		if rl.IsKeyDown(rl.KeySpace) && g.ball.IsStabilized() {
			g.state = StateCharging
			g.charge = g.cfg.Swing.MinCharge
			g.chargeRising = true
		}
	case StateCharging:
		if rl.IsKeyReleased(rl.KeySpace) {
			g.swing()
		}
	}
}
