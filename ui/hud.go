// Package ui renders the heads-up display: stroke counter, club readout,
// wind indicator, swing meter and scorecard.
package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dghein/fairway/config"
)

// ScoreRow is one scorecard line.
type ScoreRow struct {
	Hole      int
	Par       int
	Strokes   int
	Completed bool
}

// HUDData holds everything the HUD needs for one frame.
type HUDData struct {
	Hole         int
	Par          int
	Strokes      int
	TotalStrokes int
	ToPar        int

	Club     string
	Backspin bool

	WindSpeed float64
	WindDeg   float64

	Charge   float64
	Charging bool

	ShotYards     float64
	LastShotYards float64
	InBunker      bool

	HoleComplete  bool
	RoundComplete bool
	Scores        []ScoreRow
}

// HUD renders the heads-up display.
type HUD struct {
	screenW int32
	screenH int32
}

// NewHUD creates a HUD sized to the screen.
func NewHUD(cfg *config.Config) *HUD {
	return &HUD{
		screenW: int32(cfg.Screen.Width),
		screenH: int32(cfg.Screen.Height),
	}
}

// Draw renders the HUD for one frame.
func (h *HUD) Draw(data HUDData) {
	// Hole and stroke counters
	rl.DrawText(fmt.Sprintf("Hole %d  Par %d", data.Hole, data.Par), 10, 10, 20, rl.White)
	rl.DrawText(
		fmt.Sprintf("Strokes: %d | Total: %d | To par: %+d", data.Strokes, data.TotalStrokes, data.ToPar),
		10, 35, 16, rl.LightGray,
	)

	// Club readout
	club := data.Club
	if data.Backspin {
		club += " (backspin)"
	}
	rl.DrawText("Club: "+club, 10, 55, 16, rl.LightGray)
	if data.InBunker {
		rl.DrawText("IN BUNKER", 10, 75, 16, rl.Orange)
	}

	h.drawWind(data.WindSpeed, data.WindDeg)
	h.drawShotInfo(data)

	if data.Charging {
		h.drawChargeMeter(data.Charge)
	}
	if data.HoleComplete {
		h.drawBanner("HOLE COMPLETE")
	}
	if data.RoundComplete {
		h.drawScorecard(data)
	}

	h.drawControls()
}

// drawWind renders the wind arrow and speed in the top-right corner.
func (h *HUD) drawWind(speed, deg float64) {
	cx := float32(h.screenW - 70)
	cy := float32(50)

	rl.DrawCircleLines(int32(cx), int32(cy), 28, rl.LightGray)

	rad := deg * math.Pi / 180
	dx := float32(math.Cos(rad))
	dy := float32(-math.Sin(rad)) // up on screen is negative y
	tip := rl.Vector2{X: cx + dx*24, Y: cy + dy*24}
	tail := rl.Vector2{X: cx - dx*24, Y: cy - dy*24}
	rl.DrawLineEx(tail, tip, 3, rl.White)
	rl.DrawCircle(int32(tip.X), int32(tip.Y), 4, rl.White)

	rl.DrawText(fmt.Sprintf("%.0f", speed), int32(cx)-10, int32(cy)+34, 16, rl.White)
}

// drawShotInfo shows live and last shot distances.
func (h *HUD) drawShotInfo(data HUDData) {
	y := h.screenH - 55
	if data.ShotYards > 0.5 {
		rl.DrawText(fmt.Sprintf("Shot: %.0f yd", data.ShotYards), 10, y, 16, rl.White)
	}
	if data.LastShotYards > 0.5 {
		rl.DrawText(fmt.Sprintf("Last: %.0f yd", data.LastShotYards), 10, y+20, 16, rl.LightGray)
	}
}

// drawChargeMeter renders the swing power bar.
func (h *HUD) drawChargeMeter(charge float64) {
	barW := int32(300)
	barH := int32(18)
	x := (h.screenW - barW) / 2
	y := h.screenH - 90

	rl.DrawRectangle(x-2, y-2, barW+4, barH+4, rl.Color{R: 0, G: 0, B: 0, A: 160})
	fill := int32(float64(barW) * charge)

	color := rl.Green
	if charge > 0.85 {
		color = rl.Red
	} else if charge > 0.6 {
		color = rl.Orange
	}
	rl.DrawRectangle(x, y, fill, barH, color)
	rl.DrawRectangleLines(x, y, barW, barH, rl.White)
}

// drawBanner centers a large status line.
func (h *HUD) drawBanner(text string) {
	width := rl.MeasureText(text, 40)
	rl.DrawText(text, (h.screenW-width)/2, h.screenH/2-60, 40, rl.Yellow)
}

// drawScorecard renders the end-of-round scorecard panel.
func (h *HUD) drawScorecard(data HUDData) {
	rows := len(data.Scores)
	panelW := float32(300)
	panelH := float32(70 + rows*22 + 30)
	px := (float32(h.screenW) - panelW) / 2
	py := (float32(h.screenH) - panelH) / 2

	gui.Panel(rl.Rectangle{X: px, Y: py, Width: panelW, Height: panelH}, "Scorecard")

	y := int32(py) + 35
	for _, row := range data.Scores {
		line := fmt.Sprintf("Hole %2d   Par %d   %d", row.Hole, row.Par, row.Strokes)
		rl.DrawText(line, int32(px)+20, y, 16, rl.White)
		y += 22
	}
	rl.DrawText(
		fmt.Sprintf("Total %d (%+d)", data.TotalStrokes, data.ToPar),
		int32(px)+20, y+6, 18, rl.Yellow,
	)
}

// drawControls renders the control legend at the bottom of the screen.
func (h *HUD) drawControls() {
	rl.DrawText(
		"space: swing | c: club | b: backspin | left/right: aim | r: restart",
		10, h.screenH-25, 14, rl.Gray,
	)
}
