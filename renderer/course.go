// Package renderer draws the course, ball and effect particles with
// raylib. It consumes height samples and hazard rectangles from the
// course; nothing here feeds back into the simulation.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dghein/fairway/camera"
	"github.com/dghein/fairway/config"
	"github.com/dghein/fairway/course"
	"github.com/dghein/fairway/effects"
)

// Palette
var (
	colorFairway  = rl.Color{R: 96, G: 160, B: 70, A: 255}
	colorRough    = rl.Color{R: 74, G: 128, B: 56, A: 255}
	colorGreen    = rl.Color{R: 140, G: 200, B: 100, A: 255}
	colorWater    = rl.Color{R: 60, G: 120, B: 200, A: 200}
	colorSand     = rl.Color{R: 222, G: 202, B: 140, A: 255}
	colorPin      = rl.Color{R: 230, G: 230, B: 230, A: 255}
	colorFlag     = rl.Color{R: 220, G: 50, B: 50, A: 255}
	colorBall     = rl.White
	colorSplash   = rl.Color{R: 140, G: 190, B: 240, A: 255}
	colorSandFx   = rl.Color{R: 222, G: 202, B: 140, A: 255}
	colorConfetti = rl.Color{R: 250, G: 210, B: 60, A: 255}
)

// CourseView renders one hole.
type CourseView struct {
	bunkerDepth  float32
	screenHeight float32
}

// NewCourseView creates a course renderer.
func NewCourseView(cfg *config.Config) *CourseView {
	return &CourseView{
		bunkerDepth:  float32(cfg.Hazards.BunkerDepth),
		screenHeight: cfg.Derived.ScreenH32,
	}
}

// Draw renders the terrain, hazards and pin for the hole.
func (v *CourseView) Draw(h *course.Hole, cam *camera.Camera) {
	v.drawTerrain(h, cam)
	v.drawHazards(h, cam)
	v.drawPin(h, cam)
}

// drawTerrain fills the ground under the height field, one quad per
// visible segment.
func (v *CourseView) drawTerrain(h *course.Hole, cam *camera.Camera) {
	samples := h.HeightMap().Samples()
	green := h.Green()

	for i := 0; i+1 < len(samples); i++ {
		a, b := samples[i], samples[i+1]
		if !cam.IsVisible(float32((a.X+b.X)/2), float32((a.Y+b.Y)/2), float32(b.X-a.X)+200) {
			continue
		}

		ax, ay := cam.WorldToScreen(float32(a.X), float32(a.Y))
		bx, by := cam.WorldToScreen(float32(b.X), float32(b.Y))

		color := colorRough
		if a.IsGreen {
			color = colorGreen
		} else if green.InComplex(a.X) {
			color = colorFairway
		}

		// Two triangles filling from the surface down off-screen.
		bottom := v.screenHeight + 50
		rl.DrawTriangle(
			rl.Vector2{X: ax, Y: ay},
			rl.Vector2{X: ax, Y: bottom},
			rl.Vector2{X: bx, Y: by},
			color,
		)
		rl.DrawTriangle(
			rl.Vector2{X: bx, Y: by},
			rl.Vector2{X: ax, Y: bottom},
			rl.Vector2{X: bx, Y: bottom},
			color,
		)
	}
}

// drawHazards overlays water and sand rectangles on their areas.
func (v *CourseView) drawHazards(h *course.Hole, cam *camera.Camera) {
	for _, hz := range h.Hazards() {
		sx, sy := cam.WorldToScreen(float32(hz.StartX), float32(hz.Level))
		ex, _ := cam.WorldToScreen(float32(hz.EndX()), float32(hz.Level))
		if ex < 0 || sx > cam.ViewportW {
			continue
		}

		switch hz.Kind {
		case course.HazardWater:
			rl.DrawRectangle(int32(sx), int32(sy), int32(ex-sx), int32(v.screenHeight-sy+50), colorWater)
		case course.HazardBunker:
			rl.DrawRectangle(int32(sx), int32(sy), int32(ex-sx), int32(v.bunkerDepth*cam.Zoom), colorSand)
		}
	}
}

// drawPin draws the flagstick and the cup marker at the pin.
func (v *CourseView) drawPin(h *course.Hole, cam *camera.Camera) {
	pinX, pinY := h.PinPosition()
	sx, sy := cam.WorldToScreen(float32(pinX), float32(pinY))
	if sx < -50 || sx > cam.ViewportW+50 {
		return
	}

	poleTop := sy - 70*cam.Zoom
	rl.DrawLineEx(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: sx, Y: poleTop}, 2*cam.Zoom, colorPin)
	rl.DrawTriangle(
		rl.Vector2{X: sx, Y: poleTop},
		rl.Vector2{X: sx, Y: poleTop + 14*cam.Zoom},
		rl.Vector2{X: sx + 22*cam.Zoom, Y: poleTop + 7*cam.Zoom},
		colorFlag,
	)
	rl.DrawCircle(int32(sx), int32(sy), float32(h.TargetRadius())*cam.Zoom*0.4, rl.Black)
}

// DrawBall draws the ball.
func (v *CourseView) DrawBall(x, y, radius float32, cam *camera.Camera) {
	if !cam.IsVisible(x, y, radius) {
		return
	}
	sx, sy := cam.WorldToScreen(x, y)
	rl.DrawCircle(int32(sx), int32(sy), radius*cam.Zoom, colorBall)
	rl.DrawCircleLines(int32(sx), int32(sy), radius*cam.Zoom, rl.Gray)
}

// DrawParticles renders effect particles with life-based fade.
func (v *CourseView) DrawParticles(particles []effects.View, cam *camera.Camera) {
	for i := range particles {
		p := &particles[i]
		if !cam.IsVisible(p.X, p.Y, p.Size) {
			continue
		}

		var color rl.Color
		switch p.Kind {
		case effects.KindSplash:
			color = colorSplash
		case effects.KindSand:
			color = colorSandFx
		case effects.KindConfetti:
			color = colorConfetti
		}
		color.A = uint8(p.Alpha * 230)

		sx, sy := cam.WorldToScreen(p.X, p.Y)
		size := p.Size * p.Alpha * cam.Zoom
		if size < 0.5 {
			size = 0.5
		}
		rl.DrawCircle(int32(sx), int32(sy), size, color)
	}
}
