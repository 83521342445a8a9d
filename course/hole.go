package course

import "math"

// HoleParams bundles what a Hole needs beyond its height field.
type HoleParams struct {
	Number int
	Par    int

	TargetRadius     float64 // hole-out capture radius around the pin
	SurfaceTolerance float64 // hazard vertical tolerance band
	Drop             DropBounds
}

// Hole is one playable hole: terrain, green, pin and hazard areas.
// Immutable after construction; hazard behavior is delegated to the owned
// Hazard values rather than inherited.
type Hole struct {
	number int
	par    int

	heights *HeightMap
	hazards []Hazard

	pinX, pinY       float64
	targetRadius     float64
	surfaceTolerance float64
	drop             DropBounds
}

// NewHole assembles a hole from a generated height field and its hazards.
// The pin sits at the green's horizontal center at green elevation.
func NewHole(hm *HeightMap, hazards []Hazard, p HoleParams) *Hole {
	pinX := hm.Green().CenterX()
	return &Hole{
		number:           p.Number,
		par:              p.Par,
		heights:          hm,
		hazards:          hazards,
		pinX:             pinX,
		pinY:             hm.HeightAt(pinX),
		targetRadius:     p.TargetRadius,
		surfaceTolerance: p.SurfaceTolerance,
		drop:             p.Drop,
	}
}

// Number returns the hole number, 1-based.
func (h *Hole) Number() int { return h.number }

// Par returns the hole par.
func (h *Hole) Par() int { return h.par }

// Width returns the course length.
func (h *Hole) Width() float64 { return h.heights.Width() }

// HeightMap returns the underlying height field for rendering.
func (h *Hole) HeightMap() *HeightMap { return h.heights }

// Hazards returns all hazard areas on this hole.
func (h *Hole) Hazards() []Hazard { return h.hazards }

// HeightAt returns the terrain surface y at x.
func (h *Hole) HeightAt(x float64) float64 { return h.heights.HeightAt(x) }

// SlopeAt returns rise/run at x.
func (h *Hole) SlopeAt(x float64) float64 { return h.heights.SlopeAt(x) }

// NormalAt returns the unit surface normal at x.
func (h *Hole) NormalAt(x float64) (float64, float64) { return h.heights.NormalAt(x) }

// OnGreen reports whether x is on the putting surface.
func (h *Hole) OnGreen(x float64) bool { return h.heights.OnGreen(x) }

// Green returns the green zone.
func (h *Hole) Green() GreenZone { return h.heights.Green() }

// PinPosition returns the pin location.
func (h *Hole) PinPosition() (x, y float64) { return h.pinX, h.pinY }

// TargetRadius returns the hole-out capture radius.
func (h *Hole) TargetRadius() float64 { return h.targetRadius }

// InHole reports whether a point is within the capture radius of the pin.
func (h *Hole) InHole(x, y float64) bool {
	dx := x - h.pinX
	dy := y - h.pinY
	return math.Sqrt(dx*dx+dy*dy) <= h.targetRadius
}

// HazardAt returns the first hazard containing the point, if any.
func (h *Hole) HazardAt(x, y float64) (Hazard, bool) {
	for _, hz := range h.hazards {
		if hz.Contains(x, y, h.surfaceTolerance) {
			return hz, true
		}
	}
	return Hazard{}, false
}

// WaterAt reports whether the point is inside any water hazard.
func (h *Hole) WaterAt(x, y float64) bool {
	return h.kindAt(x, y, HazardWater)
}

// BunkerAt reports whether the point is inside any bunker.
func (h *Hole) BunkerAt(x, y float64) bool {
	return h.kindAt(x, y, HazardBunker)
}

func (h *Hole) kindAt(x, y float64, kind HazardKind) bool {
	for _, hz := range h.hazards {
		if hz.Kind == kind && hz.Contains(x, y, h.surfaceTolerance) {
			return true
		}
	}
	return false
}

// FirstHazard returns the first hazard of the given kind, if the hole has
// one.
func (h *Hole) FirstHazard(kind HazardKind) (Hazard, bool) {
	for _, hz := range h.hazards {
		if hz.Kind == kind {
			return hz, true
		}
	}
	return Hazard{}, false
}

// DropPosition relocates a penalized ball beside the hazard containing it,
// on the side it approached from, with y resolved from the terrain. If the
// point is not in a hazard the input position is returned unchanged.
func (h *Hole) DropPosition(ballX, ballY, approachDir float64) (x, y float64) {
	hz, ok := h.HazardAt(ballX, ballY)
	if !ok {
		return ballX, ballY
	}
	x = hz.DropPosition(approachDir, h.drop)
	return x, h.heights.HeightAt(x)
}
