package course

// HazardKind distinguishes water from sand.
type HazardKind uint8

const (
	HazardWater HazardKind = iota
	HazardBunker
)

// String returns the hazard kind name.
func (k HazardKind) String() string {
	if k == HazardWater {
		return "water"
	}
	return "bunker"
}

// Hazard is a positioned rectangular hazard area. Level is the surface y of
// the water or sand; with down-positive y, points below the surface have a
// larger y. Hazards are value objects created at hole setup and never
// mutated.
type Hazard struct {
	Kind   HazardKind
	StartX float64
	Width  float64
	Level  float64
}

// EndX returns the far edge of the hazard.
func (h Hazard) EndX() float64 { return h.StartX + h.Width }

// Contains reports whether a point is inside the hazard. The check accepts
// points within tolerance above the surface so a fast-moving ball is still
// caught on the frame it crosses the level.
func (h Hazard) Contains(x, y, tolerance float64) bool {
	if x < h.StartX || x > h.EndX() {
		return false
	}
	return y >= h.Level-tolerance
}

// DropBounds limits where a penalized ball may be placed.
type DropBounds struct {
	Offset float64 // distance beside the hazard, half a club length
	MinX   float64 // never behind the tee
	MaxX   float64 // never past the green complex
}

// DropPosition picks the x a penalized ball is placed at. The ball goes on
// the side it approached from, so the player is not forced to immediately
// re-cross the hazard: before the hazard when it was moving toward
// increasing x, after it otherwise. The result is clamped to the bounds and
// always lands outside [StartX, EndX].
func (h Hazard) DropPosition(approachDir float64, b DropBounds) float64 {
	var x float64
	if approachDir >= 0 {
		x = h.StartX - b.Offset
	} else {
		x = h.EndX() + b.Offset
	}

	if x < b.MinX {
		x = b.MinX
	}
	if x > b.MaxX {
		x = b.MaxX
	}

	// Clamping can push the drop back inside the area; resolve to the
	// side with more open ground, re-clamped.
	if x >= h.StartX && x <= h.EndX() {
		if h.StartX-b.MinX > b.MaxX-h.EndX() {
			x = h.StartX - b.Offset
			if x < b.MinX {
				x = b.MinX
			}
		} else {
			x = h.EndX() + b.Offset
			if x > b.MaxX {
				x = b.MaxX
			}
		}
	}
	return x
}
