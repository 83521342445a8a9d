package game

import (
	"math/rand"

	"github.com/dghein/fairway/config"
	"github.com/dghein/fairway/course"
)

// buildHole generates the layout for one hole: green placement and
// elevation, terrain, and hazard areas. Layout is deterministic for a
// given (seed, number) pair so a round can be replayed.
func buildHole(cfg *config.Config, seed int64, number int) *course.Hole {
	holeSeed := seed + int64(number)*7919
	rng := rand.New(rand.NewSource(holeSeed))

	cc := cfg.Course
	gc := cfg.Green

	// Green sits in the last third of the hole, clear of the right edge.
	greenMin := cc.Width * 0.68
	greenMax := cc.Width - gc.Width - gc.SlopeWidth - 400
	green := course.GreenZone{
		StartX:     greenMin + rng.Float64()*(greenMax-greenMin),
		Width:      gc.Width,
		SlopeWidth: gc.SlopeWidth,
		Elevation:  gc.MinElevation + rng.Float64()*(gc.MaxElevation-gc.MinElevation),
	}

	hm := course.Generate(holeSeed, course.GenParams{
		Width:           cc.Width,
		SegmentWidth:    cc.SegmentWidth,
		BaseHeight:      cc.BaseHeight,
		HeightFloor:     cc.HeightFloor,
		HillAmplitude:   cc.HillAmplitude,
		HillFrequency:   cc.HillFrequency,
		DetailAmplitude: cc.DetailAmplitude,
		DetailFrequency: cc.DetailFrequency,
		NoiseAmplitude:  cc.NoiseAmplitude,
		NoiseScale:      cc.NoiseScale,
		SmoothPasses:    cc.SmoothPasses,
	}, green)

	hazards := rollHazards(cfg, rng, hm, green)

	return course.NewHole(hm, hazards, course.HoleParams{
		Number:           number,
		Par:              cfg.Round.DefaultPar,
		TargetRadius:     gc.TargetRadius,
		SurfaceTolerance: cfg.Hazards.SurfaceTolerance,
		Drop: course.DropBounds{
			Offset: cfg.Hazards.DropOffset,
			MinX:   cfg.Hazards.DropMinX,
			MaxX:   green.StartX - green.SlopeWidth,
		},
	})
}

// rollHazards places up to one water hazard and one bunker between the
// landing area and the green, without overlapping each other.
func rollHazards(cfg *config.Config, rng *rand.Rand, hm *course.HeightMap, green course.GreenZone) []course.Hazard {
	rc := cfg.Round
	var hazards []course.Hazard

	zoneStart := rc.HazardMinX
	zoneEnd := green.StartX - green.SlopeWidth - rc.HazardGreenGap
	if zoneEnd <= zoneStart {
		return nil
	}

	if rng.Float64() < rc.WaterChance {
		width := rc.WaterWidthMin + rng.Float64()*(rc.WaterWidthMax-rc.WaterWidthMin)
		if h, ok := placeHazard(rng, hm, course.HazardWater, width, zoneStart, zoneEnd, hazards); ok {
			hazards = append(hazards, h)
		}
	}
	if rng.Float64() < rc.BunkerChance {
		width := rc.BunkerWidthMin + rng.Float64()*(rc.BunkerWidthMax-rc.BunkerWidthMin)
		if h, ok := placeHazard(rng, hm, course.HazardBunker, width, zoneStart, zoneEnd, hazards); ok {
			hazards = append(hazards, h)
		}
	}
	return hazards
}

// placeHazard tries a handful of random positions for a hazard of the
// given width, rejecting overlaps with already-placed areas. The level is
// set just above the highest terrain in the span so the entire area is
// under the surface.
func placeHazard(rng *rand.Rand, hm *course.HeightMap, kind course.HazardKind, width, zoneStart, zoneEnd float64, existing []course.Hazard) (course.Hazard, bool) {
	if zoneEnd-zoneStart < width {
		return course.Hazard{}, false
	}
	for attempt := 0; attempt < 8; attempt++ {
		startX := zoneStart + rng.Float64()*(zoneEnd-zoneStart-width)
		if overlapsAny(startX, startX+width, existing) {
			continue
		}
		return course.Hazard{
			Kind:   kind,
			StartX: startX,
			Width:  width,
			Level:  hm.HighestSurface(startX, startX+width) - 4,
		}, true
	}
	return course.Hazard{}, false
}

func overlapsAny(startX, endX float64, hazards []course.Hazard) bool {
	const gap = 150 // keep a playable strip between areas
	for _, h := range hazards {
		if startX < h.EndX()+gap && endX > h.StartX-gap {
			return true
		}
	}
	return false
}
