package telemetry

import "gonum.org/v1/gonum/stat"

// RoundStats summarizes a finished round.
type RoundStats struct {
	Holes            int     `csv:"holes"`
	TotalStrokes     int     `csv:"total_strokes"`
	TotalPenalties   int     `csv:"total_penalties"`
	ToPar            int     `csv:"to_par"`
	MeanStrokes      float64 `csv:"mean_strokes"`
	StddevStrokes    float64 `csv:"stddev_strokes"`
	MeanShotYards    float64 `csv:"mean_shot_yards"`
	LongestShotYards float64 `csv:"longest_shot_yards"`
	HolesInOne       int     `csv:"holes_in_one"`
}

// ComputeRoundStats reduces per-hole results and shot distances to a
// round summary.
func ComputeRoundStats(results []HoleResult, distances []float64) RoundStats {
	s := RoundStats{Holes: len(results)}

	strokes := make([]float64, len(results))
	for i, r := range results {
		strokes[i] = float64(r.Strokes)
		s.TotalStrokes += r.Strokes
		s.TotalPenalties += r.Penalties
		s.ToPar += r.Strokes - r.Par
		if r.HoleInOne {
			s.HolesInOne++
		}
	}

	if len(strokes) > 0 {
		s.MeanStrokes = stat.Mean(strokes, nil)
		if len(strokes) > 1 {
			s.StddevStrokes = stat.StdDev(strokes, nil)
		}
	}

	if len(distances) > 0 {
		s.MeanShotYards = stat.Mean(distances, nil)
		for _, d := range distances {
			if d > s.LongestShotYards {
				s.LongestShotYards = d
			}
		}
	}

	return s
}
