package game

// HoleScore is one row of the in-memory scorecard.
type HoleScore struct {
	Hole      int
	Par       int
	Strokes   int
	Penalties int
	Completed bool
}

// Session is the explicitly constructed round state: the scorecard and the
// cursor over it. Created at game start, reset on course restart, and
// touched only by the orchestration layer.
type Session struct {
	scores  []HoleScore
	current int
}

// NewSession creates a session for a round of the given length.
func NewSession(holes, par int) *Session {
	s := &Session{scores: make([]HoleScore, holes)}
	for i := range s.scores {
		s.scores[i] = HoleScore{Hole: i + 1, Par: par}
	}
	return s
}

// Reset clears all scores and returns to the first hole.
func (s *Session) Reset() {
	for i := range s.scores {
		s.scores[i].Strokes = 0
		s.scores[i].Penalties = 0
		s.scores[i].Completed = false
	}
	s.current = 0
}

// Holes returns the number of holes in the round.
func (s *Session) Holes() int { return len(s.scores) }

// CurrentHole returns the 1-based current hole number.
func (s *Session) CurrentHole() int { return s.current + 1 }

// Current returns the scorecard row being played.
func (s *Session) Current() *HoleScore { return &s.scores[s.current] }

// SetPar overrides the current hole's par.
func (s *Session) SetPar(par int) { s.scores[s.current].Par = par }

// RecordStroke adds a stroke on the current hole.
func (s *Session) RecordStroke() { s.scores[s.current].Strokes++ }

// RecordPenalty adds a penalty stroke on the current hole. Penalties count
// toward the stroke total and are also tracked separately.
func (s *Session) RecordPenalty() {
	s.scores[s.current].Strokes++
	s.scores[s.current].Penalties++
}

// CompleteHole marks the current hole finished.
func (s *Session) CompleteHole() { s.scores[s.current].Completed = true }

// Advance moves to the next hole. Returns false when the round is over.
func (s *Session) Advance() bool {
	if s.current+1 >= len(s.scores) {
		return false
	}
	s.current++
	return true
}

// RoundComplete reports whether every hole has been finished.
func (s *Session) RoundComplete() bool {
	for i := range s.scores {
		if !s.scores[i].Completed {
			return false
		}
	}
	return true
}

// TotalStrokes sums strokes over all holes played so far.
func (s *Session) TotalStrokes() int {
	total := 0
	for i := range s.scores {
		total += s.scores[i].Strokes
	}
	return total
}

// TotalPar sums par over completed holes.
func (s *Session) TotalPar() int {
	total := 0
	for i := range s.scores {
		if s.scores[i].Completed {
			total += s.scores[i].Par
		}
	}
	return total
}

// RelativeToPar returns strokes over/under par for completed holes.
func (s *Session) RelativeToPar() int {
	rel := 0
	for i := range s.scores {
		if s.scores[i].Completed {
			rel += s.scores[i].Strokes - s.scores[i].Par
		}
	}
	return rel
}

// Scores returns a copy of the scorecard.
func (s *Session) Scores() []HoleScore {
	out := make([]HoleScore, len(s.scores))
	copy(out, s.scores)
	return out
}
