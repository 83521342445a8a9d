package telemetry

import "testing"

func TestCollectorAccumulates(t *testing.T) {
	c := NewCollector()

	c.RecordStroke("driver")
	c.RecordStroke("putter")
	c.RecordStroke("putter")
	c.RecordPenalty()
	c.RecordShotDistance(231.5)
	c.RecordShotDistance(12.0)
	c.RecordShotDistance(0) // a penalty relocation records no distance
	c.RecordHole(HoleResult{Hole: 1, Par: 4, Strokes: 4, Penalties: 1})

	if got := c.TotalStrokes(); got != 4 {
		t.Errorf("TotalStrokes() = %d, want 4", got)
	}
	if got := c.TotalPenalties(); got != 1 {
		t.Errorf("TotalPenalties() = %d, want 1", got)
	}
	if got := len(c.ShotDistances()); got != 2 {
		t.Errorf("recorded %d distances, want 2 (zero dropped)", got)
	}
	if got := c.ClubUse()["putter"]; got != 2 {
		t.Errorf("putter use = %d, want 2", got)
	}
	if got := len(c.HoleResults()); got != 1 {
		t.Errorf("recorded %d hole results, want 1", got)
	}
}

func TestCollectorReset(t *testing.T) {
	c := NewCollector()
	c.RecordStroke("driver")
	c.RecordPenalty()
	c.RecordShotDistance(100)
	c.RecordHole(HoleResult{Hole: 1})

	c.Reset()

	if c.TotalStrokes() != 0 || c.TotalPenalties() != 0 {
		t.Error("stroke counters survived Reset")
	}
	if len(c.HoleResults()) != 0 || len(c.ShotDistances()) != 0 {
		t.Error("recorded results survived Reset")
	}
	if len(c.ClubUse()) != 0 {
		t.Error("club use survived Reset")
	}
}
