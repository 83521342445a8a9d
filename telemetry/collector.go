// Package telemetry tracks round statistics and optional CSV round logs.
package telemetry

// HoleResult is the outcome of one completed hole.
type HoleResult struct {
	Hole      int  `csv:"hole"`
	Par       int  `csv:"par"`
	Strokes   int  `csv:"strokes"`
	Penalties int  `csv:"penalties"`
	HoleInOne bool `csv:"hole_in_one"`
}

// Collector accumulates round events as they happen. It lives for one
// round and is reset on restart.
type Collector struct {
	results   []HoleResult
	distances []float64
	strokes   int
	penalties int
	clubUse   map[string]int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{clubUse: make(map[string]int)}
}

// Reset clears everything for a new round.
func (c *Collector) Reset() {
	c.results = c.results[:0]
	c.distances = c.distances[:0]
	c.strokes = 0
	c.penalties = 0
	c.clubUse = make(map[string]int)
}

// RecordStroke notes a swing with the given club.
func (c *Collector) RecordStroke(club string) {
	c.strokes++
	c.clubUse[club]++
}

// RecordPenalty notes a penalty stroke.
func (c *Collector) RecordPenalty() {
	c.strokes++
	c.penalties++
}

// RecordShotDistance notes a completed shot's carry-plus-roll in yards.
func (c *Collector) RecordShotDistance(yards float64) {
	if yards > 0 {
		c.distances = append(c.distances, yards)
	}
}

// RecordHole stores a completed hole's result.
func (c *Collector) RecordHole(result HoleResult) {
	c.results = append(c.results, result)
}

// HoleResults returns the completed holes so far.
func (c *Collector) HoleResults() []HoleResult { return c.results }

// ShotDistances returns all recorded shot distances in yards.
func (c *Collector) ShotDistances() []float64 { return c.distances }

// TotalStrokes returns strokes recorded, penalties included.
func (c *Collector) TotalStrokes() int { return c.strokes }

// TotalPenalties returns penalty strokes recorded.
func (c *Collector) TotalPenalties() int { return c.penalties }

// ClubUse returns swing counts per club name.
func (c *Collector) ClubUse() map[string]int { return c.clubUse }
