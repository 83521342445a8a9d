// Package physics advances the ball through flight, bounce, roll and
// stabilization against terrain queries, wind and club launch impulses.
package physics

// EventType identifies discrete gameplay events raised by the ball.
type EventType uint8

const (
	EventBallHit EventType = iota
	EventWaterPenalty
	EventBunkerEnter
	EventBunkerExit
	EventHoleCompleted
	EventBallStopped
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventBallHit:
		return "ball_hit"
	case EventWaterPenalty:
		return "water_penalty"
	case EventBunkerEnter:
		return "bunker_enter"
	case EventBunkerExit:
		return "bunker_exit"
	case EventHoleCompleted:
		return "hole_completed"
	case EventBallStopped:
		return "ball_stopped"
	}
	return "unknown"
}

// Event is a single discrete gameplay event. Events are produced by
// Ball.Hit and Ball.Update and fanned out by the orchestrating scene.
type Event struct {
	Type EventType
	X, Y float64

	// Optional fields depending on event type
	Club      Club    // for ball_hit
	Yards     float64 // shot distance for ball_stopped / hole_completed
	HoleInOne bool    // for hole_completed
}

// newBallHitEvent records a launch.
func newBallHitEvent(x, y float64, club Club) Event {
	return Event{Type: EventBallHit, X: x, Y: y, Club: club}
}

// newWaterPenaltyEvent records a water entry; fired once per splash.
func newWaterPenaltyEvent(x, y float64) Event {
	return Event{Type: EventWaterPenalty, X: x, Y: y}
}

// newBunkerEvent records a sand entry or exit.
func newBunkerEvent(x, y float64, entered bool) Event {
	t := EventBunkerExit
	if entered {
		t = EventBunkerEnter
	}
	return Event{Type: t, X: x, Y: y}
}

// newHoleCompletedEvent records the ball dropping; fired once per hole.
func newHoleCompletedEvent(x, y, yards float64, holeInOne bool) Event {
	return Event{Type: EventHoleCompleted, X: x, Y: y, Yards: yards, HoleInOne: holeInOne}
}

// newBallStoppedEvent records stabilization with the final shot distance.
func newBallStoppedEvent(x, y, yards float64) Event {
	return Event{Type: EventBallStopped, X: x, Y: y, Yards: yards}
}
