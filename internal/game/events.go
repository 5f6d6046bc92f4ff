package game

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventCatch    EventKind = iota // Good item caught, score increased
	EventHit                       // Bad item hit, life lost
	EventGameOver                  // Last life lost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCatch:
		return "catch"
	case EventHit:
		return "hit"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is emitted by Session.Tick for the platform layer.
type Event struct {
	Kind  EventKind
	Score int // Score at the end of the tick
	Lives int // Lives at the end of the tick
}

// StepResult is returned by Session.Tick after each simulation tick.
type StepResult struct {
	Phase  Phase
	State  RunState
	Events []Event
}
