package game

// EventType identifies a simulation event.
type EventType int

const (
	EventPaddleHit EventType = iota
	EventWallBounce
	EventScore
)

func (t EventType) String() string {
	switch t {
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventScore:
		return "score"
	default:
		return "unknown"
	}
}

// Event is emitted from Update when something audible happens.
type Event struct {
	Type   EventType
	Paddle int // Paddle that was hit or that scored
	Score  int // New score of Paddle, for EventScore
}
