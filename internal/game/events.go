package game

type EventType int

const (
	EventPaddleHit EventType = iota
	EventWallBounce
	EventPoint
	EventBallReset
	EventMatchWon
	EventReplay
)

func (t EventType) String() string {
	switch t {
	case EventPaddleHit:
		return "paddle-hit"
	case EventWallBounce:
		return "wall-bounce"
	case EventPoint:
		return "point"
	case EventBallReset:
		return "ball-reset"
	case EventMatchWon:
		return "match-won"
	case EventReplay:
		return "replay"
	}
	return "unknown"
}

type Event struct {
	Type   EventType
	Player Player // scorer, winner or paddle owner
	X, Y   float64
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventPaddleHit; t <= EventReplay; t++ {
		eb.Subscribe(t, fn)
	}
}

// Emit is safe on a nil bus.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
