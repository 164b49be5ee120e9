package ringline

// EventKind tells the caller what a state transition produced.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventStarted
	EventSettled
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventStarted:
		return "started"
	case EventSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Event is returned by the node and chain transitions. Index and Value are
// only meaningful for EventSettled (and Index for EventStarted).
type Event struct {
	Kind  EventKind
	Index int
	Value float32
}

// Completed reports a sweep that settled on the line end (scale 1).
func (e Event) Completed() bool { return e.Kind == EventSettled && e.Value == 1 }

// Reset reports a sweep that settled back on the ring end (scale 0).
func (e Event) Reset() bool { return e.Kind == EventSettled && e.Value == 0 }
