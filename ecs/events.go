package ecs

// EventKind identifies the state transitions other systems (audio, mostly)
// care about.
type EventKind string

const (
	EventJump    EventKind = "jump"
	EventLand    EventKind = "land"
	EventDespawn EventKind = "despawn"
	EventSpawn   EventKind = "spawn"
)

// Event is a fire-and-forget notification. Events live for one tick: pushed
// by a system, visible to every later system, flushed when Update returns.
type Event struct {
	Kind   EventKind
	Entity Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
