package recorder

import "github.com/ayoisaiah/mmo/internal/models"

// EventKind identifies the transition that produced an Event.
type EventKind string

const (
	EventStarted     EventKind = "started"
	EventEnded       EventKind = "ended"
	EventPhase       EventKind = "phase"
	EventEdgeStarted EventKind = "edge_started"
	EventEdgeEnded   EventKind = "edge_ended"
	EventArousal     EventKind = "arousal"
)

// Event carries a snapshot of the session taken right after a transition.
type Event struct {
	Session *models.Session
	Kind    EventKind
}

// Listener receives recorder events. Listeners are called synchronously
// after the recorder lock has been released.
type Listener func(Event)

// Subscribe registers fn for every subsequent event and returns a function
// that removes it.
func (r *Recorder) Subscribe(fn Listener) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSub
	r.nextSub++
	r.listeners[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		delete(r.listeners, id)
	}
}

func (r *Recorder) emit(ev Event) {
	r.mu.Lock()

	listeners := make([]Listener, 0, len(r.listeners))
	for i := 0; i < r.nextSub; i++ {
		if fn, ok := r.listeners[i]; ok {
			listeners = append(listeners, fn)
		}
	}

	r.mu.Unlock()

	for _, fn := range listeners {
		fn(ev)
	}
}
