// Package recorder builds a single training session in memory while it is
// being run
package recorder

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/mmo/internal/apperr"
	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/internal/timeutil"
)

var (
	ErrSessionActive = &apperr.Error{
		Message: "a session is already in progress: %s",
	}

	ErrNoSession = &apperr.Error{
		Message: "no session in progress",
	}

	ErrInvalidOutcome = &apperr.Error{
		Message: "invalid edge outcome: %q",
	}

	ErrInvalidPhase = &apperr.Error{
		Message: "invalid phase type: %q",
	}
)

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// WithEdgeIDs replaces the generator for edge event identifiers.
func WithEdgeIDs(next func() string) Option {
	return func(r *Recorder) {
		r.edgeID = next
	}
}

// Recorder is a two-state machine: idle, or active with exactly one session
// being recorded. All methods are safe for concurrent use.
type Recorder struct {
	now       func() time.Time
	edgeID    func() string
	current   *models.Session
	listeners map[int]Listener
	lastID    string
	mu        sync.Mutex
	idSeq     int
	nextSub   int
}

// New returns an idle recorder.
func New(opts ...Option) *Recorder {
	r := &Recorder{
		now:       time.Now,
		edgeID:    uuid.NewString,
		listeners: make(map[int]Listener),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// sessionID derives an identifier from the start time. A numeric suffix is
// added when a previous session was started within the same second.
func (r *Recorder) sessionID(start time.Time) string {
	base := start.Local().Format(timeutil.SessionIDLayout)

	if base == r.lastID {
		r.idSeq++
		return fmt.Sprintf("%s-%d", base, r.idSeq+1)
	}

	r.lastID = base
	r.idSeq = 0

	return base
}

// Active reports whether a session is being recorded.
func (r *Recorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current != nil
}

// Current returns a copy of the session being recorded, or nil when idle.
func (r *Recorder) Current() *models.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil
	}

	return r.current.Clone()
}

// Start begins a new session at the given level with an initial stroke
// phase. It fails if a session is already in progress.
func (r *Recorder) Start(levelID int) (*models.Session, error) {
	r.mu.Lock()

	if r.current != nil {
		id := r.current.ID
		r.mu.Unlock()

		return nil, ErrSessionActive.Fmt(id)
	}

	now := r.now()

	r.current = &models.Session{
		ID:              r.sessionID(now),
		StartTime:       now,
		Level:           levelID,
		ArousalReadings: []models.ArousalReading{},
		Phases: []models.Phase{
			{Type: models.Stroke, StartTime: now},
		},
		EdgeEvents: []models.EdgeEvent{},
	}

	snapshot := r.current.Clone()
	r.mu.Unlock()

	r.emit(Event{Kind: EventStarted, Session: snapshot})

	return snapshot.Clone(), nil
}

// End finalises the session in progress and returns it. The last phase is
// closed and the live state is cleared. Persisting the returned session is
// the caller's responsibility.
func (r *Recorder) End() (*models.Session, error) {
	r.mu.Lock()

	sess := r.current
	if sess == nil {
		r.mu.Unlock()
		return nil, ErrNoSession
	}

	now := r.now()
	duration := timeutil.SecondsBetween(sess.StartTime, now)

	sess.EndTime = &now
	sess.DurationSeconds = &duration

	if n := len(sess.Phases); n > 0 {
		last := &sess.Phases[n-1]
		last.DurationSeconds = timeutil.SecondsBetween(last.StartTime, now)
	}

	r.current = nil
	r.mu.Unlock()

	r.emit(Event{Kind: EventEnded, Session: sess.Clone()})

	return sess, nil
}

// Discard drops the session in progress without finalising it.
func (r *Recorder) Discard() {
	r.mu.Lock()
	r.current = nil
	r.mu.Unlock()
}

// update runs fn against the live session under the lock and notifies
// listeners when fn reports a change.
func (r *Recorder) update(
	kind EventKind,
	fn func(sess *models.Session, now time.Time) bool,
) error {
	r.mu.Lock()

	if r.current == nil {
		r.mu.Unlock()
		return ErrNoSession
	}

	changed := fn(r.current, r.now())

	var snapshot *models.Session
	if changed {
		snapshot = r.current.Clone()
	}

	r.mu.Unlock()

	if changed {
		r.emit(Event{Kind: kind, Session: snapshot})
	}

	return nil
}

// RecordArousal appends a timestamped arousal reading.
func (r *Recorder) RecordArousal(value float64) error {
	return r.update(
		EventArousal,
		func(sess *models.Session, now time.Time) bool {
			sess.ArousalReadings = append(
				sess.ArousalReadings,
				models.ArousalReading{Timestamp: now, Value: value},
			)

			return true
		},
	)
}

// StartEdge opens a new edge event and returns its identifier. Previously
// opened edges are left untouched; callers must close an edge before
// starting the next one.
func (r *Recorder) StartEdge() (string, error) {
	var id string

	err := r.update(
		EventEdgeStarted,
		func(sess *models.Session, now time.Time) bool {
			id = r.edgeID()
			sess.EdgeEvents = append(sess.EdgeEvents, models.EdgeEvent{
				ID:        id,
				StartTime: now,
			})

			return true
		},
	)
	if err != nil {
		return "", err
	}

	return id, nil
}

// EndEdge closes the open edge event with the given identifier. Unknown or
// already closed edges are ignored.
func (r *Recorder) EndEdge(edgeID string, outcome models.Outcome) error {
	if !outcome.Valid() {
		return ErrInvalidOutcome.Fmt(outcome)
	}

	return r.update(
		EventEdgeEnded,
		func(sess *models.Session, now time.Time) bool {
			for i := range sess.EdgeEvents {
				e := &sess.EdgeEvents[i]
				if e.ID != edgeID || !e.Open() {
					continue
				}

				end := now
				duration := timeutil.SecondsBetween(e.StartTime, now)
				e.EndTime = &end
				e.Outcome = outcome
				e.DurationSeconds = &duration

				return true
			}

			return false
		},
	)
}

// AddPhase closes the current phase and starts a new one of the given type.
func (r *Recorder) AddPhase(phase models.PhaseType) error {
	if !phase.Valid() {
		return ErrInvalidPhase.Fmt(phase)
	}

	return r.update(
		EventPhase,
		func(sess *models.Session, now time.Time) bool {
			if n := len(sess.Phases); n > 0 {
				last := &sess.Phases[n-1]
				last.DurationSeconds = timeutil.SecondsBetween(last.StartTime, now)
			}

			sess.Phases = append(sess.Phases, models.Phase{
				Type:      phase,
				StartTime: now,
			})

			return true
		},
	)
}

// CurrentEdge returns a copy of the open edge event, if any.
func (r *Recorder) CurrentEdge() (*models.EdgeEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil, false
	}

	for i := range r.current.EdgeEvents {
		if r.current.EdgeEvents[i].Open() {
			e := r.current.EdgeEvents[i]
			return &e, true
		}
	}

	return nil, false
}
