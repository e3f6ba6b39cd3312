// Package session tracks the generation state of every (session, generator)
// pair and enforces one in-flight request per pair.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/chynybekuuludastan/creator_toolkit/internal/service/generator"
)

// Status is the state of one generator within a session
type Status string

const (
	StatusIdle       Status = "idle"
	StatusGenerating Status = "generating"
	StatusReady      Status = "ready"
)

// Event types published to subscribers
const (
	EventStarted   = "generation_started"
	EventCompleted = "generation_completed"
	EventSkipped   = "generation_skipped"
	EventFailed    = "generation_failed"
)

// ErrInFlight is returned by Begin when the pair is already generating
var ErrInFlight = errors.New("generation already in progress")

// State describes one generator within a session
type State struct {
	Kind       generator.Kind `json:"kind"`
	Status     Status         `json:"status"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DurationMs int64          `json:"duration_ms,omitempty"`
}

// Event is a state change pushed to session subscribers
type Event struct {
	Type      string         `json:"type"`
	Kind      generator.Kind `json:"kind"`
	Status    Status         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Data      interface{}    `json:"data,omitempty"`
}

// Notifier receives session events
type Notifier interface {
	Publish(sessionID string, event Event)
}

type key struct {
	session string
	kind    generator.Kind
}

// Registry holds the state machine Idle -> Generating -> {Ready, Idle} for
// every (session, generator) pair.
type Registry struct {
	mu       sync.Mutex
	states   map[key]*State
	notifier Notifier
	now      func() time.Time
}

// NewRegistry creates a registry. notifier may be nil.
func NewRegistry(notifier Notifier) *Registry {
	return &Registry{
		states:   make(map[key]*State),
		notifier: notifier,
		now:      time.Now,
	}
}

// Begin moves the pair to Generating. It fails with ErrInFlight when the
// pair is already generating.
func (r *Registry) Begin(sessionID string, kind generator.Kind) error {
	r.mu.Lock()
	k := key{sessionID, kind}
	st, ok := r.states[k]
	if ok && st.Status == StatusGenerating {
		r.mu.Unlock()
		return ErrInFlight
	}
	if !ok {
		st = &State{Kind: kind}
		r.states[k] = st
	}
	st.Status = StatusGenerating
	st.UpdatedAt = r.now()
	st.DurationMs = 0
	event := Event{Type: EventStarted, Kind: kind, Status: st.Status, Timestamp: st.UpdatedAt}
	r.mu.Unlock()

	r.publish(sessionID, event)
	return nil
}

// Complete moves a generating pair to Ready and publishes the result data
func (r *Registry) Complete(sessionID string, kind generator.Kind, duration time.Duration, data interface{}) {
	r.finish(sessionID, kind, StatusReady, EventCompleted, duration, data)
}

// Fail moves a generating pair back to Idle
func (r *Registry) Fail(sessionID string, kind generator.Kind, reason string) {
	r.finish(sessionID, kind, StatusIdle, EventFailed, 0, map[string]string{"error": reason})
}

func (r *Registry) finish(sessionID string, kind generator.Kind, status Status, eventType string, duration time.Duration, data interface{}) {
	r.mu.Lock()
	st, ok := r.states[key{sessionID, kind}]
	if !ok || st.Status != StatusGenerating {
		r.mu.Unlock()
		return
	}
	st.Status = status
	st.UpdatedAt = r.now()
	st.DurationMs = duration.Milliseconds()
	event := Event{Type: eventType, Kind: kind, Status: status, Timestamp: st.UpdatedAt, Data: data}
	r.mu.Unlock()

	r.publish(sessionID, event)
}

// Skip reports a request that was dropped before generation started. The
// pair's state is left untouched.
func (r *Registry) Skip(sessionID string, kind generator.Kind) {
	r.publish(sessionID, Event{
		Type:      EventSkipped,
		Kind:      kind,
		Status:    r.Status(sessionID, kind),
		Timestamp: r.now(),
	})
}

// Status returns the current status of the pair; unknown pairs are Idle
func (r *Registry) Status(sessionID string, kind generator.Kind) Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.states[key{sessionID, kind}]; ok {
		return st.Status
	}
	return StatusIdle
}

// Snapshot returns the state of every generator for a session
func (r *Registry) Snapshot(sessionID string) []State {
	r.mu.Lock()
	defer r.mu.Unlock()

	states := make([]State, 0, len(generator.Kinds))
	for _, kind := range generator.Kinds {
		if st, ok := r.states[key{sessionID, kind}]; ok {
			states = append(states, *st)
			continue
		}
		states = append(states, State{Kind: kind, Status: StatusIdle})
	}
	return states
}

// Prune drops settled states not updated within maxAge. Generating states
// are always kept. It returns the number of states removed.
func (r *Registry) Prune(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxAge)
	removed := 0
	for k, st := range r.states {
		if st.Status != StatusGenerating && st.UpdatedAt.Before(cutoff) {
			delete(r.states, k)
			removed++
		}
	}
	return removed
}

func (r *Registry) publish(sessionID string, event Event) {
	if r.notifier != nil {
		r.notifier.Publish(sessionID, event)
	}
}
