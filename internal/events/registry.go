package events

import (
	"context"
	"log"
	"sync"
)

// Sink receives marshalled events. *websocket.Conn satisfies it.
type Sink interface {
	WriteJSON(v interface{}) error
}

// Subscription is the handle returned by Subscribe, used to
// unsubscribe the same sink later. writeMu serializes writes to the
// sink: websocket connections do not tolerate concurrent writers, and
// two publishes to the same session may otherwise overlap on it.
type Subscription struct {
	sessionID string
	sink      Sink
	writeMu   sync.Mutex
}

// Registry is the process-lifetime map of session ID to live
// subscribers. It is not durable: subscriptions are lost on restart
// and reconnecting clients do not replay missed events.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]map[*Subscription]struct{}
}

// NewRegistry creates an empty subscriber registry
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe adds a sink to a session's subscriber set
func (r *Registry) Subscribe(sessionID string, sink Sink) *Subscription {
	sub := &Subscription{
		sessionID: sessionID,
		sink:      sink,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	subs, ok := r.sessions[sessionID]
	if !ok {
		subs = make(map[*Subscription]struct{})
		r.sessions[sessionID] = subs
	}
	subs[sub] = struct{}{}

	return sub
}

// Unsubscribe removes a subscription. When the last subscriber of a
// session leaves, the session's entry is removed entirely so the
// registry does not accumulate empty sets.
func (r *Registry) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	subs, ok := r.sessions[sub.sessionID]
	if !ok {
		return
	}

	delete(subs, sub)
	if len(subs) == 0 {
		delete(r.sessions, sub.sessionID)
	}
}

// Count returns the number of live subscribers for a session
func (r *Registry) Count(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions[sessionID])
}

// Publish broadcasts an event to every subscriber of a session. Write
// errors are logged and swallowed; a broken subscriber never fails the
// operation that triggered the event.
func (r *Registry) Publish(_ context.Context, sessionID string, event *Event) {
	if event == nil {
		return
	}

	r.mu.Lock()
	subs := make([]*Subscription, 0, len(r.sessions[sessionID]))
	for sub := range r.sessions[sessionID] {
		subs = append(subs, sub)
	}
	event.Participants = len(subs)
	r.mu.Unlock()

	for _, sub := range subs {
		sub.writeMu.Lock()
		err := sub.sink.WriteJSON(event)
		sub.writeMu.Unlock()
		if err != nil {
			log.Printf("events: dropping write to subscriber of session %s: %v", sessionID, err)
		}
	}
}
