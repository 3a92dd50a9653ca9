// Package notify broadcasts authentication-state transitions to every
// registered observer. It replaces the ambient event side-channel the
// sign-in helpers used to dispatch into: callers now feed sign-in/out
// results into an explicitly injected Notifier instead.
package notify

import (
	"log/slog"
	"sync"

	"store-rating-service/app/domain"
)

// Listener receives authentication-state transitions
type Listener func(change domain.AuthChange)

// Notifier delivers transitions synchronously: every listener
// registered at emit time observes the event before Emit returns.
// Delivery does not survive process restarts.
type Notifier struct {
	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int
	logger    *slog.Logger
}

// New creates a notifier
func New(logger *slog.Logger) *Notifier {
	return &Notifier{
		listeners: make(map[int]Listener),
		logger:    logger.With("component", "notifier"),
	}
}

// Subscribe registers a listener and returns its unsubscribe function
func (n *Notifier) Subscribe(listener Listener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.listeners[id] = listener

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// EmitSignedIn broadcasts a signed-in transition for the identity
func (n *Notifier) EmitSignedIn(identity *domain.Identity) {
	if identity == nil {
		n.logger.Warn("signed-in emit without identity dropped")
		return
	}
	n.emit(domain.SignedIn(identity))
}

// EmitSignedOut broadcasts a signed-out transition
func (n *Notifier) EmitSignedOut() {
	n.emit(domain.SignedOut())
}

func (n *Notifier) emit(change domain.AuthChange) {
	n.mu.Lock()
	snapshot := make([]Listener, 0, len(n.listeners))
	for _, l := range n.listeners {
		snapshot = append(snapshot, l)
	}
	n.mu.Unlock()

	for _, listener := range snapshot {
		listener(change)
	}

	n.logger.Debug("auth change delivered",
		"event", string(change.Event),
		"listeners", len(snapshot))
}
