// Package notifier provides the in-process hub fanning events out to live
// subscriber connections. The hub implements ports.Notifier for the
// application layer and exposes Register/Unregister for the transport layer
// owning the actual connections.
package notifier

import (
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Sender delivers one event over a live connection. Implementations are
// expected to apply their own write deadlines.
type Sender interface {
	Send(event ports.Event) error
}

// subscriberKey identifies the audience of a connection. The same user may
// hold several connections under the same key.
type subscriberKey struct {
	role   kernel.Role
	userID string
}

// Subscription is one registered connection. The value is opaque to
// callers; it exists so the transport can unregister exactly the connection
// it registered.
type Subscription struct {
	key    subscriberKey
	sender Sender
}

// Hub tracks live subscriber connections keyed by (role, user) and pushes
// events to them. Delivery is best-effort: a failed send drops the
// connection from the hub and is never surfaced to the caller.
type Hub struct {
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[subscriberKey]map[*Subscription]struct{}
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:      logger,
		subscribers: make(map[subscriberKey]map[*Subscription]struct{}),
	}
}

// Register adds a connection under the given role and user identity.
// The returned subscription is the handle for Unregister.
func (h *Hub) Register(role kernel.Role, userID string, sender Sender) *Subscription {
	sub := &Subscription{
		key:    subscriberKey{role: role, userID: userID},
		sender: sender,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[sub.key]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subscribers[sub.key] = set
	}
	set[sub] = struct{}{}

	h.logger.Info("subscriber registered",
		"role", role.String(), "user_id", userID)
	return sub
}

// Unregister removes a connection from the hub. Safe to call more than
// once for the same subscription.
func (h *Hub) Unregister(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[sub.key]
	if !ok {
		return
	}
	if _, registered := set[sub]; !registered {
		return
	}

	delete(set, sub)
	if len(set) == 0 {
		delete(h.subscribers, sub.key)
	}

	h.logger.Info("subscriber unregistered",
		"role", sub.key.role.String(), "user_id", sub.key.userID)
}

// BroadcastToRole sends the event to every connection registered under the
// role, regardless of user identity.
func (h *Hub) BroadcastToRole(role kernel.Role, event ports.Event) {
	h.mu.RLock()
	targets := make([]*Subscription, 0)
	for key, set := range h.subscribers {
		if key.role != role {
			continue
		}
		for sub := range set {
			targets = append(targets, sub)
		}
	}
	h.mu.RUnlock()

	h.deliver(targets, event)
}

// NotifyUser sends the event to all connections of the exact (role, user)
// pair. A no-op when the user has no live connections.
func (h *Hub) NotifyUser(role kernel.Role, userID string, event ports.Event) {
	key := subscriberKey{role: role, userID: userID}

	h.mu.RLock()
	targets := make([]*Subscription, 0, len(h.subscribers[key]))
	for sub := range h.subscribers[key] {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	h.deliver(targets, event)
}

// deliver pushes the event to a snapshot of targets. Sends run outside the
// hub lock so a slow connection cannot block registration or other sends.
// A connection whose send fails is treated as dead and unregistered.
func (h *Hub) deliver(targets []*Subscription, event ports.Event) {
	for _, sub := range targets {
		if err := sub.sender.Send(event); err != nil {
			h.logger.Warn("dropping dead subscriber",
				"role", sub.key.role.String(),
				"user_id", sub.key.userID,
				"event", string(event.Kind),
				"error", err)
			h.Unregister(sub)
		}
	}
}
