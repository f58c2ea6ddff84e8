package fanout

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/brokerkit/pkg/memq"
)

// Hub tracks the subscriber sets for every topic with live listeners.
// All methods are safe for concurrent use.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[uuid.UUID]*Subscriber
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[uuid.UUID]*Subscriber)}
}

// Subscribe registers a fresh mailbox under the topic and returns its
// handle. The caller owns the handle for the lifetime of its session and
// must Close it when the session ends.
func (h *Hub) Subscribe(topic string) *Subscriber {
	sub := &Subscriber{
		id:      uuid.New(),
		topic:   topic,
		mailbox: memq.NewFifo(),
		hub:     h,
	}

	h.mu.Lock()
	set, ok := h.topics[topic]
	if !ok {
		set = make(map[uuid.UUID]*Subscriber)
		h.topics[topic] = set
	}
	set[sub.id] = sub
	h.mu.Unlock()

	return sub
}

// Publish copies the payload into every mailbox currently registered for
// the topic and reports how many mailboxes received it. Mailboxes are
// unbounded, so delivery never blocks and never drops. Publishing to a
// topic with no subscribers is a no-op.
func (h *Hub) Publish(topic string, payload []byte) int {
	h.mu.RLock()
	subs := make([]*Subscriber, 0, len(h.topics[topic]))
	for _, sub := range h.topics[topic] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		sub.mailbox.Append(payload)
	}
	return len(subs)
}

// SubscriberCount returns the number of live subscribers on the topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// unsubscribe removes the mailbox from its topic's set. Empty sets are
// pruned; the topic reappears on the next Subscribe.
func (h *Hub) unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.topics[sub.topic]
	if set == nil {
		return
	}
	delete(set, sub.id)
	if len(set) == 0 {
		delete(h.topics, sub.topic)
	}
}

// Subscriber is one live listener's handle: a private unbounded FIFO of
// payloads published to its topic while it remains registered.
type Subscriber struct {
	id      uuid.UUID
	topic   string
	mailbox *memq.Fifo
	hub     *Hub
	once    sync.Once
}

// ID returns the subscriber's unique identifier.
func (s *Subscriber) ID() string { return s.id.String() }

// Topic returns the topic this subscription is registered under.
func (s *Subscriber) Topic() string { return s.topic }

// Next blocks until the next payload arrives in the mailbox and returns it.
// It returns ctx.Err() if the context is cancelled while waiting.
func (s *Subscriber) Next(ctx context.Context) ([]byte, error) {
	return s.mailbox.Take(ctx, 0)
}

// Pending returns the number of undelivered payloads in the mailbox.
func (s *Subscriber) Pending() int { return s.mailbox.Len() }

// Close removes the mailbox from the topic's subscriber set. It is
// idempotent and safe to call from any goroutine; payloads published after
// Close are not delivered.
func (s *Subscriber) Close() error {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
	})
	return nil
}
