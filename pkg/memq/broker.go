package memq

import "sync"

// Broker owns the three per-variant registries: lazily-populated two-level
// maps of topic name to queue name to queue instance. It replaces what would
// otherwise be process-wide globals so callers hold one explicit state
// object, and each variant's registry carries its own lock so traffic on one
// variant never contends with another.
type Broker struct {
	stores map[Variant]*store
}

// store is the registry for a single variant. The RWMutex guards only the
// two-level map; payload operations on an instance are serialized by the
// instance's own lock.
type store struct {
	mu      sync.RWMutex
	variant Variant
	topics  map[string]map[string]Queue
}

// NewBroker creates a Broker with empty registries for all three variants.
func NewBroker() *Broker {
	stores := make(map[Variant]*store, len(Variants))
	for _, v := range Variants {
		stores[v] = &store{
			variant: v,
			topics:  make(map[string]map[string]Queue),
		}
	}
	return &Broker{stores: stores}
}

// GetOrCreate returns the queue instance for (variant, topic, queueName),
// creating and registering a fresh empty one on first reference. Creation is
// idempotent: concurrent calls for the same triple all receive the same
// instance. Instances are never removed.
func (b *Broker) GetOrCreate(v Variant, topic, queueName string) (Queue, error) {
	if !v.Valid() {
		return nil, ErrInvalidVariant{Value: string(v)}
	}
	if topic == "" {
		return nil, ErrEmptyName{Kind: "topic"}
	}
	if queueName == "" {
		return nil, ErrEmptyName{Kind: "queue"}
	}

	s := b.stores[v]

	s.mu.RLock()
	if q, ok := s.topics[topic][queueName]; ok {
		s.mu.RUnlock()
		return q, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	byName, ok := s.topics[topic]
	if !ok {
		byName = make(map[string]Queue)
		s.topics[topic] = byName
	}
	if q, ok := byName[queueName]; ok {
		return q, nil
	}
	q := newQueue(s.variant)
	byName[queueName] = q
	return q, nil
}

// Publish appends the payload to every queue instance currently registered
// under the topic in the variant's registry and reports how many instances
// received it. A topic with no instances yet drops the payload for that
// variant: unread topics are not buffered, and an instance created after a
// publish never sees that message. Publish never blocks.
func (b *Broker) Publish(v Variant, topic string, payload []byte) (int, error) {
	if !v.Valid() {
		return 0, ErrInvalidVariant{Value: string(v)}
	}
	if topic == "" {
		return 0, ErrEmptyName{Kind: "topic"}
	}

	s := b.stores[v]

	// Snapshot under the read lock; Append is non-blocking but there is no
	// reason to hold the registry lock across per-instance locks.
	s.mu.RLock()
	instances := make([]Queue, 0, len(s.topics[topic]))
	for _, q := range s.topics[topic] {
		instances = append(instances, q)
	}
	s.mu.RUnlock()

	for _, q := range instances {
		q.Append(payload)
	}
	return len(instances), nil
}

// QueueCount returns how many queue instances exist under the topic for the
// given variant. Unknown variants and topics count as zero.
func (b *Broker) QueueCount(v Variant, topic string) int {
	s, ok := b.stores[v]
	if !ok {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.topics[topic])
}
