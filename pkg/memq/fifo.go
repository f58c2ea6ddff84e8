package memq

import (
	"context"
	"sync"
)

// Fifo is an unbounded strict first-in-first-out queue with a blocking take.
// It has no offset addressing: Take always removes the head.
type Fifo struct {
	mu    sync.Mutex
	items [][]byte
	sig   *Signal
}

// NewFifo creates an empty Fifo queue.
func NewFifo() *Fifo {
	return &Fifo{sig: NewSignal()}
}

// Append adds a payload at the tail and wakes blocked takers.
func (q *Fifo) Append(payload []byte) {
	q.mu.Lock()
	q.items = append(q.items, payload)
	q.mu.Unlock()
	q.sig.Notify()
}

// Take removes and returns the head, blocking while the queue is empty.
// The offset argument is ignored; the head is the only addressable element.
func (q *Fifo) Take(ctx context.Context, _ int) ([]byte, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			payload := q.items[0]
			q.items[0] = nil
			q.items = q.items[1:]
			q.mu.Unlock()
			return payload, nil
		}
		gate := q.sig.Gate()
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-gate:
		}
	}
}

// Len returns the number of buffered payloads.
func (q *Fifo) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
