package memq

import (
	"context"
	"sync"
)

// Indexed is a slice-backed queue supporting blocking removal at an
// arbitrary offset. Removal shifts every later element one position toward
// the head, so Take costs O(n) in the backlog size; with backlogs in the
// hundreds of thousands this variant degrades and Rotating should be
// preferred.
type Indexed struct {
	mu    sync.Mutex
	items [][]byte
	sig   *Signal
}

// NewIndexed creates an empty Indexed queue.
func NewIndexed() *Indexed {
	return &Indexed{sig: NewSignal()}
}

// Append adds a payload at the tail and wakes blocked takers.
func (q *Indexed) Append(payload []byte) {
	q.mu.Lock()
	q.items = append(q.items, payload)
	q.mu.Unlock()
	q.sig.Notify()
}

// Take blocks until the queue holds at least offset+1 elements, then removes
// and returns the element at that position. The offset is re-evaluated
// against current contents on every wakeup: it addresses "whatever sits at
// this position now", not a fixed sequence number.
func (q *Indexed) Take(ctx context.Context, offset int) ([]byte, error) {
	if offset < 0 {
		return nil, ErrNegativeOffset{Offset: offset}
	}
	for {
		q.mu.Lock()
		if len(q.items) > offset {
			payload := q.items[offset]
			copy(q.items[offset:], q.items[offset+1:])
			q.items[len(q.items)-1] = nil
			q.items = q.items[:len(q.items)-1]
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
func (q *Indexed) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
