package memq

import (
	"context"
	"sync"
)

// Rotating is a deque-backed queue with the same offset-removal contract as
// Indexed but different mechanics: Take rotates the deque so the addressed
// element becomes the head, pops it, then rotates back by the same amount to
// restore the relative order of the remainder. Each rotation step is a
// constant-time head/tail move, so a take at offset n costs O(n) moves
// instead of Indexed's O(len) shift, which keeps deep backlogs cheap as long
// as offsets stay small.
type Rotating struct {
	mu  sync.Mutex
	seq ring
	sig *Signal
}

// NewRotating creates an empty Rotating queue.
func NewRotating() *Rotating {
	return &Rotating{sig: NewSignal()}
}

// Append adds a payload at the tail and wakes blocked takers.
func (q *Rotating) Append(payload []byte) {
	q.mu.Lock()
	q.seq.pushBack(payload)
	q.mu.Unlock()
	q.sig.Notify()
}

// Take blocks until the deque holds at least offset+1 elements, then removes
// and returns the element at that position, leaving every other element in
// its original relative order. Observable behavior is identical to
// Indexed.Take for any operation trace.
func (q *Rotating) Take(ctx context.Context, offset int) ([]byte, error) {
	if offset < 0 {
		return nil, ErrNegativeOffset{Offset: offset}
	}
	for {
		q.mu.Lock()
		if q.seq.len() > offset {
			if offset > 0 {
				q.seq.rotate(-offset)
			}
			payload := q.seq.popFront()
			if offset > 0 {
				q.seq.rotate(offset)
			}
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
func (q *Rotating) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.seq.len()
}

// ring is a growable circular buffer with constant-time operations at both
// ends. Not safe for concurrent use; Rotating serializes access.
type ring struct {
	buf  [][]byte
	head int
	n    int
}

func (r *ring) len() int { return r.n }

// grow doubles capacity when the buffer is full, re-packing elements from
// the head so the new layout starts at index zero.
func (r *ring) grow() {
	if r.n < len(r.buf) {
		return
	}
	buf := make([][]byte, max(len(r.buf)*2, 8))
	for i := range r.n {
		buf[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	r.buf = buf
	r.head = 0
}

func (r *ring) pushBack(p []byte) {
	r.grow()
	r.buf[(r.head+r.n)%len(r.buf)] = p
	r.n++
}

func (r *ring) pushFront(p []byte) {
	r.grow()
	r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.head] = p
	r.n++
}

func (r *ring) popFront() []byte {
	p := r.buf[r.head]
	r.buf[r.head] = nil
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	return p
}

func (r *ring) popBack() []byte {
	i := (r.head + r.n - 1) % len(r.buf)
	p := r.buf[i]
	r.buf[i] = nil
	r.n--
	return p
}

// rotate shifts the sequence in place: positive k moves the tail element to
// the front k times, negative k moves the head element to the back k times.
func (r *ring) rotate(k int) {
	if r.n < 2 {
		return
	}
	for ; k > 0; k-- {
		r.pushFront(r.popBack())
	}
	for ; k < 0; k++ {
		r.pushBack(r.popFront())
	}
}
