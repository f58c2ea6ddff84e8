package memq

import "sync"

// Signal is the wake primitive shared by all queue variants. It is
// level-triggered and broadcast-capable: every waiter blocked on the gate at
// the moment of Notify is woken, and each must re-check its own condition,
// because a wakeup only means "state may have changed", not "your element is
// ready".
//
// Waiters snapshot the gate channel while holding the queue lock, release the
// lock, then block on the snapshot. Notify closes the current gate and
// installs a fresh one, so any notification issued after a snapshot was taken
// is guaranteed to close that snapshot. This ordering is what rules out lost
// wakeups without ever holding a lock across the block.
type Signal struct {
	mu   sync.Mutex
	gate chan struct{}
}

// NewSignal returns a Signal with an open gate and no pending notification.
func NewSignal() *Signal {
	return &Signal{gate: make(chan struct{})}
}

// Gate returns the channel the next Notify will close. The caller must take
// the snapshot before releasing whatever lock guards its condition.
func (s *Signal) Gate() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate
}

// Notify wakes every waiter currently blocked on a Gate snapshot.
// It never blocks.
func (s *Signal) Notify() {
	s.mu.Lock()
	close(s.gate)
	s.gate = make(chan struct{})
	s.mu.Unlock()
}
