package memq

import "context"

// Queue is the contract shared by the three variants.
// Implementations must be safe for concurrent use.
type Queue interface {
	// Append adds a payload at the tail and wakes blocked takers.
	// It never blocks and never fails.
	Append(payload []byte)

	// Take removes and returns one payload. It blocks until the queue holds
	// at least offset+1 elements, then removes the element currently at that
	// zero-based position. The Fifo variant ignores the offset and always
	// removes the head. Take returns ctx.Err() if the context is cancelled
	// while waiting, leaving the queue unchanged.
	Take(ctx context.Context, offset int) ([]byte, error)

	// Len returns the number of payloads currently buffered.
	Len() int
}

// newQueue constructs an empty queue of the given variant.
func newQueue(v Variant) Queue {
	switch v {
	case VariantFifo:
		return NewFifo()
	case VariantIndexed:
		return NewIndexed()
	default:
		return NewRotating()
	}
}
