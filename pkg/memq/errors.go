package memq

import "fmt"

// ErrInvalidVariant is returned when a variant tag does not name one of the
// three queue implementations.
type ErrInvalidVariant struct {
	Value string
}

func (e ErrInvalidVariant) Error() string {
	return fmt.Sprintf("memq: invalid queue variant %q", e.Value)
}

// ErrNegativeOffset is returned when a take is requested at an offset below zero.
type ErrNegativeOffset struct {
	Offset int
}

func (e ErrNegativeOffset) Error() string {
	return fmt.Sprintf("memq: offset must be non-negative, got %d", e.Offset)
}

// ErrEmptyName is returned when a topic or queue name is empty.
type ErrEmptyName struct {
	Kind string // "topic" or "queue"
}

func (e ErrEmptyName) Error() string {
	return fmt.Sprintf("memq: %s name must not be empty", e.Kind)
}
