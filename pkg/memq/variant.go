package memq

// Variant selects one of the three queue implementations.
type Variant string

const (
	// VariantFifo is the strict first-in-first-out queue; offsets are ignored.
	VariantFifo Variant = "fifo"
	// VariantIndexed is the slice-backed queue with offset-addressed removal.
	VariantIndexed Variant = "indexed"
	// VariantRotating is the ring-buffer deque with offset-addressed removal.
	VariantRotating Variant = "rotating"
)

// Variants lists all valid variant tags in a stable order.
var Variants = []Variant{VariantFifo, VariantIndexed, VariantRotating}

// ParseVariant validates a variant tag.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantFifo, VariantIndexed, VariantRotating:
		return v, nil
	default:
		return "", ErrInvalidVariant{Value: s}
	}
}

// Valid reports whether the variant names one of the three implementations.
func (v Variant) Valid() bool {
	_, err := ParseVariant(string(v))
	return err == nil
}
