// Package memq implements the in-memory queue engine behind the broker:
// three blocking, concurrency-safe queue variants and the lazily-populated
// topic/queue registry that holds them.
//
// The three variants share one Queue interface but differ in how elements
// are addressed on removal:
//
//   - Fifo: strict first-in-first-out, head removal only.
//   - Indexed: slice-backed, removal at an arbitrary offset with a linear
//     shift of later elements. Degrades on very large backlogs.
//   - Rotating: ring-buffer deque with the same offset-removal contract,
//     implemented as rotate, pop head, rotate back. Better amortized cost
//     for offset removal than Indexed; the two are externally
//     indistinguishable for any operation trace.
//
// Basic usage:
//
//	broker := memq.NewBroker()
//
//	q, err := broker.GetOrCreate(memq.VariantIndexed, "orders", "billing")
//	if err != nil {
//		// Handle error
//	}
//
//	// Readers block until an element exists at the requested offset.
//	go func() {
//		payload, err := q.Take(ctx, 0)
//		// ...
//	}()
//
//	// Publish appends to every instance that already exists for the topic.
//	broker.Publish(memq.VariantIndexed, "orders", []byte("order created"))
//
// Offsets are evaluated against the queue's current contents at the moment
// of removal, never as a stable cursor: repeated takes with the same offset
// observe different logical messages as elements are removed around them.
//
// Topics and queue instances are created on first reference and never
// destroyed; the registry grows for the life of the process. Capacity
// planning is the caller's concern, not the engine's.
package memq
