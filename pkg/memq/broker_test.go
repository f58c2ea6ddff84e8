package memq_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brokerkit/pkg/memq"
)

func TestParseVariant(t *testing.T) {
	t.Parallel()

	for _, v := range memq.Variants {
		got, err := memq.ParseVariant(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := memq.ParseVariant("stack")
	require.Error(t, err)
	assert.IsType(t, memq.ErrInvalidVariant{}, err)
	assert.Contains(t, err.Error(), "stack")
}

func TestBroker_GetOrCreate(t *testing.T) {
	t.Parallel()

	t.Run("idempotent per triple", func(t *testing.T) {
		t.Parallel()

		broker := memq.NewBroker()
		q1, err := broker.GetOrCreate(memq.VariantFifo, "orders", "billing")
		require.NoError(t, err)
		q2, err := broker.GetOrCreate(memq.VariantFifo, "orders", "billing")
		require.NoError(t, err)
		assert.Same(t, q1, q2)
	})

	t.Run("variants hold independent instances", func(t *testing.T) {
		t.Parallel()

		broker := memq.NewBroker()
		ctx := context.Background()

		for _, v := range memq.Variants {
			_, err := broker.GetOrCreate(v, "orders", "billing")
			require.NoError(t, err)
		}

		// A publish to one variant must not reach the others.
		delivered, err := broker.Publish(memq.VariantIndexed, "orders", []byte("only indexed"))
		require.NoError(t, err)
		assert.Equal(t, 1, delivered)

		q, err := broker.GetOrCreate(memq.VariantIndexed, "orders", "billing")
		require.NoError(t, err)
		payload, err := q.Take(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "only indexed", string(payload))

		for _, v := range []memq.Variant{memq.VariantFifo, memq.VariantRotating} {
			q, err := broker.GetOrCreate(v, "orders", "billing")
			require.NoError(t, err)
			assert.Equal(t, 0, q.Len())
		}
	})

	t.Run("input validation", func(t *testing.T) {
		t.Parallel()

		broker := memq.NewBroker()

		_, err := broker.GetOrCreate("stack", "orders", "billing")
		assert.IsType(t, memq.ErrInvalidVariant{}, err)

		_, err = broker.GetOrCreate(memq.VariantFifo, "", "billing")
		assert.IsType(t, memq.ErrEmptyName{}, err)

		_, err = broker.GetOrCreate(memq.VariantFifo, "orders", "")
		assert.IsType(t, memq.ErrEmptyName{}, err)
	})

	t.Run("concurrent creation yields one instance", func(t *testing.T) {
		t.Parallel()

		broker := memq.NewBroker()

		const goroutines = 16
		instances := make([]memq.Queue, goroutines)
		var wg sync.WaitGroup
		for i := range goroutines {
			wg.Add(1)
			go func() {
				defer wg.Done()
				q, err := broker.GetOrCreate(memq.VariantRotating, "orders", "billing")
				if err == nil {
					instances[i] = q
				}
			}()
		}
		wg.Wait()

		for i := 1; i < goroutines; i++ {
			require.Same(t, instances[0], instances[i])
		}
		assert.Equal(t, 1, broker.QueueCount(memq.VariantRotating, "orders"))
	})
}

func TestBroker_Publish(t *testing.T) {
	t.Parallel()

	t.Run("reaches every existing instance under the topic", func(t *testing.T) {
		t.Parallel()

		broker := memq.NewBroker()
		ctx := context.Background()

		billing, err := broker.GetOrCreate(memq.VariantFifo, "orders", "billing")
		require.NoError(t, err)
		shipping, err := broker.GetOrCreate(memq.VariantFifo, "orders", "shipping")
		require.NoError(t, err)

		delivered, err := broker.Publish(memq.VariantFifo, "orders", []byte("order created"))
		require.NoError(t, err)
		assert.Equal(t, 2, delivered)

		for _, q := range []memq.Queue{billing, shipping} {
			payload, err := q.Take(ctx, 0)
			require.NoError(t, err)
			assert.Equal(t, "order created", string(payload))
		}
	})

	t.Run("publish before any queue exists is dropped", func(t *testing.T) {
		t.Parallel()

		broker := memq.NewBroker()

		delivered, err := broker.Publish(memq.VariantIndexed, "orders", []byte("lost"))
		require.NoError(t, err)
		assert.Equal(t, 0, delivered)

		// An instance created after the publish never sees the message.
		q, err := broker.GetOrCreate(memq.VariantIndexed, "orders", "late")
		require.NoError(t, err)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("topics are isolated", func(t *testing.T) {
		t.Parallel()

		broker := memq.NewBroker()

		q, err := broker.GetOrCreate(memq.VariantFifo, "orders", "billing")
		require.NoError(t, err)

		delivered, err := broker.Publish(memq.VariantFifo, "payments", []byte("elsewhere"))
		require.NoError(t, err)
		assert.Equal(t, 0, delivered)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("input validation", func(t *testing.T) {
		t.Parallel()

		broker := memq.NewBroker()

		_, err := broker.Publish("stack", "orders", nil)
		assert.IsType(t, memq.ErrInvalidVariant{}, err)

		_, err = broker.Publish(memq.VariantFifo, "", nil)
		assert.IsType(t, memq.ErrEmptyName{}, err)
	})

	t.Run("wakes a blocked reader", func(t *testing.T) {
		t.Parallel()

		broker := memq.NewBroker()
		q, err := broker.GetOrCreate(memq.VariantRotating, "orders", "billing")
		require.NoError(t, err)

		got := make(chan []byte, 1)
		started := make(chan struct{})
		go func() {
			close(started)
			payload, err := q.Take(context.Background(), 0)
			if err == nil {
				got <- payload
			}
		}()
		<-started

		_, err = broker.Publish(memq.VariantRotating, "orders", []byte("wake"))
		require.NoError(t, err)

		assert.Equal(t, "wake", string(<-got))
	})
}
