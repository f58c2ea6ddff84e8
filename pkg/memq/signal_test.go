package memq_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/brokerkit/pkg/memq"
)

func TestSignal(t *testing.T) {
	t.Parallel()

	t.Run("notify closes the snapshotted gate", func(t *testing.T) {
		t.Parallel()

		sig := memq.NewSignal()
		gate := sig.Gate()

		select {
		case <-gate:
			t.Fatal("gate closed before notify")
		default:
		}

		sig.Notify()

		select {
		case <-gate:
		case <-time.After(time.Second):
			t.Fatal("gate not closed by notify")
		}
	})

	t.Run("notify wakes every current waiter", func(t *testing.T) {
		t.Parallel()

		sig := memq.NewSignal()

		const waiters = 8
		var wg sync.WaitGroup
		woken := make(chan struct{}, waiters)
		ready := make(chan struct{}, waiters)

		for range waiters {
			wg.Add(1)
			go func() {
				defer wg.Done()
				gate := sig.Gate()
				ready <- struct{}{}
				<-gate
				woken <- struct{}{}
			}()
		}

		for range waiters {
			<-ready
		}
		sig.Notify()
		wg.Wait()

		assert.Len(t, woken, waiters)
	})

	t.Run("gate taken after notify waits for the next one", func(t *testing.T) {
		t.Parallel()

		sig := memq.NewSignal()
		sig.Notify()

		gate := sig.Gate()
		select {
		case <-gate:
			t.Fatal("fresh gate must not carry the previous notification")
		default:
		}

		sig.Notify()
		select {
		case <-gate:
		case <-time.After(time.Second):
			t.Fatal("gate not closed by second notify")
		}
	})
}
