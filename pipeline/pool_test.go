package pipeline

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_Submit(t *testing.T) {
	t.Run("runs the job and waits for it", func(t *testing.T) {
		pool := NewWorkerPool(2, time.Second)
		defer pool.Close()

		var ran bool
		err := pool.Submit(context.Background(), func() { ran = true })

		require.NoError(t, err)
		assert.True(t, ran)

		stats := pool.GetMetrics()
		assert.Equal(t, 2, stats.Size)
		assert.Equal(t, int64(1), stats.TotalSubmitted)
		assert.Equal(t, int64(1), stats.TotalCompleted)
		assert.Equal(t, 0, stats.InUse)
	})

	t.Run("panic is reported as an error", func(t *testing.T) {
		pool := NewWorkerPool(1, time.Second)
		defer pool.Close()

		err := pool.Submit(context.Background(), func() { panic("kaboom") })

		assert.ErrorIs(t, err, ErrWorkerPanic)
		assert.Contains(t, err.Error(), "kaboom")
		assert.Equal(t, int64(1), pool.GetMetrics().Panics)

		// the worker survives the panic
		assert.NoError(t, pool.Submit(context.Background(), func() {}))
	})

	t.Run("times out when every worker is busy", func(t *testing.T) {
		pool := NewWorkerPool(1, 20*time.Millisecond)
		defer pool.Close()

		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_ = pool.Submit(context.Background(), func() {
				close(started)
				<-release
			})
		}()
		<-started

		err := pool.Submit(context.Background(), func() {})
		close(release)

		assert.ErrorIs(t, err, ErrPoolExhausted)
		assert.Equal(t, int64(1), pool.GetMetrics().Rejected)
	})

	t.Run("honours context cancellation while waiting", func(t *testing.T) {
		pool := NewWorkerPool(1, time.Minute)
		defer pool.Close()

		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_ = pool.Submit(context.Background(), func() {
				close(started)
				<-release
			})
		}()
		<-started

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := pool.Submit(ctx, func() {})
		close(release)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects work after close", func(t *testing.T) {
		pool := NewWorkerPool(1, time.Second)
		pool.Close()
		pool.Close()

		assert.ErrorIs(t, pool.Submit(context.Background(), func() {}), ErrPoolClosed)
	})

	t.Run("bounds concurrent jobs to the pool size", func(t *testing.T) {
		const size = 3
		pool := NewWorkerPool(size, 5*time.Second)
		defer pool.Close()

		var running, peak atomic.Int64
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := pool.Submit(context.Background(), func() {
					n := running.Add(1)
					for {
						p := peak.Load()
						if n <= p || peak.CompareAndSwap(p, n) {
							break
						}
					}
					time.Sleep(2 * time.Millisecond)
					running.Add(-1)
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.LessOrEqual(t, peak.Load(), int64(size))
		assert.Equal(t, int64(20), pool.GetMetrics().TotalCompleted)
	})
}

func TestNewWorkerPoolDefaults(t *testing.T) {
	pool := NewWorkerPool(0, 0)
	defer pool.Close()

	assert.Equal(t, DefaultPoolSize(), pool.Size())
	assert.Equal(t, AcquireTimeout, pool.acquireTimeout)
}
