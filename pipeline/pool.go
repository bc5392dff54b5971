package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"
)

const (
	// AcquireTimeout bounds how long a request waits for an idle worker.
	AcquireTimeout = 5 * time.Second
)

var (
	ErrPoolClosed    = errors.New("worker pool is closed")
	ErrPoolExhausted = errors.New("timeout waiting for available worker")
	ErrWorkerPanic   = errors.New("worker panicked")
)

// DefaultPoolSize is one worker per CPU.
func DefaultPoolSize() int {
	return runtime.NumCPU()
}

type job struct {
	fn   func()
	done chan error
}

// WorkerPool runs CPU-bound work (decode, tensor construction, inference)
// on a fixed set of goroutines so the number of concurrently busy CPUs stays
// bounded regardless of how many requests are in flight.
type WorkerPool struct {
	jobs           chan job
	size           int
	acquireTimeout time.Duration

	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	metrics *PoolMetrics
}

type PoolMetrics struct {
	mu             sync.RWMutex
	inUse          int
	totalSubmitted int64
	totalCompleted int64
	rejected       int64
	panics         int64
	waitTime       time.Duration
}

// PoolStats is a point-in-time copy of the pool counters.
type PoolStats struct {
	Size           int           `json:"pool_size"`
	InUse          int           `json:"workers_in_use"`
	TotalSubmitted int64         `json:"total_submitted"`
	TotalCompleted int64         `json:"total_completed"`
	Rejected       int64         `json:"rejected"`
	Panics         int64         `json:"panics"`
	WaitTime       time.Duration `json:"wait_time_ns"`
}

func NewWorkerPool(size int, acquireTimeout time.Duration) *WorkerPool {
	if size <= 0 {
		size = DefaultPoolSize()
	}
	if acquireTimeout <= 0 {
		acquireTimeout = AcquireTimeout
	}

	pool := &WorkerPool{
		jobs:           make(chan job),
		size:           size,
		acquireTimeout: acquireTimeout,
		metrics:        &PoolMetrics{},
	}

	pool.wg.Add(size)
	for i := 0; i < size; i++ {
		go pool.worker()
	}

	return pool
}

// Submit hands fn to an idle worker and waits for it to finish. Once handed
// off, fn always runs to completion. A panic in fn is returned as
// ErrWorkerPanic.
func (p *WorkerPool) Submit(ctx context.Context, fn func()) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrPoolClosed
	}

	j := job{fn: fn, done: make(chan error, 1)}
	start := time.Now()
	timer := time.NewTimer(p.acquireTimeout)
	defer timer.Stop()

	select {
	case p.jobs <- j:
		p.mu.RUnlock()
	case <-timer.C:
		p.mu.RUnlock()
		p.metrics.mu.Lock()
		p.metrics.rejected++
		p.metrics.mu.Unlock()
		return ErrPoolExhausted
	case <-ctx.Done():
		p.mu.RUnlock()
		return ctx.Err()
	}

	p.metrics.mu.Lock()
	p.metrics.totalSubmitted++
	p.metrics.waitTime += time.Since(start)
	p.metrics.mu.Unlock()

	return <-j.done
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		j.done <- p.run(j.fn)
	}
}

func (p *WorkerPool) run(fn func()) (err error) {
	p.metrics.mu.Lock()
	p.metrics.inUse++
	p.metrics.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerPanic, r)
		}

		p.metrics.mu.Lock()
		p.metrics.inUse--
		p.metrics.totalCompleted++
		if err != nil {
			p.metrics.panics++
		}
		p.metrics.mu.Unlock()
	}()

	fn()
	return nil
}

// Close stops accepting work and waits for running jobs to finish.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *WorkerPool) Size() int {
	return p.size
}

func (p *WorkerPool) GetMetrics() PoolStats {
	p.metrics.mu.RLock()
	defer p.metrics.mu.RUnlock()
	return PoolStats{
		Size:           p.size,
		InUse:          p.metrics.inUse,
		TotalSubmitted: p.metrics.totalSubmitted,
		TotalCompleted: p.metrics.totalCompleted,
		Rejected:       p.metrics.rejected,
		Panics:         p.metrics.panics,
		WaitTime:       p.metrics.waitTime,
	}
}
