// Package parallel provides the fan-out used by the render engine.
//
// A frame is a flat range of pixel indices. Split cuts that range into
// contiguous, non-overlapping spans and WorkerPool.Range runs one task per
// span, returning once every task has finished. Each task writes only the
// slots of its own span, so tasks need no synchronization beyond that
// final join.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs batches of render tasks on a fixed set of goroutines.
//
// Each worker owns a queue and steals from the others once its own is
// empty. Spans near the set boundary cost far more than spans that escape
// quickly, so stealing keeps every core busy to the end of a frame.
//
// WorkerPool is safe for concurrent use. Close waits for batches already
// submitted; batches submitted after Close run on the calling goroutine.
// A task must not submit to the pool that runs it.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	// mu is held shared by each batch from submission to join, and
	// exclusively by Close while it stops the workers.
	mu      sync.RWMutex
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	depth := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), depth)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.run(i)
	}
	return p
}

func (p *WorkerPool) run(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case task := <-own:
			task()
			continue
		default:
		}
		if task := p.steal(id); task != nil {
			task()
			continue
		}
		// Idle. done only closes once no batch is in flight, so the
		// queues are empty by then.
		select {
		case task := <-own:
			task()
		case <-p.done:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case task := <-p.queues[(id+i)%p.workers]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll runs every task exactly once and returns when all of them
// have finished. On a closed pool the tasks run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running.Load() {
		for _, task := range tasks {
			task()
		}
		return
	}

	var join sync.WaitGroup
	join.Add(len(tasks))
	for i, task := range tasks {
		// Blocks while the queue is full; its worker keeps draining it.
		p.queues[i%p.workers] <- func() {
			defer join.Done()
			task()
		}
	}
	join.Wait()
}

// Range splits [0, n) with Split(n, size) and calls fn once per span on
// the pool. It returns the number of spans once every call has finished.
func (p *WorkerPool) Range(n, size int, fn func(Span)) int {
	spans := Split(n, size)
	tasks := make([]func(), len(spans))
	for i, s := range spans {
		tasks[i] = func() { fn(s) }
	}
	p.ExecuteAll(tasks)
	return len(spans)
}

// Close waits for in-flight batches and stops the workers.
// Close is safe to call multiple times and from several goroutines.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.running.Load() {
		p.running.Store(false)
		close(p.done)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether batches are still handed to the workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
