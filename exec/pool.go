// File: exec/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-size worker pool draining a shared FIFO task queue. Submission never
// blocks; completion is observed through the returned future. Enqueue order
// is FIFO, completion order is not (multiple workers drain concurrently).

package exec

import (
	"fmt"
	"iter"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-async/api"
	"github.com/momentics/hioload-async/future"
	"github.com/momentics/hioload-async/internal/concurrency"
	"github.com/momentics/hioload-async/internal/diag"
)

// task pairs one unit of work with the completion it reports to.
// Consumed exactly once by a worker.
type task struct {
	run      func() error
	complete func(error)
}

// Pool owns a fixed set of worker goroutines and a shared task queue.
type Pool struct {
	// queue plus stop flag form one critical section; workers block on cond.
	// A stop observed on wake wins over remaining queued work.
	qmu   sync.Mutex
	cond  *sync.Cond
	tasks *queue.Queue
	stop  bool

	// pending has its own lock so bookkeeping never contends with the queue.
	pendMu  sync.Mutex
	pending int64

	wg       sync.WaitGroup
	workers  int
	disposed atomic.Bool

	submitted atomic.Int64
	completed atomic.Int64
}

// NewPool creates a pool and immediately spawns its workers. Without options
// the worker count is max(NumCPU-1, 1), leaving one core to the submitters.
func NewPool(opts ...Option) *Pool {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pool{
		tasks:   queue.New(),
		workers: cfg.workers,
	}
	p.cond = sync.NewCond(&p.qmu)

	p.wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go p.worker(i, cfg.affinity)
	}
	return p
}

// Submit wraps fn in a task, enqueues it and returns a completion handle
// immediately. Returns api.ErrPoolDisposed after Dispose.
func (p *Pool) Submit(fn func() error) (api.Completion, error) {
	fut := future.New()
	if err := p.enqueue(task{run: fn, complete: fut.Complete}); err != nil {
		return nil, err
	}
	return fut, nil
}

// SubmitTyped schedules fn on the pool and returns a typed future observing
// its value. A standalone function because methods cannot add type parameters.
func SubmitTyped[T any](p *Pool, fn func() (T, error)) (*future.Typed[T], error) {
	fut := future.NewTyped[T]()
	var value T
	t := task{
		run: func() error {
			var err error
			value, err = fn()
			return err
		},
		complete: func(err error) { fut.Resolve(value, err) },
	}
	if err := p.enqueue(t); err != nil {
		return nil, err
	}
	return fut, nil
}

func (p *Pool) enqueue(t task) error {
	if p.disposed.Load() {
		return api.ErrPoolDisposed
	}

	p.addPending(1)

	p.qmu.Lock()
	if p.stop {
		p.qmu.Unlock()
		p.addPending(-1)
		return api.ErrPoolDisposed
	}
	p.tasks.Add(t)
	p.cond.Signal()
	p.qmu.Unlock()

	p.submitted.Add(1)
	return nil
}

// Pending returns the number of tasks enqueued or executing but not yet
// completed. It never goes negative.
func (p *Pool) Pending() int64 {
	p.pendMu.Lock()
	defer p.pendMu.Unlock()
	return p.pending
}

func (p *Pool) addPending(delta int64) {
	p.pendMu.Lock()
	p.pending += delta
	p.pendMu.Unlock()
}

// Quiesce returns a lazy, restartable sequence that yields the current
// pending count once per round and stops when it reaches zero. It never hard
// blocks, so it composes with whatever loop drives the caller:
//
//	for n := range p.Quiesce() {
//		_ = n // still draining
//	}
func (p *Pool) Quiesce() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for {
			n := p.Pending()
			if n <= 0 {
				return
			}
			if !yield(n) {
				return
			}
			runtime.Gosched()
		}
	}
}

// Wait drains Quiesce to completion. Convenience for callers without their
// own scheduling loop.
func (p *Pool) Wait() {
	for range p.Quiesce() {
	}
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int { return p.workers }

// Stats returns an accounting snapshot.
func (p *Pool) Stats() api.ExecutorStats {
	return api.ExecutorStats{
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Pending:   p.Pending(),
		Workers:   p.workers,
	}
}

// DumpState implements api.Debug.
func (p *Pool) DumpState() map[string]any {
	s := p.Stats()
	return map[string]any{
		"submitted": s.Submitted,
		"completed": s.Completed,
		"pending":   s.Pending,
		"workers":   s.Workers,
		"disposed":  p.disposed.Load(),
	}
}

// Dispose signals stop, joins all workers and marks the pool unusable.
// Tasks still queued when a worker observes the stop signal are discarded
// without execution; their futures never complete. Idempotent.
func (p *Pool) Dispose() {
	if !p.disposed.CompareAndSwap(false, true) {
		return
	}
	p.qmu.Lock()
	p.stop = true
	p.cond.Broadcast()
	p.qmu.Unlock()
	p.wg.Wait()
}

// worker drains at most one task per wake. A task failure is contained: the
// error lands in the task's future and in the diagnostic log, never in the
// worker goroutine itself.
func (p *Pool) worker(id int, pin bool) {
	defer p.wg.Done()

	if pin {
		if err := concurrency.PinCurrentThread(id); err != nil {
			log := diag.Logger()
			log.Debug().Err(err).Int("worker", id).Msg("[exec] affinity pin skipped")
		}
	}

	for {
		p.qmu.Lock()
		for p.tasks.Length() == 0 && !p.stop {
			p.cond.Wait()
		}
		if p.stop {
			p.qmu.Unlock()
			return
		}
		t := p.tasks.Remove().(task)
		p.qmu.Unlock()

		err := runContained(t.run)
		t.complete(err)
		if err != nil {
			log := diag.Logger()
			log.Error().Err(err).Int("worker", id).Msg("[exec] task failed")
		}
		p.completed.Add(1)
		p.addPending(-1)
	}
}

// runContained executes fn, converting a panic into a captured error.
func runContained(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", api.ErrTaskPanic, r)
		}
	}()
	return fn()
}

var (
	_ api.Executor = (*Pool)(nil)
	_ api.Debug    = (*Pool)(nil)
)
