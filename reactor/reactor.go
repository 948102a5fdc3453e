// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-consumer dispatcher that marshals callbacks onto one designated
// goroutine: the one driving Pump. Conceptually a single-worker, single-queue
// executor for callers that must land on a specific goroutine, e.g. a host
// runtime with a single-threaded API surface.

package reactor

import (
	"fmt"
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-async/api"
	"github.com/momentics/hioload-async/future"
	"github.com/momentics/hioload-async/internal/diag"
)

type task struct {
	run      func() error
	complete func(error)
}

// Reactor queues callbacks for execution by its owning goroutine. The owner
// is bound explicitly via Bind or implicitly by the first Pump call.
type Reactor struct {
	mu      sync.Mutex
	pending *queue.Queue
	inprog  *queue.Queue
	owner   uint64 // goroutine id; 0 means unbound
	closed  bool
}

// New creates an unbound reactor.
func New() *Reactor {
	return &Reactor{
		pending: queue.New(),
		inprog:  queue.New(),
	}
}

// Bind designates the calling goroutine as the owner. Optional; the first
// Pump call binds implicitly.
func (r *Reactor) Bind() {
	id := goroutineID()
	r.mu.Lock()
	r.owner = id
	r.mu.Unlock()
}

// Submit executes fn inline and synchronously when called from the owning
// goroutine (no queueing, no latency). From any other goroutine it enqueues
// fn and returns immediately; fn runs on the next Pump.
func (r *Reactor) Submit(fn func() error) (api.Completion, error) {
	fut := future.New()
	if err := r.dispatch(task{run: fn, complete: fut.Complete}); err != nil {
		return nil, err
	}
	return fut, nil
}

// SubmitTyped is Submit with a typed future observing the callback's value.
func SubmitTyped[T any](r *Reactor, fn func() (T, error)) (*future.Typed[T], error) {
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
	if err := r.dispatch(t); err != nil {
		return nil, err
	}
	return fut, nil
}

func (r *Reactor) dispatch(t task) error {
	id := goroutineID()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return api.ErrReactorClosed
	}
	if r.owner != 0 && r.owner == id {
		r.mu.Unlock()
		r.execute(t)
		return nil
	}
	r.pending.Add(t)
	r.mu.Unlock()
	return nil
}

// Pump drains every callback submitted before this call, in strict FIFO
// submission order. The pending queue is swapped into the in-progress queue
// up front, so callbacks submitted mid-pump run on the next pump and a
// sustained submitter cannot extend the current pump indefinitely.
// Only the owning goroutine may call Pump.
func (r *Reactor) Pump() {
	id := goroutineID()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	switch r.owner {
	case 0:
		r.owner = id
	case id:
	default:
		r.mu.Unlock()
		panic(api.ErrNotOwner)
	}
	r.pending, r.inprog = r.inprog, r.pending
	r.mu.Unlock()

	for {
		r.mu.Lock()
		if r.closed || r.inprog.Length() == 0 {
			r.mu.Unlock()
			return
		}
		t := r.inprog.Remove().(task)
		r.mu.Unlock()

		r.execute(t)
	}
}

func (r *Reactor) execute(t task) {
	err := runContained(t.run)
	t.complete(err)
	if err != nil {
		log := diag.Logger()
		log.Error().Err(err).Msg("[reactor] task failed")
	}
}

// Close clears both queues and rejects further submissions. Futures of
// cleared tasks never complete; the surrounding collaborator must not leave
// callers blocked on them across shutdown. Idempotent.
func (r *Reactor) Close() {
	r.mu.Lock()
	r.closed = true
	r.pending = queue.New()
	r.inprog = queue.New()
	r.mu.Unlock()
}

// QueueLen reports the number of callbacks awaiting the next pump.
func (r *Reactor) QueueLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending.Length()
}

// DumpState implements api.Debug.
func (r *Reactor) DumpState() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return map[string]any{
		"pending": r.pending.Length(),
		"bound":   r.owner != 0,
		"closed":  r.closed,
	}
}

func runContained(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", api.ErrTaskPanic, rec)
		}
	}()
	return fn()
}

var (
	_ api.Dispatcher = (*Reactor)(nil)
	_ api.Debug      = (*Reactor)(nil)
)
