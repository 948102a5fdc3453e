// File: future/future.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One-shot completion handle. A Future is created by a submitter, handed to
// exactly one producer, and completed exactly once by whichever goroutine ran
// the wrapped work. All accessors are safe for concurrent use.

package future

import (
	"sync/atomic"

	"github.com/momentics/hioload-async/api"
	"github.com/momentics/hioload-async/internal/diag"
)

// Future signals completion of one unit of asynchronous work and carries the
// error it captured, if any.
type Future struct {
	done chan struct{}

	// completed guards the single pending -> completed transition.
	completed atomic.Bool

	// err is written once, before done is closed; readers observe it only
	// after the channel close, which orders the write.
	err error

	errObserved atomic.Bool
	released    atomic.Bool

	// onComplete, when set, runs synchronously on the completing goroutine.
	onComplete func()
}

// New creates a pending Future.
func New() *Future {
	return &Future{done: make(chan struct{})}
}

// OnComplete registers a callback invoked synchronously by the goroutine that
// calls Complete. It must be set before the Future is handed to a producer;
// registration is not synchronized against Complete.
func (f *Future) OnComplete(fn func()) {
	if f.completed.Load() {
		panic(api.ErrFutureCompleted)
	}
	f.onComplete = fn
}

// Complete transitions the Future to completed, capturing err (nil on
// success). It must be called exactly once; a second call is a broken
// producer and fails fast.
func (f *Future) Complete(err error) {
	if !f.completed.CompareAndSwap(false, true) {
		panic(api.ErrFutureCompleted)
	}
	f.err = err
	close(f.done)
	if f.onComplete != nil {
		f.onComplete()
	}
}

// Wait blocks the calling goroutine until the Future completes.
func (f *Future) Wait() {
	<-f.done
}

// Done is a non-blocking poll of the completion signal.
func (f *Future) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// OK blocks until completion and reports whether no error was captured.
func (f *Future) OK() bool {
	<-f.done
	return f.err == nil
}

// Err blocks until completion, marks the captured error as observed, and
// returns it.
func (f *Future) Err() error {
	<-f.done
	f.errObserved.Store(true)
	return f.err
}

// Release disposes the handle. If an error was captured but never observed,
// it is surfaced through the diagnostic log so the failure is not silently
// lost. Release is idempotent.
func (f *Future) Release() {
	if !f.released.CompareAndSwap(false, true) {
		return
	}
	if !f.Done() {
		return
	}
	if f.err != nil && !f.errObserved.Load() {
		log := diag.Logger()
		log.Error().Err(f.err).Msg("[future] released with unobserved error")
	}
}

var _ api.Completion = (*Future)(nil)
