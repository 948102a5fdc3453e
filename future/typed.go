// File: future/typed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Typed completion handle carrying a value alongside the completion signal.

package future

import "github.com/momentics/hioload-async/api"

// Typed is a Future that additionally captures a value of type T. The value
// is readable only after completion; Value blocks until then.
type Typed[T any] struct {
	Future

	// value is written by Resolve before the completion signal fires.
	value T
}

// NewTyped creates a pending typed Future.
func NewTyped[T any]() *Typed[T] {
	return &Typed[T]{Future: Future{done: make(chan struct{})}}
}

// Resolve completes the Future with a value and an optional error. Like
// Complete, it must be called exactly once.
func (t *Typed[T]) Resolve(value T, err error) {
	t.value = value
	t.Complete(err)
}

// Value blocks until completion and returns the captured value and error.
// The error counts as observed.
func (t *Typed[T]) Value() (T, error) {
	<-t.done
	t.errObserved.Store(true)
	return t.value, t.err
}

// Result blocks until completion and returns the outcome as a tagged result.
func (t *Typed[T]) Result() api.Result[T] {
	v, err := t.Value()
	return api.Result[T]{Value: v, Err: err}
}
