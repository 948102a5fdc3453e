// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values shared by the execution and pooling packages.

package api

import "errors"

var (
	// ErrPoolDisposed indicates a submission to a worker pool after Dispose.
	ErrPoolDisposed = errors.New("worker pool is disposed")

	// ErrReactorClosed indicates a submission to a reactor after Close.
	ErrReactorClosed = errors.New("reactor is closed")

	// ErrBufferReleased indicates use of a buffer handle that was released,
	// resized or mutated. Handles are single-owner; an invalidated handle
	// must never be touched again.
	ErrBufferReleased = errors.New("buffer handle is released or superseded")

	// ErrFutureCompleted indicates a second Complete call on the same future.
	ErrFutureCompleted = errors.New("future already completed")

	// ErrTaskPanic wraps a panic recovered from a submitted callback.
	ErrTaskPanic = errors.New("task panicked")

	// ErrNotOwner indicates Pump was invoked from a goroutine other than the
	// one the reactor is bound to.
	ErrNotOwner = errors.New("reactor pumped from non-owning goroutine")

	// ErrInvalidArgument indicates an out-of-contract argument value.
	ErrInvalidArgument = errors.New("invalid argument")
)
