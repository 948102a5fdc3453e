// File: api/executor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor contract for parallel task dispatch.

package api

// Executor abstracts parallel execution of zero-argument callbacks.
type Executor interface {
	// Submit schedules a callback for asynchronous execution and returns a
	// completion handle immediately. It never blocks the submitter.
	Submit(fn func() error) (Completion, error)

	// Pending returns the number of callbacks enqueued or executing but not
	// yet completed.
	Pending() int64

	// Dispose stops the executor and joins its workers. Callbacks still
	// queued when a worker observes the stop signal are discarded.
	Dispose()
}

// ExecutorStats aggregates executor accounting for observability.
type ExecutorStats struct {
	Submitted int64
	Completed int64
	Pending   int64
	Workers   int
}
