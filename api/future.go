// File: api/future.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One-shot completion contract observed by submitters of asynchronous work.

package api

// Completion is a one-shot handle observing asynchronous completion.
//
// The handle transitions exactly once from pending to completed. All blocking
// accessors block the calling goroutine only; they are safe to call from any
// goroutine except a worker waiting on its own task.
type Completion interface {
	// Wait blocks until the handle completes.
	Wait()

	// Done is a non-blocking poll of the completion signal.
	Done() bool

	// OK blocks until completion and reports whether no error was captured.
	OK() bool

	// Err blocks until completion, marks the captured error as observed,
	// and returns it (nil on success).
	Err() error

	// Release disposes the handle. A captured error that was never observed
	// is surfaced through the diagnostic log so failures are not lost.
	Release()
}
