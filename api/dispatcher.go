// File: api/dispatcher.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread-affine dispatcher contract: work submitted from any goroutine is
// marshaled onto the one goroutine that drives Pump.

package api

// Dispatcher guarantees a callback executes on one designated goroutine,
// regardless of which goroutine submitted it.
type Dispatcher interface {
	// Submit executes fn inline and synchronously when called from the
	// owning goroutine; otherwise it enqueues fn and returns immediately.
	Submit(fn func() error) (Completion, error)

	// Pump drains the queue of callbacks submitted since the previous pump.
	// Only the owning goroutine may call it. Callbacks submitted mid-pump
	// run on the next pump.
	Pump()

	// Close clears all queued work. Handles still pending at close time
	// never complete; callers must not be left blocked on them.
	Close()
}
