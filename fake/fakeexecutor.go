// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"github.com/momentics/hioload-async/api"
	"github.com/momentics/hioload-async/future"
)

// Executor runs every submitted callback inline on the submitting goroutine.
// Useful for collaborator tests that need deterministic execution.
type Executor struct {
	Submitted int64
	Disposed  bool
}

func (f *Executor) Submit(fn func() error) (api.Completion, error) {
	if f.Disposed {
		return nil, api.ErrPoolDisposed
	}
	f.Submitted++
	fut := future.New()
	fut.Complete(fn())
	return fut, nil
}

func (f *Executor) Pending() int64 { return 0 }
func (f *Executor) Dispose()       { f.Disposed = true }

var _ api.Executor = (*Executor)(nil)
