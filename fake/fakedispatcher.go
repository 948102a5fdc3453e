// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"github.com/momentics/hioload-async/api"
	"github.com/momentics/hioload-async/future"
)

// Dispatcher queues callbacks and runs them only when Pump is called, with no
// goroutine-affinity checks. Useful for single-goroutine collaborator tests.
type Dispatcher struct {
	queued []func() error
	futs   []*future.Future
	Closed bool
}

func (f *Dispatcher) Submit(fn func() error) (api.Completion, error) {
	if f.Closed {
		return nil, api.ErrReactorClosed
	}
	fut := future.New()
	f.queued = append(f.queued, fn)
	f.futs = append(f.futs, fut)
	return fut, nil
}

func (f *Dispatcher) Pump() {
	queued, futs := f.queued, f.futs
	f.queued, f.futs = nil, nil
	for i, fn := range queued {
		futs[i].Complete(fn())
	}
}

func (f *Dispatcher) Close() {
	f.Closed = true
	f.queued, f.futs = nil, nil
}

var _ api.Dispatcher = (*Dispatcher)(nil)
