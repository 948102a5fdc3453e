// File: pool/bufferpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pooled-buffer allocator. Keeps a free list of reusable byte arrays sorted
// ascending by capacity under a single mutex; array allocation itself happens
// outside the critical section so a slow make() never holds the lock.

package pool

import (
	"sync"

	"github.com/momentics/hioload-async/api"
)

// Pool maintains the size-sorted free list backing Buffer handles.
type Pool struct {
	mu   sync.Mutex
	free [][]byte // ascending by capacity

	stats api.BufferPoolStats
}

// New creates an empty buffer pool.
func New() *Pool {
	return &Pool{}
}

// Get obtains a buffer of capacity >= minSize carrying ctx and zero logical
// size. The free list is scanned first-fit; on a miss the single smallest
// free entry is dropped to bound pool growth and a fresh array of exactly
// minSize is allocated.
func Get[T any](p *Pool, minSize int, ctx T) *Buffer[T] {
	if minSize < 0 {
		panic(api.ErrInvalidArgument)
	}

	var data []byte

	p.mu.Lock()
	p.stats.Gets++
	for i, arr := range p.free {
		if cap(arr) >= minSize {
			data = arr[:cap(arr)]
			p.free = append(p.free[:i], p.free[i+1:]...)
			p.stats.Reuses++
			break
		}
	}
	if data == nil {
		if len(p.free) > 0 {
			p.free = p.free[1:]
			p.stats.Evictions++
		}
		p.stats.Allocs++
	}
	p.mu.Unlock()

	if data == nil {
		data = make([]byte, minSize)
	}

	return &Buffer[T]{owner: p, data: data, ctx: ctx}
}

// FromExisting wraps externally owned data. The array was not pool-allocated,
// so it is never inserted into the free list on release. Logical size starts
// at len(data).
func FromExisting[T any](data []byte, ctx T) *Buffer[T] {
	return &Buffer[T]{data: data[:cap(data)], size: len(data), ctx: ctx, external: true}
}

// put re-inserts a pool-allocated array at its sorted position. The scan runs
// from the large end; released buffers tend to be among the larger entries.
func (p *Pool) put(data []byte) {
	data = data[:cap(data)]

	p.mu.Lock()
	i := len(p.free)
	for i > 0 && cap(p.free[i-1]) > cap(data) {
		i--
	}
	p.free = append(p.free, nil)
	copy(p.free[i+1:], p.free[i:])
	p.free[i] = data
	p.stats.Puts++
	p.mu.Unlock()
}

// Stats returns an accounting snapshot.
func (p *Pool) Stats() api.BufferPoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// FreeLen reports the current free-list length.
func (p *Pool) FreeLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// DumpState implements api.Debug.
func (p *Pool) DumpState() map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	caps := make([]int, len(p.free))
	for i, arr := range p.free {
		caps[i] = cap(arr)
	}
	return map[string]any{
		"free_caps": caps,
		"gets":      p.stats.Gets,
		"reuses":    p.stats.Reuses,
		"allocs":    p.stats.Allocs,
		"evictions": p.stats.Evictions,
		"puts":      p.stats.Puts,
	}
}

var _ api.Debug = (*Pool)(nil)
