// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Accounting surface of the pooled-buffer allocator.

package api

// BufferPoolStats aggregates allocation/reuse counters of a buffer pool.
//
// Gets counts handles issued from the pool, Reuses the subset served from the
// free list, Allocs the subset backed by a fresh array, Evictions the free
// entries dropped to bound pool growth, and Puts the arrays returned.
type BufferPoolStats struct {
	Gets      int64
	Reuses    int64
	Allocs    int64
	Evictions int64
	Puts      int64
}
