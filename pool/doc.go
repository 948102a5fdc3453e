// Package pool
// Author: momentics <momentics@gmail.com>
//
// Pooled-buffer allocation layer for hioload-async.
// Implements a size-sorted free list with first-fit lookup, a resize growth
// heuristic tuned for repeatedly growing buffers, and exclusive-ownership
// buffer handles with typed contexts and move-style ownership transfer.
// See bufferpool.go and buffer.go for implementation details.
package pool
