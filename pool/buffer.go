// File: pool/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer handle with exclusive ownership of its backing array. Exactly one
// live handle owns an array at any time; Resize and Mutate invalidate the
// handle they consume, and any use of an invalidated handle fails fast.

package pool

import (
	"io"

	"github.com/momentics/hioload-async/api"
	"github.com/momentics/hioload-async/internal/diag"
)

// Buffer is a resizable byte buffer carrying a strongly-typed context.
// Capacity is the backing array length; the logical size never exceeds it.
type Buffer[T any] struct {
	owner    *Pool // nil for handles created from external data
	data     []byte
	size     int
	ctx      T
	resizes  uint32
	external bool
	invalid  bool
}

func (b *Buffer[T]) mustValid() {
	if b.invalid {
		panic(api.ErrBufferReleased)
	}
}

// Bytes returns the logical-size view of the buffer.
func (b *Buffer[T]) Bytes() []byte {
	b.mustValid()
	return b.data[:b.size]
}

// Cap returns the capacity of the backing array.
func (b *Buffer[T]) Cap() int {
	b.mustValid()
	return len(b.data)
}

// Len returns the logical size.
func (b *Buffer[T]) Len() int {
	b.mustValid()
	return b.size
}

// SetLen sets the logical size. n must not exceed the capacity.
func (b *Buffer[T]) SetLen(n int) {
	b.mustValid()
	if n < 0 || n > len(b.data) {
		panic(api.ErrInvalidArgument)
	}
	b.size = n
}

// Context returns the typed context carried by the handle.
func (b *Buffer[T]) Context() T {
	b.mustValid()
	return b.ctx
}

// ResizeCount returns how many times this buffer has been grown.
func (b *Buffer[T]) ResizeCount() uint32 {
	b.mustValid()
	return b.resizes
}

// Resize grows b to capacity >= minSize and returns the handle to use from
// now on; the old handle is invalidated unless the call was a no-op.
//
// When growth is needed, the new capacity follows a heuristic that cuts down
// future resizes for buffers grown repeatedly while not over-allocating
// stable ones:
//
//	growth = max(1 - minSize/cap, 0.1)
//	newCap = minSize + resizeCount * growth * minSize
//
// Content and logical size carry over; the resize count increments. The old
// array is discarded rather than pooled, so transient oversized arrays do
// not accumulate in the shared free list.
func Resize[T any](b *Buffer[T], minSize int) *Buffer[T] {
	b.mustValid()
	if len(b.data) >= minSize {
		return b
	}

	growth := 1.0 - float64(minSize)/float64(len(b.data))
	if growth < 0.1 {
		growth = 0.1
	}
	newCap := minSize + int(float64(b.resizes)*growth*float64(minSize))

	var nb *Buffer[T]
	if b.owner != nil {
		nb = Get(b.owner, newCap, b.ctx)
	} else {
		nb = &Buffer[T]{data: make([]byte, newCap), ctx: b.ctx, external: b.external}
	}
	copy(nb.data, b.data[:b.size])
	nb.size = b.size
	nb.resizes = b.resizes + 1

	b.invalid = true
	return nb
}

// Mutate transfers ownership of the backing array to a new handle carrying a
// context of a different type. No copy, no pool interaction. The old handle
// is invalidated.
func Mutate[T, U any](b *Buffer[T], ctx U) *Buffer[U] {
	b.mustValid()
	nb := &Buffer[U]{
		owner:    b.owner,
		data:     b.data,
		size:     b.size,
		ctx:      ctx,
		resizes:  b.resizes,
		external: b.external,
	}
	b.invalid = true
	return nb
}

// Release invalidates the handle and returns the backing array to the free
// list, unless the data was externally supplied. A context holding a
// disposable resource (io.Closer) is closed here as well.
func (b *Buffer[T]) Release() {
	b.mustValid()
	b.invalid = true

	if c, ok := any(b.ctx).(io.Closer); ok {
		if err := c.Close(); err != nil {
			log := diag.Logger()
			log.Warn().Err(err).Msg("[pool] buffer context close failed")
		}
	}

	if b.external || b.owner == nil {
		return
	}
	b.owner.put(b.data)
}
