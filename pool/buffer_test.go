package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-async/pool"
)

func TestResizeNoopWhenCapacitySuffices(t *testing.T) {
	p := pool.New()
	b := pool.Get(p, 200, "ctx")
	b.SetLen(10)
	copy(b.Bytes(), "0123456789")

	rb := pool.Resize(b, 100)
	assert.Same(t, b, rb, "no-op resize must return the same handle")
	assert.Equal(t, 200, rb.Cap())
	assert.Equal(t, uint32(0), rb.ResizeCount())
	assert.Equal(t, "0123456789", string(rb.Bytes()))
}

func TestResizeGrowthScenario(t *testing.T) {
	p := pool.New()
	b := pool.Get(p, 100, "ctx")
	b.SetLen(100)
	for i := range b.Bytes() {
		b.Bytes()[i] = byte(i)
	}

	// First growth: resize_count is 0, so capacity is exactly the minimum.
	b = pool.Resize(b, 150)
	require.GreaterOrEqual(t, b.Cap(), 150)
	require.Equal(t, uint32(1), b.ResizeCount())
	require.Equal(t, 100, b.Len())

	// Second growth: growth factor floors at 0.1, so 400 + 1*0.1*400 = 440.
	b = pool.Resize(b, 400)
	assert.GreaterOrEqual(t, b.Cap(), 400)
	assert.Equal(t, 440, b.Cap())
	assert.Equal(t, uint32(2), b.ResizeCount())

	// Content carried over intact across both copies.
	for i, v := range b.Bytes() {
		require.Equal(t, byte(i), v, "content lost at offset %d", i)
	}
}

func TestResizeInvalidatesOldHandle(t *testing.T) {
	p := pool.New()
	old := pool.Get(p, 10, 0)
	_ = pool.Resize(old, 20)

	assert.Panics(t, func() { old.Bytes() })
	assert.Panics(t, func() { pool.Resize(old, 30) })
	assert.Panics(t, func() { old.Release() })
}

func TestResizeDiscardsOldArray(t *testing.T) {
	p := pool.New()
	b := pool.Get(p, 10, 0)
	b = pool.Resize(b, 20)

	// The superseded array must not land in the shared free list.
	assert.Equal(t, int64(0), p.Stats().Puts)
	assert.Equal(t, 0, p.FreeLen())
	b.Release()
	assert.Equal(t, 1, p.FreeLen())
}

func TestResizeExternalBufferStaysExternal(t *testing.T) {
	p := pool.New()
	b := pool.FromExisting([]byte("abc"), "ctx")
	b = pool.Resize(b, 64)
	require.GreaterOrEqual(t, b.Cap(), 64)
	assert.Equal(t, "abc", string(b.Bytes()))

	b.Release()
	assert.Equal(t, 0, p.FreeLen())
}

func TestMutateTransfersOwnership(t *testing.T) {
	p := pool.New()
	b := pool.Get(p, 16, "string context")
	b.SetLen(3)
	copy(b.Bytes(), "abc")

	nb := pool.Mutate(b, 42)
	assert.Equal(t, 42, nb.Context())
	assert.Equal(t, "abc", string(nb.Bytes()))
	assert.Equal(t, 16, nb.Cap())

	// Old handle is consumed, and no pool traffic happened.
	assert.Panics(t, func() { b.Bytes() })
	assert.Equal(t, int64(0), p.Stats().Puts)

	// The new handle still returns the array to the original pool.
	nb.Release()
	assert.Equal(t, 1, p.FreeLen())
}

func TestUseAfterReleasePanics(t *testing.T) {
	p := pool.New()
	b := pool.Get(p, 8, 0)
	b.Release()

	assert.Panics(t, func() { b.Bytes() })
	assert.Panics(t, func() { b.SetLen(1) })
	assert.Panics(t, func() { b.Release() })
}

type closerCtx struct{ closed *bool }

func (c closerCtx) Close() error { *c.closed = true; return nil }

func TestReleaseClosesDisposableContext(t *testing.T) {
	p := pool.New()
	closed := false
	b := pool.Get(p, 8, closerCtx{&closed})
	b.Release()
	assert.True(t, closed, "disposable context not closed on release")
}

func TestSetLenBounds(t *testing.T) {
	p := pool.New()
	b := pool.Get(p, 8, 0)
	defer b.Release()

	assert.Panics(t, func() { b.SetLen(b.Cap() + 1) })
	assert.Panics(t, func() { b.SetLen(-1) })
}
