package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-async/pool"
)

func TestGetCapacityAtLeastMinSize(t *testing.T) {
	p := pool.New()
	for _, size := range []int{0, 1, 100, 4096, 1 << 20} {
		b := pool.Get(p, size, struct{}{})
		assert.GreaterOrEqual(t, b.Cap(), size)
		assert.Equal(t, 0, b.Len())
		b.Release()
	}
}

func TestRoundTripReuse(t *testing.T) {
	p := pool.New()

	b1 := pool.Get(p, 128, "ctx")
	b1.Release()

	// A request that fits the released capacity must reuse that array
	// instead of allocating.
	b2 := pool.Get(p, 64, "ctx")
	require.GreaterOrEqual(t, b2.Cap(), 128)

	s := p.Stats()
	assert.Equal(t, int64(2), s.Gets)
	assert.Equal(t, int64(1), s.Reuses)
	assert.Equal(t, int64(1), s.Allocs)
	assert.Equal(t, int64(0), s.Evictions)
}

func TestFirstFitPicksSmallestSufficient(t *testing.T) {
	p := pool.New()

	// Seed the free list with distinct 64, 128 and 256 byte arrays; holding
	// all three before releasing forces three fresh allocations.
	held := make([]*pool.Buffer[int], 0, 3)
	for _, size := range []int{256, 64, 128} {
		held = append(held, pool.Get(p, size, 0))
	}
	for _, b := range held {
		b.Release()
	}

	b := pool.Get(p, 100, 0)
	assert.Equal(t, 128, b.Cap(), "first fit should skip 64 and stop at 128")
	assert.Equal(t, 2, p.FreeLen())
}

func TestMissEvictsSmallestEntry(t *testing.T) {
	p := pool.New()
	b64, b128 := pool.Get(p, 64, 0), pool.Get(p, 128, 0)
	b64.Release()
	b128.Release()
	require.Equal(t, 2, p.FreeLen())

	// Nothing fits 512: the smallest free entry is dropped and a fresh
	// array of exactly the requested size is allocated.
	b := pool.Get(p, 512, 0)
	assert.Equal(t, 512, b.Cap())
	assert.Equal(t, 1, p.FreeLen())

	s := p.Stats()
	assert.Equal(t, int64(1), s.Evictions)
}

func TestFreeListStaysSorted(t *testing.T) {
	p := pool.New()
	held := make([]*pool.Buffer[int], 0, 5)
	for _, size := range []int{512, 32, 2048, 128, 64} {
		held = append(held, pool.Get(p, size, 0))
	}
	for _, b := range held {
		b.Release()
	}

	caps := p.DumpState()["free_caps"].([]int)
	require.Len(t, caps, 5)
	for i := 1; i < len(caps); i++ {
		assert.LessOrEqual(t, caps[i-1], caps[i], "free list out of order")
	}
}

func TestExternalDataNeverPooled(t *testing.T) {
	p := pool.New()
	data := []byte("externally owned")

	b := pool.FromExisting(data, p) // context type is irrelevant here
	assert.Equal(t, len(data), b.Len())
	b.Release()
	assert.Equal(t, 0, p.FreeLen())
	assert.Equal(t, int64(0), p.Stats().Puts)
}
