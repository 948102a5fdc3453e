package pool_test

import (
	"testing"

	"github.com/momentics/hioload-async/pool"
)

// BenchmarkGetRelease measures the steady-state acquire/release round trip,
// which should be allocation-free after the first iteration.
func BenchmarkGetRelease(b *testing.B) {
	p := pool.New()
	msg := []byte("dummy message for checksum")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := pool.Get(p, len(msg), 0)
		buf.SetLen(len(msg))
		copy(buf.Bytes(), msg)
		buf.Release()
	}
}

func BenchmarkMutate(b *testing.B) {
	p := pool.New()
	buf := pool.Get(p, 4096, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next := pool.Mutate(buf, i)
		buf = pool.Mutate(next, 0)
	}
}
