package future_test

import (
	"bytes"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-async/future"
	"github.com/momentics/hioload-async/internal/diag"
)

func TestCompleteSignalsWaiters(t *testing.T) {
	f := future.New()
	if f.Done() {
		t.Fatal("new future reports done")
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(nil)
	}()

	f.Wait()
	if !f.Done() {
		t.Error("future not done after Wait returned")
	}
	if !f.OK() {
		t.Error("OK false with no captured error")
	}
}

func TestErrReturnsExactError(t *testing.T) {
	boom := errors.New("boom")
	f := future.New()

	go func() {
		time.Sleep(5 * time.Millisecond)
		f.Complete(boom)
	}()

	// Err blocks until completion, then returns the original error object.
	if err := f.Err(); !errors.Is(err, boom) {
		t.Errorf("Err() = %v, want %v", err, boom)
	}
	if f.OK() {
		t.Error("OK true despite captured error")
	}
}

func TestDoubleCompletePanics(t *testing.T) {
	f := future.New()
	f.Complete(nil)

	defer func() {
		if recover() == nil {
			t.Error("second Complete did not panic")
		}
	}()
	f.Complete(nil)
}

func TestOnCompleteRunsSynchronously(t *testing.T) {
	f := future.New()
	var ran atomic.Bool
	f.OnComplete(func() { ran.Store(true) })

	f.Complete(nil)
	if !ran.Load() {
		t.Error("on-complete callback did not run during Complete")
	}
}

func TestTypedValueBlocksUntilResolve(t *testing.T) {
	f := future.NewTyped[int]()

	go func() {
		time.Sleep(5 * time.Millisecond)
		f.Resolve(42, nil)
	}()

	v, err := f.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if v != 42 {
		t.Errorf("Value() = %d, want 42", v)
	}

	res := f.Result()
	if res.Value != 42 || res.Err != nil {
		t.Errorf("Result() = %+v", res)
	}
}

func TestReleaseSurfacesUnobservedError(t *testing.T) {
	var buf bytes.Buffer
	prev := diag.Logger()
	diag.SetLogger(zerolog.New(&buf))
	defer diag.SetLogger(prev)

	f := future.New()
	f.Complete(errors.New("lost failure"))
	f.Release()

	if !strings.Contains(buf.String(), "lost failure") {
		t.Errorf("unobserved error not surfaced, log: %q", buf.String())
	}
}

func TestReleaseQuietAfterObservation(t *testing.T) {
	var buf bytes.Buffer
	prev := diag.Logger()
	diag.SetLogger(zerolog.New(&buf))
	defer diag.SetLogger(prev)

	f := future.New()
	f.Complete(errors.New("seen failure"))
	_ = f.Err()
	f.Release()

	if buf.Len() != 0 {
		t.Errorf("observed error logged on release: %q", buf.String())
	}
}
