// File: internal/concurrency/pin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral entry point for CPU pinning of worker threads.

package concurrency

import (
	"errors"
	"runtime"
)

// ErrAffinityNotSupported indicates CPU affinity is not supported on this platform.
var ErrAffinityNotSupported = errors.New("CPU affinity not supported")

// PinCurrentThread locks the calling goroutine to its OS thread and binds that
// thread to the CPU core with the given index (wrapped modulo the core count).
// Returns ErrAffinityNotSupported on platforms without affinity syscalls.
func PinCurrentThread(cpuID int) error {
	runtime.LockOSThread()
	return platformPinCurrentThread(cpuID % runtime.NumCPU())
}
