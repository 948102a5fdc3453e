//go:build linux

// File: internal/concurrency/pin_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux implementation of CPU pinning via sched_setaffinity.

package concurrency

import "golang.org/x/sys/unix"

func platformPinCurrentThread(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	// tid 0 targets the calling thread, which LockOSThread has fixed.
	return unix.SchedSetaffinity(0, &set)
}
