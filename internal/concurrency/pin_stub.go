//go:build !linux

// File: internal/concurrency/pin_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without affinity support.

package concurrency

func platformPinCurrentThread(int) error {
	return ErrAffinityNotSupported
}
