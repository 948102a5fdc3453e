// Package api
// Author: momentics@gmail.com
//
// Generic result and error propagation.

package api

// Result wraps any payload or error.
type Result[T any] struct {
	Value T
	Err   error
}
