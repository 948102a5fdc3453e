// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor provides a single-consumer, goroutine-affine dispatcher: callbacks submitted from any goroutine execute on the one goroutine that drives Pump.
package reactor
