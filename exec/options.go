// File: exec/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package exec

import "runtime"

type config struct {
	workers  int
	affinity bool
}

func defaultConfig() config {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return config{workers: n}
}

// Option tunes pool construction.
type Option func(*config)

// WithWorkers overrides the worker count. Values below one are clamped to one.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithAffinity pins each worker's OS thread to a CPU core. On platforms
// without affinity support the pin is skipped with a debug diagnostic.
func WithAffinity() Option {
	return func(c *config) { c.affinity = true }
}
