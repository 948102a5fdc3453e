// File: internal/diag/diag.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Diagnostic sink for failures that would otherwise be lost: contained task
// errors and futures released with an unobserved error. This is a safety net
// for debugging, never control flow.

package diag

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Logger returns the current diagnostic logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the diagnostic logger. Tests use this to capture or
// silence diagnostics.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}
