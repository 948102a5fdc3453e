// File: reactor/gid.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Goroutine identity, used only to detect owner-goroutine submissions for the
// inline fast path. The runtime offers no public goroutine id, so the id is
// parsed from the stack header ("goroutine N [running]:").

package reactor

import (
	"bytes"
	"runtime"
	"strconv"
)

var stackPrefix = []byte("goroutine ")

func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := bytes.TrimPrefix(buf[:n], stackPrefix)
	if i := bytes.IndexByte(s, ' '); i > 0 {
		if id, err := strconv.ParseUint(string(s[:i]), 10, 64); err == nil {
			return id
		}
	}
	return 0
}
