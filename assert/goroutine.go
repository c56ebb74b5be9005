// This file is part of Padshell.
//
// Padshell is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padshell is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padshell.  If not, see <https://www.gnu.org/licenses/>.

// Package assert provides checks about the calling context. The shell uses
// them to decide whether a function can be run immediately or must be
// queued for the main goroutine.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GoRoutineID returns the ID of the calling goroutine. It should not be used
// for anything other than diagnostics and context checks.
func GoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that owns a resource.
type Owner struct {
	id atomic.Uint64
}

// Claim records the calling goroutine as the owner.
func (o *Owner) Claim() {
	o.id.Store(GoRoutineID())
}

// Release forgets the owner.
func (o *Owner) Release() {
	o.id.Store(0)
}

// IsOwner returns true if the calling goroutine is the owner.
func (o *Owner) IsOwner() bool {
	id := o.id.Load()
	return id != 0 && id == GoRoutineID()
}
