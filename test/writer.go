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

package test

import "sync"

// Writer is an implementation of io.Writer that should be used to capture
// output for comparison. It is safe to write from more than one goroutine.
type Writer struct {
	crit   sync.Mutex
	buffer []byte
}

// Write implements the io.Writer interface.
func (w *Writer) Write(p []byte) (n int, err error) {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Reset empties the buffer.
func (w *Writer) Reset() {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.buffer = w.buffer[:0]
}

// Compare buffered output with the string.
func (w *Writer) Compare(s string) bool {
	return w.String() == s
}

// String implements the fmt.Stringer interface.
func (w *Writer) String() string {
	w.crit.Lock()
	defer w.crit.Unlock()
	return string(w.buffer)
}
