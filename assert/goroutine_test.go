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

package assert_test

import (
	"testing"

	"github.com/padshell/padshell/assert"
	"github.com/padshell/padshell/test"
)

func TestOwner(t *testing.T) {
	var o assert.Owner
	test.ExpectFailure(t, o.IsOwner())

	o.Claim()
	test.ExpectSuccess(t, o.IsOwner())

	done := make(chan bool)
	go func() {
		done <- o.IsOwner()
	}()
	test.ExpectFailure(t, <-done)

	o.Release()
	test.ExpectFailure(t, o.IsOwner())
}

func TestGoRoutineID(t *testing.T) {
	id := assert.GoRoutineID()
	test.ExpectInequality(t, id, uint64(0))

	done := make(chan uint64)
	go func() {
		done <- assert.GoRoutineID()
	}()
	test.ExpectInequality(t, <-done, id)
}
