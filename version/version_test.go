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

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/padshell/padshell/test"
)

func TestDescribe(t *testing.T) {
	v, r := describe("", nil)
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	vcs := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123abcd"},
		{Key: "vcs.modified", Value: "false"},
	}
	v, r = describe("", vcs)
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "0123abcd")

	vcs[2].Value = "true"
	v, r = describe("v0.1.0", vcs)
	test.ExpectEquality(t, v, "v0.1.0")
	test.ExpectEquality(t, r, "0123abcd+dirty")
}

func TestString(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(String(), ApplicationName+" "))
	_, _, release := Version()
	test.ExpectFailure(t, release)
}
