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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions use t.Fatalf() and stop the test
// immediately.
//
// ExpectSuccess() and ExpectFailure() interpret bool and error values. The
// nil value is considered a success because of how errors are usually
// returned in Go.
//
// All functions accept an optional list of tags, which are printed with any
// failure message. Tags are useful for identifying the failing iteration of a
// table driven test.
//
// The Writer type implements io.Writer and should be used to capture output
// for comparison.
package test
