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

// Package shell drives the emulated device from the host window. It runs two
// loops.
//
// The render loop runs on its own goroutine, locked to an OS thread, and owns
// the graphics context. It feeds the device's GPU work and presents frames
// at the target rate.
//
// The main loop runs on the goroutine that calls Run(), which should be the
// process's main thread. It services host events and samples the input
// devices of every configured player once per iteration.
//
// The two loops communicate only through atomic flags: a resize flag, a
// closing flag and a title handoff.
package shell
