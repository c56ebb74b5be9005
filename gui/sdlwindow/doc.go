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

// Package sdlwindow implements the shell.Window interface with SDL2 and an
// OpenGL context.
//
// The window must be created and serviced from the main thread. Event
// processing also refreshes the keyboard, mouse and joystick snapshots.
// The snapshots are guarded by a mutex and may be read from any goroutine.
//
// The GL context is created current on the main thread and can then be
// handed to the render goroutine with ReleaseContext() and
// MakeContextCurrent().
package sdlwindow
