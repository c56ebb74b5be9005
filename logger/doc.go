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

// Package logger is the logging package used throughout Padshell. Entries are
// tagged with the name of the package or subsystem making the entry:
//
//	logger.Logf(logger.Allow, "sdl", "joystick: %s", name)
//
// Logging is not intended for user-facing errors, which should be returned
// as curated errors. It is for events that are useful to see when
// diagnosing problems: devices being opened, events being dropped, a
// recovered panic in the input sampling path.
//
// The Permission argument allows the caller to suppress logging in certain
// contexts. For instance, the capture session will not log while it is
// repeatedly polling a disconnected device.
package logger
