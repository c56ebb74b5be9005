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

// Package bindings holds the per-player input configuration: which host
// device drives which emulated controller, and which key or joystick input
// is bound to each controller button.
//
// A Config is the record for one player. Bindings are addressed by Slot so
// that editors can read and write them without knowing the structure of the
// Config type. The List type is the ordered collection of configs used by
// the shell. List order is player slot order and there is at most one
// config per player.
//
// Configs are persisted as TOML by the Store type. A Watcher reloads the
// store when the file changes on disk.
package bindings
