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

// Package capture implements the interactive binding of host inputs to the
// slots of a player config.
//
// A Session waits on a worker goroutine for the next key or joystick input
// and reports it as a label. Only one capture can be in progress at a time.
// The result of a capture is never delivered on the worker goroutine.
// Instead it is passed to an Invoker, which runs it on the goroutine that
// owns the user interface.
//
// The Editor is a model of the controller configuration window. It holds
// the labels for every slot of one player, starts captures and converts the
// labels back into a bindings.Config when it is saved.
package capture
