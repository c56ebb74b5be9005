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

package userinput

// KeyMod identifies the modifier keys held when a key event occurred.
type KeyMod int

// List of valid key modifiers. Modifiers can be combined.
const (
	KeyModNone  KeyMod = 0
	KeyModShift KeyMod = 1 << iota
	KeyModCtrl
	KeyModAlt
)

// Event represents all the different type of events that can occur in the
// host windowing system.
type Event interface{}

// EventQuit is sent when the window has been asked to close.
type EventQuit struct{}

// EventKeyboard is sent on keyboard input. The Key field is the name of the
// key as reported by the host, to be resolved with ResolveKeyName().
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// EventWindowResize is sent when the size of the window changes.
type EventWindowResize struct {
	Width  int
	Height int
}

// EventWindowFocus is sent when the window gains or loses input focus.
type EventWindowFocus struct {
	Focused bool
}

// EventJoystickAdded is sent when a joystick is connected.
type EventJoystickAdded struct {
	Index int
	Name  string
}

// EventJoystickRemoved is sent when a joystick is disconnected.
type EventJoystickRemoved struct {
	Index int
}
