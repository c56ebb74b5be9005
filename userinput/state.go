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

import "math"

// KeyboardState is a snapshot of the host keyboard.
type KeyboardState interface {
	IsKeyDown(k Key) bool
}

// JoystickState is a snapshot of a single host joystick. Axis values are
// normalised to the range -1.0 to 1.0 with positive values pointing right
// and down. An unconnected joystick reports no input.
type JoystickState interface {
	Connected() bool
	Name() string
	Button(n int) bool
	Axis(n int) float64
	Hat(n int) HatState
}

// Joysticks gives access to the host joysticks by device index. Joystick()
// must never return nil. An index with no joystick returns a JoystickState
// that is not connected.
type Joysticks interface {
	Joystick(index int) JoystickState
	NumJoysticks() int
}

// MouseState is a snapshot of the host mouse. Position is in window
// coordinates.
type MouseState interface {
	Position() (x, y int)
	LeftButton() bool
	AnyButton() bool
}

// IsActivated returns true if the joystick input is currently active. A
// button is active when it is held. An axis is active when its magnitude is
// greater than the threshold. A hat direction is active when it is the
// direction decoded from the hat state.
//
// Unbound and out of range IDs are never active.
func IsActivated(js JoystickState, id ControllerInputID, threshold float64) bool {
	if js == nil || !id.Valid() {
		return false
	}

	switch id.Kind {
	case InputButton:
		return js.Button(id.Index)
	case InputAxis:
		return math.Abs(js.Axis(id.Index)) > threshold
	case InputHat:
		return js.Hat(id.Index).Direction() == id.Direction
	}

	return false
}

// FirstActivated returns the first active input of the joystick. Buttons
// are checked first in index order, then axes against the threshold, then
// hats. The boolean result is false if no input is active or if the
// joystick is not connected.
func FirstActivated(js JoystickState, threshold float64) (ControllerInputID, bool) {
	if js == nil || !js.Connected() {
		return ControllerInputID{}, false
	}

	for n := range NumButtons {
		if js.Button(n) {
			return Button(n), true
		}
	}

	for n := range NumAxes {
		if math.Abs(js.Axis(n)) > threshold {
			return Axis(n), true
		}
	}

	for n := range NumHats {
		if d := js.Hat(n).Direction(); d != HatNone {
			return Hat(n, d), true
		}
	}

	return ControllerInputID{}, false
}

// Disconnected is a JoystickState for an index with no joystick.
type Disconnected struct{}

func (Disconnected) Connected() bool  { return false }
func (Disconnected) Name() string     { return "" }
func (Disconnected) Button(int) bool  { return false }
func (Disconnected) Axis(int) float64 { return 0 }
func (Disconnected) Hat(int) HatState { return HatCentered }
