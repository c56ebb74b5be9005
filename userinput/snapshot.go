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

// KeyboardSnapshot is a value implementation of KeyboardState. Being a value
// type, a copy of the snapshot is unaffected by later key events.
type KeyboardSnapshot struct {
	down [numKeys]bool
}

// IsKeyDown implements the KeyboardState interface.
func (s *KeyboardSnapshot) IsKeyDown(k Key) bool {
	if !k.Valid() {
		return false
	}
	return s.down[k]
}

// SetKey records the key as being held or released. Invalid keys are
// ignored.
func (s *KeyboardSnapshot) SetKey(k Key, down bool) {
	if k.Valid() {
		s.down[k] = down
	}
}

// Clear releases all keys.
func (s *KeyboardSnapshot) Clear() {
	s.down = [numKeys]bool{}
}

// JoystickSnapshot is a value implementation of JoystickState.
type JoystickSnapshot struct {
	Attached   bool
	DeviceName string
	Buttons    [NumButtons]bool
	Axes       [NumAxes]float64
	Hats       [NumHats]HatState
}

// Connected implements the JoystickState interface.
func (s *JoystickSnapshot) Connected() bool {
	return s.Attached
}

// Name implements the JoystickState interface.
func (s *JoystickSnapshot) Name() string {
	return s.DeviceName
}

// Button implements the JoystickState interface.
func (s *JoystickSnapshot) Button(n int) bool {
	if !s.Attached || n < 0 || n >= NumButtons {
		return false
	}
	return s.Buttons[n]
}

// Axis implements the JoystickState interface.
func (s *JoystickSnapshot) Axis(n int) float64 {
	if !s.Attached || n < 0 || n >= NumAxes {
		return 0
	}
	return s.Axes[n]
}

// Hat implements the JoystickState interface.
func (s *JoystickSnapshot) Hat(n int) HatState {
	if !s.Attached || n < 0 || n >= NumHats {
		return HatCentered
	}
	return s.Hats[n]
}

// JoystickList is an implementation of Joysticks over a slice of snapshots.
// The slice index is the device index.
type JoystickList []JoystickSnapshot

// Joystick implements the Joysticks interface.
func (l JoystickList) Joystick(index int) JoystickState {
	if index < 0 || index >= len(l) {
		return Disconnected{}
	}
	return &l[index]
}

// NumJoysticks implements the Joysticks interface.
func (l JoystickList) NumJoysticks() int {
	return len(l)
}

// MouseSnapshot is a value implementation of MouseState.
type MouseSnapshot struct {
	X, Y  int
	Left  bool
	Right bool
	Other bool
}

// Position implements the MouseState interface.
func (s MouseSnapshot) Position() (int, int) {
	return s.X, s.Y
}

// LeftButton implements the MouseState interface.
func (s MouseSnapshot) LeftButton() bool {
	return s.Left
}

// AnyButton implements the MouseState interface.
func (s MouseSnapshot) AnyButton() bool {
	return s.Left || s.Right || s.Other
}
