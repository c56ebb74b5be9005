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

package hid

// StickMax is the largest magnitude of a stick position component. The range
// is symmetric so the smallest value is -StickMax.
const StickMax = 32767

// JoystickPosition is the deflection of an analog stick. Positive Dx is to
// the right and positive Dy is up.
type JoystickPosition struct {
	Dx int32
	Dy int32
}

// ClampStick limits v to the symmetric stick range.
func ClampStick(v int32) int32 {
	return max(-StickMax, min(StickMax, v))
}

// deflection beyond this value sets the stick direction buttons.
const stickButtonThreshold = StickMax / 2

// StickButtons returns the direction buttons for the stick positions. A
// direction is set when the stick deflection in that direction exceeds half
// of the stick range.
//
// This is the synthesis used by the virtual controller of the emulated
// device. Samplers should not call it.
func StickButtons(left, right JoystickPosition) ControllerButtons {
	var b ControllerButtons

	if left.Dx < -stickButtonThreshold {
		b |= ButtonLStickLeft
	}
	if left.Dx > stickButtonThreshold {
		b |= ButtonLStickRight
	}
	if left.Dy < -stickButtonThreshold {
		b |= ButtonLStickDown
	}
	if left.Dy > stickButtonThreshold {
		b |= ButtonLStickUp
	}

	if right.Dx < -stickButtonThreshold {
		b |= ButtonRStickLeft
	}
	if right.Dx > stickButtonThreshold {
		b |= ButtonRStickRight
	}
	if right.Dy < -stickButtonThreshold {
		b |= ButtonRStickDown
	}
	if right.Dy > stickButtonThreshold {
		b |= ButtonRStickUp
	}

	return b
}
