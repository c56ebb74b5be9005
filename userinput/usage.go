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

// USB HID keyboard page usage codes for each key. keys without an entry
// report a usage of zero.
var keyUsages = map[Key]uint8{
	A: 0x04, B: 0x05, C: 0x06, D: 0x07, E: 0x08, F: 0x09, G: 0x0a,
	H: 0x0b, I: 0x0c, J: 0x0d, K: 0x0e, L: 0x0f, M: 0x10, N: 0x11,
	O: 0x12, P: 0x13, Q: 0x14, R: 0x15, S: 0x16, T: 0x17, U: 0x18,
	V: 0x19, W: 0x1a, X: 0x1b, Y: 0x1c, Z: 0x1d,

	Number1: 0x1e, Number2: 0x1f, Number3: 0x20, Number4: 0x21, Number5: 0x22,
	Number6: 0x23, Number7: 0x24, Number8: 0x25, Number9: 0x26, Number0: 0x27,

	Enter:          0x28,
	Escape:         0x29,
	BackSpace:      0x2a,
	Tab:            0x2b,
	Space:          0x2c,
	Minus:          0x2d,
	Plus:           0x2e,
	BracketLeft:    0x2f,
	BracketRight:   0x30,
	BackSlash:      0x31,
	Semicolon:      0x33,
	Quote:          0x34,
	Grave:          0x35,
	Tilde:          0x35,
	Comma:          0x36,
	Period:         0x37,
	Slash:          0x38,
	CapsLock:       0x39,
	NonUSBackSlash: 0x64,
	Menu:           0x65,

	F1: 0x3a, F2: 0x3b, F3: 0x3c, F4: 0x3d, F5: 0x3e, F6: 0x3f,
	F7: 0x40, F8: 0x41, F9: 0x42, F10: 0x43, F11: 0x44, F12: 0x45,
	F13: 0x68, F14: 0x69, F15: 0x6a, F16: 0x6b, F17: 0x6c, F18: 0x6d,
	F19: 0x6e, F20: 0x6f, F21: 0x70, F22: 0x71, F23: 0x72, F24: 0x73,

	PrintScreen: 0x46,
	ScrollLock:  0x47,
	Pause:       0x48,
	Insert:      0x49,
	Home:        0x4a,
	PageUp:      0x4b,
	Delete:      0x4c,
	End:         0x4d,
	PageDown:    0x4e,
	Right:       0x4f,
	Left:        0x50,
	Down:        0x51,
	Up:          0x52,

	NumLock:        0x53,
	KeypadDivide:   0x54,
	KeypadMultiply: 0x55,
	KeypadSubtract: 0x56,
	KeypadAdd:      0x57,
	KeypadEnter:    0x58,
	Keypad1:        0x59,
	Keypad2:        0x5a,
	Keypad3:        0x5b,
	Keypad4:        0x5c,
	Keypad5:        0x5d,
	Keypad6:        0x5e,
	Keypad7:        0x5f,
	Keypad8:        0x60,
	Keypad9:        0x61,
	Keypad0:        0x62,
	KeypadDecimal:  0x63,

	ControlLeft:  0xe0,
	ShiftLeft:    0xe1,
	AltLeft:      0xe2,
	WinLeft:      0xe3,
	ControlRight: 0xe4,
	ShiftRight:   0xe5,
	AltRight:     0xe6,
	WinRight:     0xe7,
}

// Usage returns the USB HID keyboard usage code for the key. Unknown and
// keys with no usage return zero.
func (k Key) Usage() uint8 {
	return keyUsages[k]
}

// Modifier returns the bit for the key in a HID keyboard report modifier
// field. Keys that are not modifiers return zero.
//
// The modifier bits follow the order of the modifier usage codes. Left
// control is bit zero and right GUI is bit seven.
func (k Key) Modifier() uint32 {
	u := keyUsages[k]
	if u < 0xe0 || u > 0xe7 {
		return 0
	}
	return 1 << (u - 0xe0)
}
