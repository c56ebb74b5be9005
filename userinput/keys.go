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

import (
	"github.com/padshell/padshell/curated"
)

// Key is the canonical enumeration of keyboard keys that can be bound to a
// controller button.
type Key int

// List of valid Key values. Unknown is the sentinel for keys that cannot be
// resolved.
const (
	Unknown Key = iota
	ShiftLeft
	ShiftRight
	ControlLeft
	ControlRight
	AltLeft
	AltRight
	WinLeft
	WinRight
	Menu
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
	Up
	Down
	Left
	Right
	Enter
	Escape
	Space
	Tab
	BackSpace
	Insert
	Delete
	PageUp
	PageDown
	Home
	End
	CapsLock
	ScrollLock
	PrintScreen
	Pause
	NumLock
	Keypad0
	Keypad1
	Keypad2
	Keypad3
	Keypad4
	Keypad5
	Keypad6
	Keypad7
	Keypad8
	Keypad9
	KeypadDivide
	KeypadMultiply
	KeypadSubtract
	KeypadAdd
	KeypadDecimal
	KeypadEnter
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	Number0
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Number9
	Tilde
	Grave
	Minus
	Plus
	BracketLeft
	BracketRight
	Semicolon
	Quote
	Comma
	Period
	Slash
	BackSlash
	NonUSBackSlash

	numKeys
)

var keyNames = [numKeys]string{
	"Unknown",
	"ShiftLeft", "ShiftRight", "ControlLeft", "ControlRight",
	"AltLeft", "AltRight", "WinLeft", "WinRight", "Menu",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"F13", "F14", "F15", "F16", "F17", "F18", "F19", "F20", "F21", "F22", "F23", "F24",
	"Up", "Down", "Left", "Right",
	"Enter", "Escape", "Space", "Tab", "BackSpace", "Insert", "Delete",
	"PageUp", "PageDown", "Home", "End",
	"CapsLock", "ScrollLock", "PrintScreen", "Pause", "NumLock",
	"Keypad0", "Keypad1", "Keypad2", "Keypad3", "Keypad4",
	"Keypad5", "Keypad6", "Keypad7", "Keypad8", "Keypad9",
	"KeypadDivide", "KeypadMultiply", "KeypadSubtract", "KeypadAdd",
	"KeypadDecimal", "KeypadEnter",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"Number0", "Number1", "Number2", "Number3", "Number4",
	"Number5", "Number6", "Number7", "Number8", "Number9",
	"Tilde", "Grave", "Minus", "Plus", "BracketLeft", "BracketRight",
	"Semicolon", "Quote", "Comma", "Period", "Slash", "BackSlash",
	"NonUSBackSlash",
}

// reverse lookup of keyNames
var keysByName map[string]Key

func init() {
	keysByName = make(map[string]Key, numKeys)
	for k, n := range keyNames {
		keysByName[n] = Key(k)
	}
}

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return keyNames[Unknown]
	}
	return keyNames[k]
}

// Valid returns true if the key is not Unknown and is in range.
func (k Key) Valid() bool {
	return k > Unknown && k < numKeys
}

// Sentinal error returned by ParseKey().
const UnrecognisedKey = "userinput: unrecognised key: %s"

// ParseKey is the exact inverse of Key.String(). Unlike ResolveKeyName() it
// returns an error for names it does not recognise.
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[name]; ok {
		return k, nil
	}
	return Unknown, curated.Errorf(UnrecognisedKey, name)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (k *Key) UnmarshalText(text []byte) error {
	v, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// AllKeys returns every valid key in enumeration order.
func AllKeys() []Key {
	keys := make([]Key, 0, numKeys-1)
	for k := Unknown + 1; k < numKeys; k++ {
		keys = append(keys, k)
	}
	return keys
}
