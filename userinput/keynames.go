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
	"strings"
	"unicode"
	"unicode/utf8"
)

// key names reported by host toolkits that do not follow the naming of the
// Key type. the GTK names come first and then the SDL names.
var keyAliases = map[string]Key{
	// GTK
	"Alt_L":        AltLeft,
	"Alt_R":        AltRight,
	"Control_L":    ControlLeft,
	"Control_R":    ControlRight,
	"Shift_L":      ShiftLeft,
	"Shift_R":      ShiftRight,
	"Meta_L":       WinLeft,
	"Meta_R":       WinRight,
	"Super_L":      WinLeft,
	"Super_R":      WinRight,
	"KP_0":         Keypad0,
	"KP_1":         Keypad1,
	"KP_2":         Keypad2,
	"KP_3":         Keypad3,
	"KP_4":         Keypad4,
	"KP_5":         Keypad5,
	"KP_6":         Keypad6,
	"KP_7":         Keypad7,
	"KP_8":         Keypad8,
	"KP_9":         Keypad9,
	"KP_Add":       KeypadAdd,
	"KP_Decimal":   KeypadDecimal,
	"KP_Divide":    KeypadDivide,
	"KP_Enter":     KeypadEnter,
	"KP_Multiply":  KeypadMultiply,
	"KP_Subtract":  KeypadSubtract,
	"KP_Up":        Up,
	"KP_Down":      Down,
	"KP_Left":      Left,
	"KP_Right":     Right,
	"Key_0":        Number0,
	"Key_1":        Number1,
	"Key_2":        Number2,
	"Key_3":        Number3,
	"Key_4":        Number4,
	"Key_5":        Number5,
	"Key_6":        Number6,
	"Key_7":        Number7,
	"Key_8":        Number8,
	"Key_9":        Number9,
	"Next":         PageDown,
	"Page_Down":    PageDown,
	"Prior":        PageUp,
	"Page_Up":      PageUp,
	"Num_Lock":     NumLock,
	"Caps_Lock":    CapsLock,
	"Scroll_Lock":  ScrollLock,
	"VoidSymbol":   CapsLock,
	"Print":        PrintScreen,
	"Return":       Enter,
	"backslash":    BackSlash,
	"bracketleft":  BracketLeft,
	"bracketright": BracketRight,
	"equal":        Plus,
	"quoteleft":    Grave,
	"apostrophe":   Quote,
	"asciitilde":   Tilde,
	"uparrow":      Up,
	"downarrow":    Down,
	"leftarrow":    Left,
	"rightarrow":   Right,

	// SDL
	"Left Shift":   ShiftLeft,
	"Right Shift":  ShiftRight,
	"Left Ctrl":    ControlLeft,
	"Right Ctrl":   ControlRight,
	"Left Alt":     AltLeft,
	"Right Alt":    AltRight,
	"Left GUI":     WinLeft,
	"Right GUI":    WinRight,
	"Application":  Menu,
	"Backspace":    BackSpace,
	"Numlock":      NumLock,
	"Keypad 0":     Keypad0,
	"Keypad 1":     Keypad1,
	"Keypad 2":     Keypad2,
	"Keypad 3":     Keypad3,
	"Keypad 4":     Keypad4,
	"Keypad 5":     Keypad5,
	"Keypad 6":     Keypad6,
	"Keypad 7":     Keypad7,
	"Keypad 8":     Keypad8,
	"Keypad 9":     Keypad9,
	"Keypad /":     KeypadDivide,
	"Keypad *":     KeypadMultiply,
	"Keypad -":     KeypadSubtract,
	"Keypad +":     KeypadAdd,
	"Keypad .":     KeypadDecimal,
	"Keypad Enter": KeypadEnter,
	"0":            Number0,
	"1":            Number1,
	"2":            Number2,
	"3":            Number3,
	"4":            Number4,
	"5":            Number5,
	"6":            Number6,
	"7":            Number7,
	"8":            Number8,
	"9":            Number9,
	"-":            Minus,
	"=":            Plus,
	"[":            BracketLeft,
	"]":            BracketRight,
	"\\":           BackSlash,
	";":            Semicolon,
	"'":            Quote,
	"`":            Grave,
	"~":            Tilde,
	",":            Comma,
	".":            Period,
	"/":            Slash,
}

// capitalise the first letter of s.
func capitalise(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// ResolveKeyName translates a key name reported by the host to the canonical
// Key. The name is first capitalised and compared to the canonical names.
// If there is no match the alias table is consulted. Names that cannot be
// resolved return Unknown.
//
// The function never fails and the result always has a non-empty String().
func ResolveKeyName(name string) Key {
	name = strings.TrimSpace(name)
	if name == "" {
		return Unknown
	}

	if k, ok := keysByName[capitalise(name)]; ok {
		return k
	}

	if k, ok := keyAliases[name]; ok {
		return k
	}

	return Unknown
}
