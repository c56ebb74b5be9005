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

import "strings"

// ControllerButtons is a bit mask of the buttons of an emulated controller.
// Each bit is independent and can be set by more than one source.
type ControllerButtons uint64

// List of controller buttons.
const (
	ButtonA ControllerButtons = 1 << iota
	ButtonB
	ButtonX
	ButtonY
	ButtonStickLeft
	ButtonStickRight
	ButtonL
	ButtonR
	ButtonZL
	ButtonZR
	ButtonPlus
	ButtonMinus
	ButtonDpadLeft
	ButtonDpadUp
	ButtonDpadRight
	ButtonDpadDown
	ButtonLStickLeft
	ButtonLStickUp
	ButtonLStickRight
	ButtonLStickDown
	ButtonRStickLeft
	ButtonRStickUp
	ButtonRStickRight
	ButtonRStickDown
	ButtonSL
	ButtonSR
)

var buttonNames = []string{
	"A", "B", "X", "Y", "StickLeft", "StickRight", "L", "R", "ZL", "ZR",
	"Plus", "Minus", "DpadLeft", "DpadUp", "DpadRight", "DpadDown",
	"LStickLeft", "LStickUp", "LStickRight", "LStickDown",
	"RStickLeft", "RStickUp", "RStickRight", "RStickDown",
	"SL", "SR",
}

// String lists the buttons that are set, separated by a plus sign.
func (b ControllerButtons) String() string {
	if b == 0 {
		return "none"
	}
	s := make([]string, 0, len(buttonNames))
	for i, n := range buttonNames {
		if b&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	return strings.Join(s, "+")
}

// HotkeyButtons is a bit mask of host side functions that can be bound in
// the same way as controller buttons.
type HotkeyButtons uint32

// List of hotkeys.
const (
	HotkeyToggleVsync HotkeyButtons = 1 << iota
)

func (h HotkeyButtons) String() string {
	if h&HotkeyToggleVsync != 0 {
		return "ToggleVsync"
	}
	return "none"
}
