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

package bindings

import (
	"github.com/padshell/padshell/hid"
)

// Slot identifies a single binding of a player config.
type Slot int

// List of valid Slot values.
const (
	NoSlot Slot = iota

	LeftStickUp
	LeftStickDown
	LeftStickLeft
	LeftStickRight
	LeftStickX
	LeftStickY
	LeftStickButton
	LeftDpadUp
	LeftDpadDown
	LeftDpadLeft
	LeftDpadRight
	LeftMinus
	LeftL
	LeftZL
	LeftSL
	LeftSR

	RightStickUp
	RightStickDown
	RightStickLeft
	RightStickRight
	RightStickX
	RightStickY
	RightStickButton
	RightA
	RightB
	RightX
	RightY
	RightPlus
	RightR
	RightZR
	RightSL
	RightSR

	HotkeyToggleVsync

	numSlots
)

var slotNames = [numSlots]string{
	"",
	"left.stick_up", "left.stick_down", "left.stick_left", "left.stick_right",
	"left.stick_x", "left.stick_y", "left.stick_button",
	"left.dpad_up", "left.dpad_down", "left.dpad_left", "left.dpad_right",
	"left.minus", "left.l", "left.zl", "left.sl", "left.sr",
	"right.stick_up", "right.stick_down", "right.stick_left", "right.stick_right",
	"right.stick_x", "right.stick_y", "right.stick_button",
	"right.a", "right.b", "right.x", "right.y",
	"right.plus", "right.r", "right.zr", "right.sl", "right.sr",
	"hotkey.toggle_vsync",
}

func (s Slot) String() string {
	if s <= NoSlot || s >= numSlots {
		return "none"
	}
	return slotNames[s]
}

// ParseSlot is the inverse of Slot.String(). The boolean result is false if
// the name is not recognised.
func ParseSlot(name string) (Slot, bool) {
	for s := NoSlot + 1; s < numSlots; s++ {
		if slotNames[s] == name {
			return s, true
		}
	}
	return NoSlot, false
}

// the controller button for each button slot.
var slotButtons = map[Slot]hid.ControllerButtons{
	LeftStickButton:  hid.ButtonStickLeft,
	LeftDpadUp:       hid.ButtonDpadUp,
	LeftDpadDown:     hid.ButtonDpadDown,
	LeftDpadLeft:     hid.ButtonDpadLeft,
	LeftDpadRight:    hid.ButtonDpadRight,
	LeftMinus:        hid.ButtonMinus,
	LeftL:            hid.ButtonL,
	LeftZL:           hid.ButtonZL,
	LeftSL:           hid.ButtonSL,
	LeftSR:           hid.ButtonSR,
	RightStickButton: hid.ButtonStickRight,
	RightA:           hid.ButtonA,
	RightB:           hid.ButtonB,
	RightX:           hid.ButtonX,
	RightY:           hid.ButtonY,
	RightPlus:        hid.ButtonPlus,
	RightR:           hid.ButtonR,
	RightZR:          hid.ButtonZR,
	RightSL:          hid.ButtonSL,
	RightSR:          hid.ButtonSR,
}

// Button returns the controller button for the slot. Slots that are not
// buttons return zero.
func (s Slot) Button() hid.ControllerButtons {
	return slotButtons[s]
}

// Hotkey returns the hotkey for the slot. Slots that are not hotkeys return
// zero.
func (s Slot) Hotkey() hid.HotkeyButtons {
	if s == HotkeyToggleVsync {
		return hid.HotkeyToggleVsync
	}
	return 0
}

// SideButton returns true for the SL and SR slots, which are only used by
// the single halves of a split controller.
func (s Slot) SideButton() bool {
	switch s {
	case LeftSL, LeftSR, RightSL, RightSR:
		return true
	}
	return false
}

// ButtonSlots lists the slots that map to a controller button. The list is
// shared by keyboard and gamepad bindings.
var ButtonSlots = []Slot{
	LeftStickButton, LeftDpadUp, LeftDpadDown, LeftDpadLeft, LeftDpadRight,
	LeftMinus, LeftL, LeftZL, LeftSL, LeftSR,
	RightStickButton, RightA, RightB, RightX, RightY,
	RightPlus, RightR, RightZR, RightSL, RightSR,
}

// KeyboardSlots lists the slots of a keyboard config in display order.
var KeyboardSlots = []Slot{
	LeftStickUp, LeftStickDown, LeftStickLeft, LeftStickRight, LeftStickButton,
	LeftDpadUp, LeftDpadDown, LeftDpadLeft, LeftDpadRight,
	LeftMinus, LeftL, LeftZL, LeftSL, LeftSR,
	RightStickUp, RightStickDown, RightStickLeft, RightStickRight, RightStickButton,
	RightA, RightB, RightX, RightY,
	RightPlus, RightR, RightZR, RightSL, RightSR,
	HotkeyToggleVsync,
}

// GamepadSlots lists the slots of a gamepad config in display order.
var GamepadSlots = []Slot{
	LeftStickX, LeftStickY, LeftStickButton,
	LeftDpadUp, LeftDpadDown, LeftDpadLeft, LeftDpadRight,
	LeftMinus, LeftL, LeftZL, LeftSL, LeftSR,
	RightStickX, RightStickY, RightStickButton,
	RightA, RightB, RightX, RightY,
	RightPlus, RightR, RightZR, RightSL, RightSR,
	HotkeyToggleVsync,
}
