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

package sampler

import (
	"github.com/padshell/padshell/bindings"
	"github.com/padshell/padshell/hid"
	"github.com/padshell/padshell/userinput"
)

// KeyboardController samples the host keyboard using keyboard bindings.
type KeyboardController struct {
	bindings *bindings.KeyboardBindings
}

// NewKeyboardController is the preferred method of initialisation for the
// KeyboardController type.
func NewKeyboardController(b *bindings.KeyboardBindings) *KeyboardController {
	return &KeyboardController{bindings: b}
}

func held(kbd userinput.KeyboardState, k userinput.Key) bool {
	return k.Valid() && kbd.IsKeyDown(k)
}

// GetButtons returns the controller buttons for the keys that are held.
func (kc *KeyboardController) GetButtons(kbd userinput.KeyboardState) hid.ControllerButtons {
	if kc.bindings == nil || kbd == nil {
		return 0
	}

	var b hid.ControllerButtons
	for _, s := range bindings.ButtonSlots {
		if k, ok := kc.bindings.Key(s); ok && held(kbd, k) {
			b |= s.Button()
		}
	}
	return b
}

func stick(kbd userinput.KeyboardState, up, down, left, right userinput.Key) hid.JoystickPosition {
	var dx, dy int32
	if held(kbd, up) {
		dy++
	}
	if held(kbd, down) {
		dy--
	}
	if held(kbd, left) {
		dx--
	}
	if held(kbd, right) {
		dx++
	}
	return hid.JoystickPosition{Dx: dx * hid.StickMax, Dy: dy * hid.StickMax}
}

// GetLeftStick returns the position of the left stick. Opposing directions
// cancel.
func (kc *KeyboardController) GetLeftStick(kbd userinput.KeyboardState) hid.JoystickPosition {
	if kc.bindings == nil || kbd == nil {
		return hid.JoystickPosition{}
	}
	l := kc.bindings.Left
	return stick(kbd, l.StickUp, l.StickDown, l.StickLeft, l.StickRight)
}

// GetRightStick returns the position of the right stick. Opposing directions
// cancel.
func (kc *KeyboardController) GetRightStick(kbd userinput.KeyboardState) hid.JoystickPosition {
	if kc.bindings == nil || kbd == nil {
		return hid.JoystickPosition{}
	}
	r := kc.bindings.Right
	return stick(kbd, r.StickUp, r.StickDown, r.StickLeft, r.StickRight)
}

// GetHotkeyButtons returns the hotkeys for the keys that are held.
func (kc *KeyboardController) GetHotkeyButtons(kbd userinput.KeyboardState) hid.HotkeyButtons {
	if kc.bindings == nil || kbd == nil {
		return 0
	}
	var h hid.HotkeyButtons
	if held(kbd, kc.bindings.Hotkeys.ToggleVsync) {
		h |= hid.HotkeyToggleVsync
	}
	return h
}

// GetKeysDown returns the keyboard report of the emulated keyboard. Every
// key that is held is included, whether it is bound or not.
func (kc *KeyboardController) GetKeysDown(kbd userinput.KeyboardState) hid.KeyboardInput {
	var in hid.KeyboardInput
	if kbd == nil {
		return in
	}
	for _, k := range userinput.AllKeys() {
		if !kbd.IsKeyDown(k) {
			continue
		}
		if m := k.Modifier(); m != 0 {
			in.Modifier |= m
			continue
		}
		in.SetKey(k.Usage())
	}
	return in
}
