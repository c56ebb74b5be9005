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

package shell

import (
	"github.com/padshell/padshell/bindings"
	"github.com/padshell/padshell/hid"
	"github.com/padshell/padshell/logger"
	"github.com/padshell/padshell/sampler"
)

// UpdateFrame samples the input devices of every configured player and sends
// the result to the emulated device. It is called once per iteration of the
// main loop.
//
// A panic during sampling is recovered and logged. Input for the tick is
// lost.
func (sh *Shell) UpdateFrame() {
	defer func() {
		if r := recover(); r != nil {
			logger.Logf(logger.Allow, "shell", "input update: %v", r)
		}
	}()

	kbd := sh.window.Keyboard()
	joysticks := sh.window.Joysticks()
	h := sh.device.HID()

	enableKeyboard := sh.prefs.EnableKeyboard.Get().(bool)

	var report hid.KeyboardInput
	var hasReport bool

	// players may share a hotkey binding so the edge is taken over the union
	var hotkeys hid.HotkeyButtons

	for _, cfg := range sh.list.All() {
		var buttons hid.ControllerButtons
		var left, right hid.JoystickPosition

		switch cfg.Kind {
		case bindings.Keyboard:
			kc := sampler.NewKeyboardController(cfg.Keyboard)
			buttons = kc.GetButtons(kbd)
			left = kc.GetLeftStick(kbd)
			right = kc.GetRightStick(kbd)
			hotkeys |= kc.GetHotkeyButtons(kbd)
			if enableKeyboard {
				report.Merge(kc.GetKeysDown(kbd))
				hasReport = true
			}

		case bindings.Gamepad:
			jc := sampler.NewJoystickController(cfg, joysticks)
			buttons = jc.GetButtons()
			left = jc.GetLeftStick()
			right = jc.GetRightStick()
			hotkeys |= jc.GetHotkeyButtons()
		}

		c := h.Controller(cfg.PlayerIndex)
		if c != nil {
			buttons |= c.UpdateStickButtons(left, right)
			c.SendInput(buttons, left, right)
		}
	}

	sh.hotkeys(hotkeys)
	sh.touch()

	if enableKeyboard && hasReport {
		h.WriteKeyboard(report)
	}
}

// hotkeys acts on the press edge of each hotkey.
func (sh *Shell) hotkeys(current hid.HotkeyButtons) {
	pressed := current &^ sh.prevHotkeys
	sh.prevHotkeys = current

	if pressed&hid.HotkeyToggleVsync != 0 {
		v := !sh.device.Vsync()
		sh.device.SetVsync(v)
		logger.Logf(logger.Allow, "shell", "vsync %v", v)
	}
}

// touch sends the mouse position to the emulated touch screen while the left
// button is held.
func (sh *Shell) touch() {
	h := sh.device.HID()

	if sh.focused.Load() {
		if m := sh.window.Mouse(); m != nil && m.LeftButton() {
			x, y := m.Position()
			p, ok := MapTouch(int(sh.width.Load()), int(sh.height.Load()), x, y)
			if ok {
				h.SetTouchPoints(p)
				return
			}
		}
	}

	h.SetTouchPoints()
}
