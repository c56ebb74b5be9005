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
	"math"

	"github.com/padshell/padshell/bindings"
	"github.com/padshell/padshell/hid"
	"github.com/padshell/padshell/userinput"
)

// JoystickController samples a host joystick using the gamepad bindings of a
// player config. The joystick is selected by the device index of the config.
type JoystickController struct {
	cfg       bindings.Config
	joysticks userinput.Joysticks
}

// NewJoystickController is the preferred method of initialisation for the
// JoystickController type.
func NewJoystickController(cfg bindings.Config, joysticks userinput.Joysticks) *JoystickController {
	return &JoystickController{cfg: cfg, joysticks: joysticks}
}

// state returns the joystick snapshot or nil if the joystick is not
// connected or the config has no gamepad bindings.
func (jc *JoystickController) state() userinput.JoystickState {
	if jc.cfg.Gamepad == nil || jc.joysticks == nil {
		return nil
	}
	js := jc.joysticks.Joystick(jc.cfg.Index)
	if js == nil || !js.Connected() {
		return nil
	}
	return js
}

// GetButtons returns the controller buttons for the inputs that are active.
// A disconnected joystick has no buttons.
func (jc *JoystickController) GetButtons() hid.ControllerButtons {
	js := jc.state()
	if js == nil {
		return 0
	}

	var b hid.ControllerButtons
	for _, s := range bindings.ButtonSlots {
		id, ok := jc.cfg.Gamepad.Input(s)
		if ok && userinput.IsActivated(js, id, jc.cfg.TriggerThreshold) {
			b |= s.Button()
		}
	}
	return b
}

// GetHotkeyButtons returns the hotkeys for the inputs that are active.
func (jc *JoystickController) GetHotkeyButtons() hid.HotkeyButtons {
	js := jc.state()
	if js == nil {
		return 0
	}

	var h hid.HotkeyButtons
	if userinput.IsActivated(js, jc.cfg.Gamepad.Hotkeys.ToggleVsync, jc.cfg.TriggerThreshold) {
		h |= hid.HotkeyToggleVsync
	}
	return h
}

// GetLeftStick returns the position of the left stick.
func (jc *JoystickController) GetLeftStick() hid.JoystickPosition {
	js := jc.state()
	if js == nil {
		return hid.JoystickPosition{}
	}
	l := jc.cfg.Gamepad.Left
	return readStick(js, l.StickX, l.StickY, jc.cfg.DeadzoneLeft)
}

// GetRightStick returns the position of the right stick.
func (jc *JoystickController) GetRightStick() hid.JoystickPosition {
	js := jc.state()
	if js == nil {
		return hid.JoystickPosition{}
	}
	r := jc.cfg.Gamepad.Right
	return readStick(js, r.StickX, r.StickY, jc.cfg.DeadzoneRight)
}

// readStick returns the zero position unless both bindings are axes. The Y
// axis of the host joystick points down and is inverted.
func readStick(js userinput.JoystickState, x, y userinput.ControllerInputID, deadzone float64) hid.JoystickPosition {
	if !x.IsAxis() || !y.IsAxis() {
		return hid.JoystickPosition{}
	}
	return hid.JoystickPosition{
		Dx: scaleAxis(js.Axis(x.Index), deadzone),
		Dy: scaleAxis(-js.Axis(y.Index), deadzone),
	}
}

// scaleAxis converts a normalised axis value to a stick component. Values
// inside the deadzone are zero.
func scaleAxis(v float64, deadzone float64) int32 {
	if math.IsNaN(v) || math.Abs(v) <= deadzone {
		return 0
	}
	v = math.Round(v * hid.StickMax)
	if v >= hid.StickMax {
		return hid.StickMax
	}
	if v <= -hid.StickMax {
		return -hid.StickMax
	}
	return int32(v)
}
