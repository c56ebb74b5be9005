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

package sampler_test

import (
	"math"
	"testing"

	"github.com/padshell/padshell/bindings"
	"github.com/padshell/padshell/hid"
	"github.com/padshell/padshell/sampler"
	"github.com/padshell/padshell/test"
	"github.com/padshell/padshell/userinput"
)

func TestKeyboardButtons(t *testing.T) {
	cfg := bindings.DefaultKeyboard(hid.Player1)
	kc := sampler.NewKeyboardController(cfg.Keyboard)

	var kbd userinput.KeyboardSnapshot
	test.ExpectEquality(t, kc.GetButtons(&kbd), hid.ControllerButtons(0))

	kbd.SetKey(userinput.Z, true)
	kbd.SetKey(userinput.Up, true)
	kbd.SetKey(userinput.Q, true)
	test.ExpectEquality(t, kc.GetButtons(&kbd), hid.ButtonA|hid.ButtonDpadUp|hid.ButtonZL)

	// stick keys do not produce buttons
	kbd.Clear()
	kbd.SetKey(userinput.W, true)
	test.ExpectEquality(t, kc.GetButtons(&kbd), hid.ControllerButtons(0))
}

func TestKeyboardSticks(t *testing.T) {
	cfg := bindings.DefaultKeyboard(hid.Player1)
	kc := sampler.NewKeyboardController(cfg.Keyboard)

	var kbd userinput.KeyboardSnapshot
	kbd.SetKey(userinput.W, true)
	kbd.SetKey(userinput.D, true)
	test.ExpectEquality(t, kc.GetLeftStick(&kbd), hid.JoystickPosition{Dx: hid.StickMax, Dy: hid.StickMax})
	test.ExpectEquality(t, kc.GetRightStick(&kbd), hid.JoystickPosition{})

	// up and down cancel
	kbd.SetKey(userinput.S, true)
	test.ExpectEquality(t, kc.GetLeftStick(&kbd), hid.JoystickPosition{Dx: hid.StickMax})

	kbd.Clear()
	kbd.SetKey(userinput.K, true)
	kbd.SetKey(userinput.J, true)
	test.ExpectEquality(t, kc.GetRightStick(&kbd), hid.JoystickPosition{Dx: -hid.StickMax, Dy: -hid.StickMax})
}

func TestKeyboardHotkeys(t *testing.T) {
	cfg := bindings.DefaultKeyboard(hid.Player1)
	kc := sampler.NewKeyboardController(cfg.Keyboard)

	var kbd userinput.KeyboardSnapshot
	test.ExpectEquality(t, kc.GetHotkeyButtons(&kbd), hid.HotkeyButtons(0))
	kbd.SetKey(userinput.Tab, true)
	test.ExpectEquality(t, kc.GetHotkeyButtons(&kbd), hid.HotkeyToggleVsync)
}

func TestKeyboardKeysDown(t *testing.T) {
	kc := sampler.NewKeyboardController(nil)

	var kbd userinput.KeyboardSnapshot
	kbd.SetKey(userinput.A, true)
	kbd.SetKey(userinput.ShiftLeft, true)

	in := kc.GetKeysDown(&kbd)
	test.ExpectSuccess(t, in.KeyDown(userinput.A.Usage()))
	test.ExpectFailure(t, in.KeyDown(userinput.B.Usage()))
	test.ExpectEquality(t, in.Modifier, userinput.ShiftLeft.Modifier())
	test.ExpectFailure(t, in.KeyDown(userinput.ShiftLeft.Usage()))
}

func TestKeyboardNil(t *testing.T) {
	kc := sampler.NewKeyboardController(nil)
	var kbd userinput.KeyboardSnapshot
	kbd.SetKey(userinput.Z, true)
	test.ExpectEquality(t, kc.GetButtons(&kbd), hid.ControllerButtons(0))
	test.ExpectEquality(t, kc.GetLeftStick(&kbd), hid.JoystickPosition{})
	test.ExpectEquality(t, kc.GetHotkeyButtons(nil), hid.HotkeyButtons(0))
}

func gamepad() (bindings.Config, userinput.JoystickList) {
	cfg := bindings.DefaultGamepad(0, hid.Player1)
	cfg.DeadzoneLeft = 0.1
	return cfg, userinput.JoystickList{{Attached: true, DeviceName: "test pad"}}
}

func TestJoystickButtons(t *testing.T) {
	cfg, js := gamepad()
	jc := sampler.NewJoystickController(cfg, js)

	test.ExpectEquality(t, jc.GetButtons(), hid.ControllerButtons(0))

	js[0].Buttons[1] = true
	js[0].Hats[0] = userinput.HatUp | userinput.HatRight
	test.ExpectEquality(t, jc.GetButtons(), hid.ButtonA|hid.ButtonDpadUp)

	// ZL is bound to axis 2. the threshold is 0.5 and must be exceeded
	js[0].Axes[2] = 0.5
	test.ExpectEquality(t, jc.GetButtons()&hid.ButtonZL, hid.ControllerButtons(0))
	js[0].Axes[2] = 0.6
	test.ExpectEquality(t, jc.GetButtons()&hid.ButtonZL, hid.ButtonZL)

	// negative deflection also activates
	js[0].Axes[2] = 0
	js[0].Axes[5] = -0.8
	test.ExpectEquality(t, jc.GetButtons()&hid.ButtonZR, hid.ButtonZR)
}

func TestJoystickDisconnected(t *testing.T) {
	cfg, js := gamepad()
	js[0].Buttons[0] = true
	js[0].Axes[0] = 1.0
	js[0].Attached = false

	jc := sampler.NewJoystickController(cfg, js)
	test.ExpectEquality(t, jc.GetButtons(), hid.ControllerButtons(0))
	test.ExpectEquality(t, jc.GetLeftStick(), hid.JoystickPosition{})

	// device index with no joystick
	cfg.Index = 5
	jc = sampler.NewJoystickController(cfg, js)
	test.ExpectEquality(t, jc.GetButtons(), hid.ControllerButtons(0))
	test.ExpectEquality(t, jc.GetHotkeyButtons(), hid.HotkeyButtons(0))
}

func TestJoystickSticks(t *testing.T) {
	cfg, js := gamepad()
	jc := sampler.NewJoystickController(cfg, js)

	js[0].Axes[0] = 0.9
	js[0].Axes[1] = -0.9
	test.ExpectEquality(t, jc.GetLeftStick(), hid.JoystickPosition{Dx: 29490, Dy: 29490})

	// inside the deadzone
	js[0].Axes[0] = 0.1
	js[0].Axes[1] = 0.05
	test.ExpectEquality(t, jc.GetLeftStick(), hid.JoystickPosition{})

	// full deflection is clamped
	js[0].Axes[0] = -1.0
	js[0].Axes[1] = 1.0
	test.ExpectEquality(t, jc.GetLeftStick(), hid.JoystickPosition{Dx: -hid.StickMax, Dy: -hid.StickMax})

	// out of range values and NaN
	js[0].Axes[3] = 1.5
	js[0].Axes[4] = math.NaN()
	test.ExpectEquality(t, jc.GetRightStick(), hid.JoystickPosition{Dx: hid.StickMax})
}

func TestJoystickStickNotAxis(t *testing.T) {
	cfg, js := gamepad()
	cfg.Gamepad.SetInput(bindings.LeftStickY, userinput.Button(3))
	jc := sampler.NewJoystickController(cfg, js)

	js[0].Axes[0] = 1.0
	js[0].Axes[1] = 1.0
	test.ExpectEquality(t, jc.GetLeftStick(), hid.JoystickPosition{})
}

func TestJoystickHotkeys(t *testing.T) {
	cfg, js := gamepad()
	cfg.Gamepad.SetInput(bindings.HotkeyToggleVsync, userinput.Button(10))
	jc := sampler.NewJoystickController(cfg, js)

	test.ExpectEquality(t, jc.GetHotkeyButtons(), hid.HotkeyButtons(0))
	js[0].Buttons[10] = true
	test.ExpectEquality(t, jc.GetHotkeyButtons(), hid.HotkeyToggleVsync)
}
