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

package hid_test

import (
	"testing"

	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/hid"
	"github.com/padshell/padshell/test"
)

func TestButtonString(t *testing.T) {
	test.ExpectEquality(t, hid.ControllerButtons(0).String(), "none")
	test.ExpectEquality(t, (hid.ButtonA | hid.ButtonZR).String(), "A+ZR")
	test.ExpectEquality(t, (hid.ButtonSR | hid.ButtonDpadUp).String(), "DpadUp+SR")
	test.ExpectEquality(t, hid.HotkeyToggleVsync.String(), "ToggleVsync")
}

func TestClampStick(t *testing.T) {
	test.ExpectEquality(t, hid.ClampStick(32768), int32(hid.StickMax))
	test.ExpectEquality(t, hid.ClampStick(-32768), int32(-hid.StickMax))
	test.ExpectEquality(t, hid.ClampStick(100), int32(100))
}

func TestStickButtons(t *testing.T) {
	b := hid.StickButtons(hid.JoystickPosition{Dx: hid.StickMax, Dy: 0}, hid.JoystickPosition{})
	test.ExpectEquality(t, b, hid.ButtonLStickRight)

	b = hid.StickButtons(hid.JoystickPosition{Dx: -20000, Dy: 20000}, hid.JoystickPosition{Dy: -hid.StickMax})
	test.ExpectEquality(t, b, hid.ButtonLStickLeft|hid.ButtonLStickUp|hid.ButtonRStickDown)

	// deflection of exactly half the range is not enough
	b = hid.StickButtons(hid.JoystickPosition{Dx: hid.StickMax / 2}, hid.JoystickPosition{})
	test.ExpectEquality(t, b, hid.ControllerButtons(0))
}

func TestKeyboardInput(t *testing.T) {
	var k hid.KeyboardInput
	k.SetKey(0x04)
	k.SetKey(0x52)
	k.SetKey(0xe1)
	k.SetKey(0)

	test.ExpectSuccess(t, k.KeyDown(0x04))
	test.ExpectSuccess(t, k.KeyDown(0x52))
	test.ExpectSuccess(t, k.KeyDown(0xe1))
	test.ExpectFailure(t, k.KeyDown(0x05))
	test.ExpectFailure(t, k.KeyDown(0))
	test.ExpectEquality(t, k.Keys[0], uint32(1<<4))
	test.ExpectEquality(t, k.Keys[2], uint32(1<<(0x52-64)))

	var o hid.KeyboardInput
	o.Modifier = 0x02
	o.SetKey(0x05)
	k.Merge(o)
	test.ExpectSuccess(t, k.KeyDown(0x05))
	test.ExpectEquality(t, k.Modifier, uint32(0x02))
}

func TestTouchPoint(t *testing.T) {
	p := hid.NewTouchPoint(640, 360)
	test.ExpectEquality(t, p, hid.TouchPoint{X: 640, Y: 360, DiameterX: 10, DiameterY: 10, Angle: 90})
}

func TestControllerID(t *testing.T) {
	for id := hid.Player1; id < hid.UnknownController; id++ {
		p, err := hid.ParseControllerID(id.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, id)
	}

	p, err := hid.ParseControllerID("player3")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, hid.Player3)

	_, err = hid.ParseControllerID("Unknown")
	test.ExpectSuccess(t, curated.Is(err, hid.UnrecognisedControllerID))
	test.ExpectEquality(t, hid.ControllerID(99).String(), "Unknown")
}

func TestControllerType(t *testing.T) {
	for ct := hid.ProController; ct <= hid.NpadRight; ct++ {
		p, err := hid.ParseControllerType(ct.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, ct)
	}

	test.ExpectSuccess(t, hid.NpadLeft.HasSideButtons())
	test.ExpectSuccess(t, hid.NpadRight.HasSideButtons())
	test.ExpectFailure(t, hid.NpadPair.HasSideButtons())
	test.ExpectFailure(t, hid.ProController.HasSideButtons())

	var ct hid.ControllerType
	test.ExpectSuccess(t, ct.UnmarshalText([]byte("npadpair")))
	test.ExpectEquality(t, ct, hid.NpadPair)

	err := ct.UnmarshalText([]byte("joycon"))
	test.ExpectSuccess(t, curated.Is(err, hid.UnrecognisedControllerType))
}
