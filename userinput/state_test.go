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

package userinput_test

import (
	"testing"

	"github.com/padshell/padshell/test"
	"github.com/padshell/padshell/userinput"
)

func TestHatDirectionPriority(t *testing.T) {
	cases := []struct {
		state userinput.HatState
		dir   userinput.HatDirection
	}{
		{userinput.HatCentered, userinput.HatNone},
		{userinput.HatUp, userinput.HatDirUp},
		{userinput.HatDown, userinput.HatDirDown},
		{userinput.HatLeft, userinput.HatDirLeft},
		{userinput.HatRight, userinput.HatDirRight},
		{userinput.HatUp | userinput.HatRight, userinput.HatDirUp},
		{userinput.HatUp | userinput.HatLeft, userinput.HatDirUp},
		{userinput.HatDown | userinput.HatRight, userinput.HatDirDown},
		{userinput.HatDown | userinput.HatLeft, userinput.HatDirDown},
		{userinput.HatLeft | userinput.HatRight, userinput.HatDirLeft},
		{userinput.HatUp | userinput.HatDown | userinput.HatLeft | userinput.HatRight, userinput.HatDirUp},
	}

	for _, c := range cases {
		test.ExpectEquality(t, c.state.Direction(), c.dir, c.state)
	}
}

func TestHatExclusive(t *testing.T) {
	// exactly one direction of a hat is active for every possible state
	for s := range 16 {
		js := &userinput.JoystickSnapshot{Attached: true}
		js.Hats[0] = userinput.HatState(s)

		active := 0
		for _, d := range []userinput.HatDirection{userinput.HatDirUp, userinput.HatDirDown, userinput.HatDirLeft, userinput.HatDirRight} {
			if userinput.IsActivated(js, userinput.Hat(0, d), 0.5) {
				active++
			}
		}

		if s == 0 {
			test.ExpectEquality(t, active, 0, s)
		} else {
			test.ExpectEquality(t, active, 1, s)
		}
	}
}

func TestIsActivated(t *testing.T) {
	js := &userinput.JoystickSnapshot{Attached: true}
	js.Buttons[4] = true
	js.Axes[2] = -0.6
	js.Axes[5] = 0.4
	js.Hats[1] = userinput.HatLeft

	test.ExpectSuccess(t, userinput.IsActivated(js, userinput.Button(4), 0.5))
	test.ExpectFailure(t, userinput.IsActivated(js, userinput.Button(3), 0.5))

	// the magnitude of the axis is compared with the threshold
	test.ExpectSuccess(t, userinput.IsActivated(js, userinput.Axis(2), 0.5))
	test.ExpectFailure(t, userinput.IsActivated(js, userinput.Axis(5), 0.5))
	test.ExpectSuccess(t, userinput.IsActivated(js, userinput.Axis(5), 0.3))

	test.ExpectSuccess(t, userinput.IsActivated(js, userinput.Hat(1, userinput.HatDirLeft), 0.5))
	test.ExpectFailure(t, userinput.IsActivated(js, userinput.Hat(1, userinput.HatDirRight), 0.5))

	test.ExpectFailure(t, userinput.IsActivated(js, userinput.ControllerInputID{}, 0.5))
	test.ExpectFailure(t, userinput.IsActivated(nil, userinput.Button(4), 0.5))

	// disconnected joysticks report nothing
	js.Attached = false
	test.ExpectFailure(t, userinput.IsActivated(js, userinput.Button(4), 0.5))
}

func TestFirstActivated(t *testing.T) {
	js := &userinput.JoystickSnapshot{Attached: true}

	_, ok := userinput.FirstActivated(js, 0.5)
	test.ExpectFailure(t, ok)

	js.Hats[0] = userinput.HatDown | userinput.HatRight
	id, ok := userinput.FirstActivated(js, 0.5)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, id, userinput.Hat(0, userinput.HatDirDown))

	// axes take precedence over hats
	js.Axes[3] = 0.9
	id, _ = userinput.FirstActivated(js, 0.5)
	test.ExpectEquality(t, id, userinput.Axis(3))

	// buttons take precedence over axes
	js.Buttons[7] = true
	js.Buttons[12] = true
	id, _ = userinput.FirstActivated(js, 0.5)
	test.ExpectEquality(t, id, userinput.Button(7))

	js.Attached = false
	_, ok = userinput.FirstActivated(js, 0.5)
	test.ExpectFailure(t, ok)
}

func TestJoystickList(t *testing.T) {
	l := userinput.JoystickList{
		{Attached: true, DeviceName: "pad"},
	}
	test.ExpectEquality(t, l.NumJoysticks(), 1)
	test.ExpectSuccess(t, l.Joystick(0).Connected())
	test.ExpectEquality(t, l.Joystick(0).Name(), "pad")
	test.ExpectFailure(t, l.Joystick(2).Connected())
	test.ExpectFailure(t, l.Joystick(-1).Connected())
}

func TestKeyboardSnapshot(t *testing.T) {
	var kbd userinput.KeyboardSnapshot
	kbd.SetKey(userinput.W, true)
	kbd.SetKey(userinput.Unknown, true)
	test.ExpectSuccess(t, kbd.IsKeyDown(userinput.W))
	test.ExpectFailure(t, kbd.IsKeyDown(userinput.Unknown))
	test.ExpectFailure(t, kbd.IsKeyDown(userinput.Key(-1)))

	c := kbd
	kbd.Clear()
	test.ExpectFailure(t, kbd.IsKeyDown(userinput.W))
	test.ExpectSuccess(t, c.IsKeyDown(userinput.W))
}
