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

package sdlwindow

import (
	"math"

	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/logger"
	"github.com/padshell/padshell/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// scancodeTable maps every scancode with a name that resolves to a key.
func scancodeTable() map[sdl.Scancode]userinput.Key {
	tbl := make(map[sdl.Scancode]userinput.Key)
	for sc := sdl.Scancode(0); sc < sdl.NUM_SCANCODES; sc++ {
		name := sdl.GetScancodeName(sc)
		if name == "" {
			continue // for loop
		}
		if k := userinput.ResolveKeyName(name); k != userinput.Unknown {
			tbl[sc] = k
		}
	}
	return tbl
}

// openJoystick opens the joystick with the SDL device index and places it
// in the first free slot. Returns the slot and the name of the joystick.
func (win *Window) openJoystick(device int) (int, string, bool) {
	joy := sdl.JoystickOpen(device)
	if joy == nil || !joy.Attached() {
		return 0, "", false
	}

	// SDL sends an added event for joysticks that were opened during
	// creation of the window
	for i, j := range win.joysticks {
		if j != nil && j.InstanceID() == joy.InstanceID() {
			return i, j.Name(), false
		}
	}

	idx := len(win.joysticks)
	for i, j := range win.joysticks {
		if j == nil {
			idx = i
			break // for loop
		}
	}
	if idx == len(win.joysticks) {
		win.joysticks = append(win.joysticks, joy)
	} else {
		win.joysticks[idx] = joy
	}

	logger.Logf(logger.Allow, "sdl", "joystick %d: %s", idx, joy.Name())

	return idx, joy.Name(), true
}

// closeJoystick closes the joystick with the SDL instance ID and frees its
// slot.
func (win *Window) closeJoystick(id sdl.JoystickID) (int, bool) {
	for i, j := range win.joysticks {
		if j != nil && j.InstanceID() == id {
			j.Close()
			win.joysticks[i] = nil
			return i, true
		}
	}
	return 0, false
}

// normaliseAxis converts an SDL axis value to the range -1.0 to 1.0.
func normaliseAxis(v int16) float64 {
	f := float64(v) / math.MaxInt16
	if f < -1.0 {
		f = -1.0
	}
	return f
}

// joystickStates returns a snapshot of each joystick. The list has an entry
// for every slot.
func joystickStates(joysticks []*sdl.Joystick) userinput.JoystickList {
	l := make(userinput.JoystickList, len(joysticks))
	for i, joy := range joysticks {
		if joy == nil || !joy.Attached() {
			continue // for loop
		}
		s := &l[i]
		s.Attached = true
		s.DeviceName = joy.Name()
		for b := 0; b < min(joy.NumButtons(), userinput.NumButtons); b++ {
			s.Buttons[b] = joy.Button(b) != 0
		}
		for a := 0; a < min(joy.NumAxes(), userinput.NumAxes); a++ {
			s.Axes[a] = normaliseAxis(joy.Axis(a))
		}
		for h := 0; h < min(joy.NumHats(), userinput.NumHats); h++ {
			s.Hats[h] = userinput.HatState(joy.Hat(h))
		}
	}
	return l
}

// ProbeJoysticks returns a snapshot of the connected joysticks without
// creating a window. It must not be called while a Window exists.
func ProbeJoysticks() (userinput.JoystickList, error) {
	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}
	defer sdl.Quit()

	win := &Window{}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		win.openJoystick(i)
	}
	defer func() {
		for _, joy := range win.joysticks {
			if joy != nil {
				joy.Close()
			}
		}
	}()

	sdl.JoystickUpdate()
	return joystickStates(win.joysticks), nil
}

// poll refreshes the device snapshots.
func (win *Window) poll() {
	var keyboard userinput.KeyboardSnapshot
	state := sdl.GetKeyboardState()
	for sc, k := range win.keys {
		if int(sc) < len(state) && state[sc] != 0 {
			keyboard.SetKey(k, true)
		}
	}

	x, y, buttons := sdl.GetMouseState()
	mouse := userinput.MouseSnapshot{
		X:     int(x),
		Y:     int(y),
		Left:  buttons&sdl.Button(sdl.BUTTON_LEFT) != 0,
		Right: buttons&sdl.Button(sdl.BUTTON_RIGHT) != 0,
		Other: buttons&^(sdl.Button(sdl.BUTTON_LEFT)|sdl.Button(sdl.BUTTON_RIGHT)) != 0,
	}

	joyStates := joystickStates(win.joysticks)

	win.crit.Lock()
	defer win.crit.Unlock()
	win.keyboard = keyboard
	win.mouse = mouse
	win.joyStates = joyStates
}
