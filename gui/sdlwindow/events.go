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
	"github.com/padshell/padshell/logger"
	"github.com/padshell/padshell/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// ProcessEvents implements the shell.Window interface. Events are sent
// without blocking. An event that cannot be sent is dropped and logged.
func (win *Window) ProcessEvents(events chan<- userinput.Event) {
	send := func(ev userinput.Event, desc string) {
		select {
		case events <- ev:
		default:
			logger.Logf(logger.Allow, "sdl", "dropped %s event", desc)
		}
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			send(userinput.EventQuit{}, "quit")

		case *sdl.KeyboardEvent:
			send(userinput.EventKeyboard{
				Key:    sdl.GetScancodeName(ev.Keysym.Scancode),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
				Mod:    keyMod(ev.Keysym.Mod),
			}, "keyboard")

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				send(userinput.EventWindowResize{
					Width:  int(ev.Data1),
					Height: int(ev.Data2),
				}, "window resize")
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				send(userinput.EventWindowFocus{Focused: true}, "window focus")
			case sdl.WINDOWEVENT_FOCUS_LOST:
				send(userinput.EventWindowFocus{Focused: false}, "window focus")
			}

		case *sdl.JoyDeviceAddedEvent:
			if idx, name, ok := win.openJoystick(int(ev.Which)); ok {
				send(userinput.EventJoystickAdded{Index: idx, Name: name}, "joystick added")
			}

		case *sdl.JoyDeviceRemovedEvent:
			if idx, ok := win.closeJoystick(ev.Which); ok {
				send(userinput.EventJoystickRemoved{Index: idx}, "joystick removed")
			}
		}
	}

	win.poll()
}

// keyMod converts SDL modifier flags to userinput modifiers.
func keyMod(mod uint16) userinput.KeyMod {
	var m userinput.KeyMod
	if mod&sdl.KMOD_SHIFT != 0 {
		m |= userinput.KeyModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		m |= userinput.KeyModCtrl
	}
	if mod&sdl.KMOD_ALT != 0 {
		m |= userinput.KeyModAlt
	}
	return m
}
