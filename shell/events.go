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
	"github.com/padshell/padshell/logger"
	"github.com/padshell/padshell/userinput"
)

// HandleUserInput responds to a single host event. It is called by the main
// loop for every event sent by the window.
func (sh *Shell) HandleUserInput(ev userinput.Event) {
	switch ev := ev.(type) {
	case userinput.EventQuit:
		sh.closing.Store(true)

	case userinput.EventKeyboard:
		if !ev.Down || ev.Repeat {
			return
		}

		// key presses during a capture belong to the capture
		if sh.session.Waiting() {
			sh.session.KeyPressed(ev.Key)
			return
		}

		key := userinput.ResolveKeyName(ev.Key)
		toggle := key == userinput.F11 || (ev.Mod&userinput.KeyModAlt == userinput.KeyModAlt && key == userinput.Enter)

		if sh.window.Fullscreen() {
			if key == userinput.Escape || toggle {
				sh.window.SetFullscreen(false)
			}
		} else {
			if key == userinput.Escape {
				sh.closing.Store(true)
			}
			if toggle {
				sh.window.SetFullscreen(true)
			}
		}

	case userinput.EventWindowResize:
		sh.width.Store(int32(ev.Width))
		sh.height.Store(int32(ev.Height))
		sh.resize.Store(true)

	case userinput.EventWindowFocus:
		sh.focused.Store(ev.Focused)

	case userinput.EventJoystickAdded:
		logger.Logf(logger.Allow, "shell", "joystick %d connected: %s", ev.Index, ev.Name)

	case userinput.EventJoystickRemoved:
		logger.Logf(logger.Allow, "shell", "joystick %d disconnected", ev.Index)

	default:
		logger.Logf(logger.Allow, "shell", "unhandled event: %T", ev)
	}
}
