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
	"github.com/padshell/padshell/userinput"
)

// Window is the host window as required by the shell.
type Window interface {
	// MakeContextCurrent and ReleaseContext bind and unbind the graphics
	// context to the calling OS thread
	MakeContextCurrent() error
	ReleaseContext() error

	// called only from the render loop
	SwapBuffers()
	Viewport(width, height int)

	// ProcessEvents sends pending host events to the channel. Events that
	// cannot be sent without blocking are dropped
	ProcessEvents(events chan<- userinput.Event)

	Size() (width, height int)
	SetTitle(title string)
	Fullscreen() bool
	SetFullscreen(fullscreen bool)

	Keyboard() userinput.KeyboardState

	// Mouse and Joysticks may be called from any goroutine
	Mouse() userinput.MouseState
	Joysticks() userinput.Joysticks
}
