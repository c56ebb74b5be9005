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
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/logger"
	"github.com/padshell/padshell/userinput"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
)

// SDLError is the pattern for errors returned by SDL and GL.
const SDLError = "sdl: %v"

// Window is an SDL window with an OpenGL context.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext

	// scancode to key. built once on creation
	keys map[sdl.Scancode]userinput.Key

	// joysticks by slot. a disconnected joystick leaves a nil slot so that
	// the index of the other joysticks does not change
	joysticks []*sdl.Joystick

	crit      sync.Mutex
	keyboard  userinput.KeyboardSnapshot
	mouse     userinput.MouseSnapshot
	joyStates userinput.JoystickList
}

// NewWindow creates the window with the title and size. The GL context is
// current on the calling thread when the function returns.
func NewWindow(title string, width, height int) (*Window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	win := &Window{
		keys: scancodeTable(),
	}

	win.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	win.glContext, err = win.window.GLCreateContext()
	if err != nil {
		return nil, abandon(err, win.Destroy)
	}

	err = win.window.GLMakeCurrent(win.glContext)
	if err != nil {
		return nil, abandon(err, win.Destroy)
	}

	err = gl.Init()
	if err != nil {
		return nil, abandon(err, win.Destroy)
	}
	logger.Logf(logger.Allow, "sdl", "using GL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// presentation is paced by the shell
	err = sdl.GLSetSwapInterval(0)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(0): %v", err)
	}

	gl.Viewport(0, 0, int32(width), int32(height))

	for i := 0; i < sdl.NumJoysticks(); i++ {
		win.openJoystick(i)
	}
	if len(win.joysticks) == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks found")
	}

	win.poll()

	return win, nil
}

// abandon tears down a partially created window. Teardown errors are
// combined with the error that caused it.
func abandon(err error, destroy func() error) error {
	return multierr.Append(curated.Errorf(SDLError, err), destroy())
}

// Destroy closes the joysticks and the window and shuts down SDL. Errors
// are combined.
func (win *Window) Destroy() error {
	var err error

	for i, joy := range win.joysticks {
		if joy != nil {
			joy.Close()
			win.joysticks[i] = nil
		}
	}

	if win.glContext != nil {
		sdl.GLDeleteContext(win.glContext)
		win.glContext = nil
	}

	if win.window != nil {
		err = multierr.Append(err, win.window.Destroy())
		win.window = nil
	}

	sdl.Quit()

	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// MakeContextCurrent implements the shell.Window interface.
func (win *Window) MakeContextCurrent() error {
	if err := win.window.GLMakeCurrent(win.glContext); err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// ReleaseContext implements the shell.Window interface.
func (win *Window) ReleaseContext() error {
	if err := win.window.GLMakeCurrent(nil); err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// SwapBuffers implements the shell.Window interface.
func (win *Window) SwapBuffers() {
	win.window.GLSwap()
}

// Viewport implements the shell.Window interface.
func (win *Window) Viewport(width, height int) {
	w, h := win.window.GLGetDrawableSize()
	if w <= 0 || h <= 0 {
		w, h = int32(width), int32(height)
	}
	gl.Viewport(0, 0, w, h)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Size implements the shell.Window interface.
func (win *Window) Size() (int, int) {
	w, h := win.window.GetSize()
	return int(w), int(h)
}

// SetTitle implements the shell.Window interface.
func (win *Window) SetTitle(title string) {
	win.window.SetTitle(title)
}

// Fullscreen implements the shell.Window interface.
func (win *Window) Fullscreen() bool {
	return win.window.GetFlags()&sdl.WINDOW_FULLSCREEN_DESKTOP == sdl.WINDOW_FULLSCREEN_DESKTOP
}

// SetFullscreen implements the shell.Window interface.
func (win *Window) SetFullscreen(fullscreen bool) {
	var err error
	if fullscreen {
		err = win.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		err = win.window.SetFullscreen(0)
	}
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "fullscreen: %v", err)
	}
}

// Keyboard implements the shell.Window interface.
func (win *Window) Keyboard() userinput.KeyboardState {
	win.crit.Lock()
	defer win.crit.Unlock()
	k := win.keyboard
	return &k
}

// Mouse implements the shell.Window interface.
func (win *Window) Mouse() userinput.MouseState {
	win.crit.Lock()
	defer win.crit.Unlock()
	return win.mouse
}

// Joysticks implements the shell.Window interface.
func (win *Window) Joysticks() userinput.Joysticks {
	win.crit.Lock()
	defer win.crit.Unlock()
	return append(userinput.JoystickList(nil), win.joyStates...)
}

// String returns a summary of the window state.
func (win *Window) String() string {
	w, h := win.Size()
	return fmt.Sprintf("%dx%d fullscreen=%v", w, h, win.Fullscreen())
}
