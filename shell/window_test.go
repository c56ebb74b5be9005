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
	"sync"

	"github.com/padshell/padshell/capture"
	"github.com/padshell/padshell/userinput"
)

var _ Window = (*window)(nil)

// the window is also the source of devices for binding capture
var _ capture.Host = Window(nil)

// window is a test implementation of the Window interface.
type window struct {
	crit sync.Mutex

	width, height int
	title         string
	fullscreen    bool
	viewports     int
	swaps         int

	keyboard  userinput.KeyboardSnapshot
	mouse     userinput.MouseSnapshot
	joysticks userinput.JoystickList

	// events sent by the next call to ProcessEvents()
	pending []userinput.Event

	// the number of calls to ProcessEvents() before a quit event is sent.
	// zero means never
	quitAfter int
	processed int

	// Keyboard() panics if this is true
	panics bool
}

func newWindow() *window {
	return &window{width: 1280, height: 720}
}

func (w *window) MakeContextCurrent() error {
	return nil
}

func (w *window) ReleaseContext() error {
	return nil
}

func (w *window) SwapBuffers() {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.swaps++
}

func (w *window) Viewport(width, height int) {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.viewports++
}

func (w *window) ProcessEvents(events chan<- userinput.Event) {
	w.crit.Lock()
	defer w.crit.Unlock()

	w.processed++
	if w.quitAfter > 0 && w.processed >= w.quitAfter {
		w.pending = append(w.pending, userinput.EventQuit{})
	}

	for _, ev := range w.pending {
		select {
		case events <- ev:
		default:
		}
	}
	w.pending = w.pending[:0]
}

func (w *window) Size() (int, int) {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.width, w.height
}

func (w *window) SetTitle(title string) {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.title = title
}

func (w *window) Fullscreen() bool {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.fullscreen
}

func (w *window) SetFullscreen(fullscreen bool) {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.fullscreen = fullscreen
}

func (w *window) Keyboard() userinput.KeyboardState {
	w.crit.Lock()
	defer w.crit.Unlock()
	if w.panics {
		panic("keyboard unavailable")
	}
	k := w.keyboard
	return &k
}

func (w *window) Mouse() userinput.MouseState {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.mouse
}

func (w *window) Joysticks() userinput.Joysticks {
	w.crit.Lock()
	defer w.crit.Unlock()
	return append(userinput.JoystickList(nil), w.joysticks...)
}

func (w *window) update(f func(w *window)) {
	w.crit.Lock()
	defer w.crit.Unlock()
	f(w)
}
