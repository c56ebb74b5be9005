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
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/padshell/padshell/assert"
	"github.com/padshell/padshell/bindings"
	"github.com/padshell/padshell/capture"
	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/emulation"
	"github.com/padshell/padshell/hid"
	"github.com/padshell/padshell/logger"
	"github.com/padshell/padshell/userinput"
)

// Sentinal error returned by NewShell() if the device requires a graphics
// backend that the shell does not support.
const UnsupportedBackend = "shell: unsupported graphics backend: %s"

// the length of the host event and service queues.
const (
	eventQueueLen   = 64
	serviceQueueLen = 16
)

// the time the main loop sleeps between iterations.
const mainLoopSleep = time.Millisecond

// the period between title updates.
const titlePeriod = time.Second

// Options for NewShell(). The zero value is valid.
type Options struct {
	// defaults to the system clock
	Clock clock.Clock

	// defaults to the values from NewPreferences()
	Prefs *Preferences
}

// Shell connects the host window to the emulated device.
type Shell struct {
	window Window
	device emulation.Device
	list   *bindings.List
	prefs  *Preferences
	clock  clock.Clock

	session *capture.Session

	// functions to be run on the main loop
	service chan func()

	// host events sent by the window
	events chan userinput.Event

	// the goroutine running the main loop
	owner assert.Owner

	// closed when the main loop has ended
	done chan struct{}

	closing atomic.Bool
	resize  atomic.Bool
	focused atomic.Bool
	width   atomic.Int32
	height  atomic.Int32

	// title handoff from the render loop to the main loop
	title      atomic.Pointer[string]
	titleReady atomic.Bool

	// hotkeys of all players on the previous tick. only used by the main loop
	prevHotkeys hid.HotkeyButtons
}

// NewShell is the preferred method of initialisation for the Shell type.
//
// The device must use the OpenGL backend.
func NewShell(window Window, device emulation.Device, list *bindings.List, opts Options) (*Shell, error) {
	if device.Backend() != emulation.OpenGL {
		return nil, curated.Errorf(UnsupportedBackend, device.Backend())
	}

	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Prefs == nil {
		opts.Prefs = NewPreferences()
	}

	sh := &Shell{
		window:  window,
		device:  device,
		list:    list,
		prefs:   opts.Prefs,
		clock:   opts.Clock,
		service: make(chan func(), serviceQueueLen),
		events:  make(chan userinput.Event, eventQueueLen),
		done:    make(chan struct{}),
	}

	sh.session = capture.NewSession(window, sh, opts.Clock)

	w, h := window.Size()
	sh.width.Store(int32(w))
	sh.height.Store(int32(h))
	sh.focused.Store(true)

	device.SetVsync(sh.prefs.Vsync.Get().(bool))

	return sh, nil
}

// Session returns the capture session. Results of captures are delivered on
// the main loop.
func (sh *Shell) Session() *capture.Session {
	return sh.session
}

// Editor returns a new controller editor using the shell's player list and
// capture session.
func (sh *Shell) Editor() *capture.Editor {
	return capture.NewEditor(sh.list, sh.session)
}

// Close asks both loops to end. It can be called from any goroutine.
func (sh *Shell) Close() {
	sh.closing.Store(true)
}

// Closing returns true if the shell has been asked to close.
func (sh *Shell) Closing() bool {
	return sh.closing.Load()
}

// Invoke implements the capture.Invoker interface. The function is run on the
// main loop. If called from the main loop the function is run immediately.
func (sh *Shell) Invoke(f func()) {
	if sh.owner.IsOwner() {
		f()
		return
	}
	select {
	case <-sh.done:
		logger.Log(logger.Allow, "shell", "dropped service function: main loop has ended")
		return
	default:
	}
	select {
	case sh.service <- f:
	case <-sh.done:
		logger.Log(logger.Allow, "shell", "dropped service function: main loop has ended")
	}
}

// Run the shell. The render loop is started on a new goroutine and the main
// loop is run on the calling goroutine. Run returns when both loops have
// ended, either because the window has been closed or because the context
// has been cancelled.
func (sh *Shell) Run(ctx context.Context) error {
	sh.owner.Claim()
	defer sh.owner.Release()

	// the graphics context is made current again by the render loop
	if err := sh.window.ReleaseContext(); err != nil {
		return err
	}

	var wg sync.WaitGroup
	renderErr := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		renderErr <- sh.renderLoop()
	}()

	sh.mainLoop(ctx)

	// make sure the render loop ends even if the main loop ended because of
	// the context
	sh.closing.Store(true)
	sh.session.Cancel()
	sh.session.Wait()
	wg.Wait()

	// results of captures that ended during shutdown
	sh.runService()

	close(sh.done)

	return <-renderErr
}

func (sh *Shell) mainLoop(ctx context.Context) {
	for !sh.closing.Load() {
		select {
		case <-ctx.Done():
			sh.closing.Store(true)
			continue
		default:
		}

		sh.runService()

		sh.window.ProcessEvents(sh.events)
		sh.drainEvents()

		if !sh.closing.Load() {
			sh.UpdateFrame()
			sh.consumeTitle()
		}

		sh.clock.Sleep(mainLoopSleep)
	}
}

// runService runs all functions queued by Invoke().
func (sh *Shell) runService() {
	for {
		select {
		case f := <-sh.service:
			f()
		default:
			return
		}
	}
}

func (sh *Shell) drainEvents() {
	for {
		select {
		case ev := <-sh.events:
			sh.HandleUserInput(ev)
		default:
			return
		}
	}
}

// publishTitle is called by the render loop.
func (sh *Shell) publishTitle(title string) {
	sh.title.Store(&title)
	sh.titleReady.Store(true)
}

// consumeTitle is called by the main loop.
func (sh *Shell) consumeTitle() {
	if sh.titleReady.CompareAndSwap(true, false) {
		if t := sh.title.Load(); t != nil {
			sh.window.SetTitle(*t)
		}
	}
}
