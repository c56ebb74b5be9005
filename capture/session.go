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

package capture

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/padshell/padshell/bindings"
	"github.com/padshell/padshell/logger"
	"github.com/padshell/padshell/userinput"
)

// Invoker runs a function on the goroutine that owns the user interface.
type Invoker interface {
	Invoke(func())
}

// InvokerFunc is an adaptor allowing the use of ordinary functions as an
// Invoker.
type InvokerFunc func(func())

// Invoke implements the Invoker interface.
func (f InvokerFunc) Invoke(fn func()) {
	f(fn)
}

// Host gives the capture worker access to the host devices. The methods
// are called from the worker goroutine and must be safe for concurrent use.
type Host interface {
	Joysticks() userinput.Joysticks
	Mouse() userinput.MouseState
}

// Request describes a single capture.
type Request struct {
	Slot  bindings.Slot
	Kind  bindings.Kind
	Index int

	// threshold for axis activation when capturing from a gamepad
	Threshold float64

	// called through the Invoker when the capture ends
	Done func(Result)
}

// Result of a capture. Label is empty if the capture was cancelled.
type Result struct {
	Slot      bindings.Slot
	Label     string
	Cancelled bool
}

// the interval between polls of the host devices.
const pollInterval = time.Millisecond

// the number of key presses that can be queued during a capture.
const keyQueueLen = 16

// Session coordinates binding captures.
type Session struct {
	devices Host
	invoker Invoker
	clock   clock.Clock

	// the latch is held from Begin() until the result has been delivered
	latch atomic.Bool

	// key names forwarded from host key events
	keys chan string

	crit sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession(devices Host, invoker Invoker, clk clock.Clock) *Session {
	if clk == nil {
		clk = clock.New()
	}
	return &Session{
		devices: devices,
		invoker: invoker,
		clock:   clk,
		keys:    make(chan string, keyQueueLen),
	}
}

// Waiting returns true if a capture is in progress.
func (s *Session) Waiting() bool {
	return s.latch.Load()
}

// KeyPressed forwards the name of a key that has been pressed on the host.
// Key presses are ignored when no capture is in progress.
func (s *Session) KeyPressed(name string) {
	if !s.Waiting() {
		return
	}
	select {
	case s.keys <- name:
	default:
		logger.Logf(logger.Allow, "capture", "dropped key press (%s)", name)
	}
}

// Begin a capture. Returns false if a capture is already in progress, in
// which case the request is ignored.
func (s *Session) Begin(req Request) bool {
	if !s.latch.CompareAndSwap(false, true) {
		return false
	}

	// discard key presses left over from an earlier capture
	for len(s.keys) > 0 {
		<-s.keys
	}

	s.crit.Lock()
	s.stop = make(chan struct{})
	stop := s.stop
	s.crit.Unlock()

	// the click that started the capture may still be held. the mouse only
	// cancels after all buttons have been seen released
	armed := true
	if s.devices != nil {
		if m := s.devices.Mouse(); m != nil {
			armed = !m.AnyButton()
		}
	}

	ticker := s.clock.Ticker(pollInterval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()
		s.finish(req, s.wait(req, ticker, stop, armed))
	}()

	return true
}

// Cancel the capture in progress, if there is one. The result is still
// delivered through the Invoker.
func (s *Session) Cancel() {
	s.crit.Lock()
	defer s.crit.Unlock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

// Wait blocks until the capture worker has ended.
func (s *Session) Wait() {
	s.wg.Wait()
}

// finish marshals the result and the release of the latch onto the user
// interface goroutine.
func (s *Session) finish(req Request, res Result) {
	res.Slot = req.Slot

	s.crit.Lock()
	s.stop = nil
	s.crit.Unlock()

	s.invoker.Invoke(func() {
		s.latch.Store(false)
		if req.Done != nil {
			req.Done(res)
		}
	})
}

func (s *Session) wait(req Request, ticker *clock.Ticker, stop <-chan struct{}, armed bool) Result {
	cancelled := Result{Cancelled: true}

	for {
		select {
		case <-stop:
			return cancelled

		case name := <-s.keys:
			if req.Kind == bindings.Gamepad {
				return cancelled
			}
			k := userinput.ResolveKeyName(name)
			if k == userinput.Escape {
				return cancelled
			}
			return Result{Label: k.String()}

		case <-ticker.C:
			if s.devices == nil {
				continue
			}

			if m := s.devices.Mouse(); m != nil {
				if !armed {
					armed = !m.AnyButton()
				} else if m.AnyButton() {
					return cancelled
				}
			}

			if req.Kind != bindings.Gamepad {
				continue
			}

			js := s.devices.Joysticks()
			if js == nil {
				continue
			}
			if id, ok := userinput.FirstActivated(js.Joystick(req.Index), req.Threshold); ok {
				return Result{Label: id.String()}
			}
		}
	}
}
