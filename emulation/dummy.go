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

package emulation

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/padshell/padshell/hid"
)

// the longest time WaitFifo() will block.
const fifoTimeout = 8 * time.Millisecond

// the rate at which the dummy device produces frames.
const dummyFrameRate = 60

// ControllerState is the most recent input sent to a virtual controller.
type ControllerState struct {
	Buttons hid.ControllerButtons
	Left    hid.JoystickPosition
	Right   hid.JoystickPosition
	Updates int
}

// Dummy is a Device that emulates nothing. It produces frames at a fixed
// rate and keeps the most recent input sent to it.
type Dummy struct {
	clock   clock.Clock
	backend Backend
	stats   *Statistics

	frames   *clock.Ticker
	disposed atomic.Bool
	vsync    atomic.Bool

	presented atomic.Int64
	signalled atomic.Int64

	crit        sync.Mutex
	controllers map[hid.ControllerID]*ControllerState
	keyboard    hid.KeyboardInput
	touch       []hid.TouchPoint
}

// NewDummy is the preferred method of initialisation for the Dummy type. A
// nil clock uses the system clock.
func NewDummy(backend Backend, clk clock.Clock) *Dummy {
	if clk == nil {
		clk = clock.New()
	}
	d := &Dummy{
		clock:       clk,
		backend:     backend,
		stats:       NewStatistics(clk),
		frames:      clk.Ticker(time.Second / dummyFrameRate),
		controllers: make(map[hid.ControllerID]*ControllerState),
	}
	d.vsync.Store(true)
	return d
}

// Backend implements the Device interface.
func (d *Dummy) Backend() Backend {
	return d.backend
}

// WaitFifo implements the Device interface.
func (d *Dummy) WaitFifo() bool {
	if d.disposed.Load() {
		return false
	}
	timeout := d.clock.Timer(fifoTimeout)
	defer timeout.Stop()
	select {
	case <-d.frames.C:
		return true
	case <-timeout.C:
		return false
	}
}

// ProcessFrame implements the Device interface.
func (d *Dummy) ProcessFrame() {
	d.stats.FrameGame()
}

// PresentFrame implements the Device interface.
func (d *Dummy) PresentFrame() {
	d.presented.Add(1)
}

// SignalVsync implements the Device interface.
func (d *Dummy) SignalVsync() {
	d.signalled.Add(1)
}

// DisposeGpu implements the Device interface.
func (d *Dummy) DisposeGpu() {
	if d.disposed.CompareAndSwap(false, true) {
		d.frames.Stop()
	}
}

// Disposed returns true if DisposeGpu() has been called.
func (d *Dummy) Disposed() bool {
	return d.disposed.Load()
}

// Presented returns the number of frames presented and the number of vsync
// signals.
func (d *Dummy) Presented() (frames int64, vsyncs int64) {
	return d.presented.Load(), d.signalled.Load()
}

// Vsync implements the Device interface.
func (d *Dummy) Vsync() bool {
	return d.vsync.Load()
}

// SetVsync implements the Device interface.
func (d *Dummy) SetVsync(v bool) {
	d.vsync.Store(v)
}

// Statistics implements the Device interface.
func (d *Dummy) Statistics() *Statistics {
	return d.stats
}

// HID implements the Device interface.
func (d *Dummy) HID() HID {
	return dummyHID{d}
}

// TitleName implements the Device interface.
func (d *Dummy) TitleName() string {
	return "Dummy"
}

// TitleID implements the Device interface.
func (d *Dummy) TitleID() string {
	return "0100000000000000"
}

// ControllerState returns the most recent input sent to the controller.
func (d *Dummy) ControllerState(id hid.ControllerID) (ControllerState, bool) {
	d.crit.Lock()
	defer d.crit.Unlock()
	c, ok := d.controllers[id]
	if !ok {
		return ControllerState{}, false
	}
	return *c, true
}

// Keyboard returns the most recent keyboard report.
func (d *Dummy) Keyboard() hid.KeyboardInput {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.keyboard
}

// TouchPoints returns the most recent touch points.
func (d *Dummy) TouchPoints() []hid.TouchPoint {
	d.crit.Lock()
	defer d.crit.Unlock()
	return slices.Clone(d.touch)
}

type dummyHID struct {
	d *Dummy
}

func (h dummyHID) Controller(id hid.ControllerID) Controller {
	return dummyController{d: h.d, id: id}
}

func (h dummyHID) WriteKeyboard(k hid.KeyboardInput) {
	h.d.crit.Lock()
	defer h.d.crit.Unlock()
	h.d.keyboard = k
}

func (h dummyHID) SetTouchPoints(points ...hid.TouchPoint) {
	h.d.crit.Lock()
	defer h.d.crit.Unlock()
	h.d.touch = append(h.d.touch[:0], points...)
}

type dummyController struct {
	d  *Dummy
	id hid.ControllerID
}

func (c dummyController) SendInput(buttons hid.ControllerButtons, left, right hid.JoystickPosition) {
	c.d.crit.Lock()
	defer c.d.crit.Unlock()
	s, ok := c.d.controllers[c.id]
	if !ok {
		s = &ControllerState{}
		c.d.controllers[c.id] = s
	}
	s.Buttons = buttons
	s.Left = left
	s.Right = right
	s.Updates++
}

func (c dummyController) UpdateStickButtons(left, right hid.JoystickPosition) hid.ControllerButtons {
	return hid.StickButtons(left, right)
}
