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

// Package emulation defines the interfaces through which the shell drives
// the emulated console. The console itself is not part of this module. The
// Dummy type is a stand-in device that lets the shell run without one.
package emulation

import (
	"strings"

	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/hid"
)

// Backend is the graphics backend required by a device.
type Backend int

// List of valid Backend values.
const (
	OpenGL Backend = iota
	Vulkan
	Software
)

var backendNames = []string{"opengl", "vulkan", "software"}

func (b Backend) String() string {
	if b < OpenGL || b > Software {
		return "unknown"
	}
	return backendNames[b]
}

// Sentinal error returned by ParseBackend().
const UnrecognisedBackend = "emulation: unrecognised backend: %s"

// ParseBackend is the inverse of Backend.String(). Matching is case
// insensitive.
func ParseBackend(s string) (Backend, error) {
	for i, n := range backendNames {
		if strings.EqualFold(n, s) {
			return Backend(i), nil
		}
	}
	return OpenGL, curated.Errorf(UnrecognisedBackend, s)
}

// Device is the emulated console as seen by the frame loops.
//
// The GPU methods (WaitFifo, ProcessFrame, PresentFrame, SignalVsync and
// DisposeGpu) are only called from the render goroutine. The remaining
// methods may be called from any goroutine.
type Device interface {
	Backend() Backend

	// WaitFifo blocks for a short time waiting for GPU work. Returns true if
	// there is work for ProcessFrame()
	WaitFifo() bool
	ProcessFrame()
	PresentFrame()
	SignalVsync()
	DisposeGpu()

	Vsync() bool
	SetVsync(bool)

	Statistics() *Statistics
	HID() HID

	TitleName() string
	TitleID() string
}

// HID is the virtual input subsystem of the emulated console.
type HID interface {
	Controller(id hid.ControllerID) Controller
	WriteKeyboard(hid.KeyboardInput)
	SetTouchPoints(points ...hid.TouchPoint)
}

// Controller is a single virtual controller.
type Controller interface {
	SendInput(buttons hid.ControllerButtons, left, right hid.JoystickPosition)

	// UpdateStickButtons returns the stick direction buttons implied by the
	// stick positions
	UpdateStickButtons(left, right hid.JoystickPosition) hid.ControllerButtons
}
