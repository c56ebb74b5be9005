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
	"fmt"
	"strconv"
	"strings"

	"github.com/padshell/padshell/bindings"
	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/userinput"
)

// DeviceDisabled is the ID of the device that disables a player.
const DeviceDisabled = "disabled"

// Device is an entry in the list of input devices a player can use.
type Device struct {
	ID    string
	Label string
}

// Devices lists the input devices that can be selected for a player. The
// list always starts with the disabled device and the keyboard, followed by
// every connected joystick.
func Devices(joysticks userinput.Joysticks) []Device {
	d := []Device{
		{ID: DeviceDisabled, Label: "Disabled"},
		{ID: "keyboard/0", Label: "Keyboard/0"},
	}
	if joysticks == nil {
		return d
	}
	for i := range joysticks.NumJoysticks() {
		js := joysticks.Joystick(i)
		if !js.Connected() {
			continue
		}
		d = append(d, Device{
			ID:    fmt.Sprintf("controller/%d", i),
			Label: fmt.Sprintf("Controller/%d (%s)", i, js.Name()),
		})
	}
	return d
}

// Sentinal error returned by ParseDevice().
const UnrecognisedDevice = "capture: unrecognised device: %s"

// ParseDevice splits a device ID into its kind and index. The boolean result
// is false for the disabled device.
func ParseDevice(id string) (bindings.Kind, int, bool, error) {
	if id == DeviceDisabled {
		return bindings.Keyboard, 0, false, nil
	}

	kind, idx, ok := strings.Cut(id, "/")
	if !ok {
		return bindings.Keyboard, 0, false, curated.Errorf(UnrecognisedDevice, id)
	}

	n, err := strconv.Atoi(idx)
	if err != nil || n < 0 {
		return bindings.Keyboard, 0, false, curated.Errorf(UnrecognisedDevice, id)
	}

	switch kind {
	case "keyboard":
		if n != 0 {
			return bindings.Keyboard, 0, false, curated.Errorf(UnrecognisedDevice, id)
		}
		return bindings.Keyboard, 0, true, nil
	case "controller":
		return bindings.Gamepad, n, true, nil
	}

	return bindings.Keyboard, 0, false, curated.Errorf(UnrecognisedDevice, id)
}
