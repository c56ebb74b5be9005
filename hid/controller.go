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

package hid

import (
	"strings"

	"github.com/padshell/padshell/curated"
)

// ControllerID identifies the slot of an emulated controller.
type ControllerID int

// List of valid ControllerID values.
const (
	Player1 ControllerID = iota
	Player2
	Player3
	Player4
	Player5
	Player6
	Player7
	Player8
	Handheld
	UnknownController
)

var controllerIDNames = []string{
	"Player1", "Player2", "Player3", "Player4",
	"Player5", "Player6", "Player7", "Player8",
	"Handheld", "Unknown",
}

func (id ControllerID) String() string {
	if id < Player1 || id > UnknownController {
		return controllerIDNames[UnknownController]
	}
	return controllerIDNames[id]
}

// Sentinal errors for parsing controller values.
const (
	UnrecognisedControllerID   = "hid: unrecognised controller id: %s"
	UnrecognisedControllerType = "hid: unrecognised controller type: %s"
)

// ParseControllerID is the inverse of ControllerID.String(). Matching is
// case insensitive. The unknown controller cannot be parsed.
func ParseControllerID(s string) (ControllerID, error) {
	for i, n := range controllerIDNames[:UnknownController] {
		if strings.EqualFold(n, s) {
			return ControllerID(i), nil
		}
	}
	return UnknownController, curated.Errorf(UnrecognisedControllerID, s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (id ControllerID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (id *ControllerID) UnmarshalText(text []byte) error {
	v, err := ParseControllerID(string(text))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// ControllerType is the physical form of the emulated controller.
type ControllerType int

// List of valid ControllerType values.
const (
	ProController ControllerType = iota
	HandheldController
	NpadPair
	NpadLeft
	NpadRight
)

var controllerTypeNames = []string{
	"ProController", "Handheld", "NpadPair", "NpadLeft", "NpadRight",
}

func (t ControllerType) String() string {
	if t < ProController || t > NpadRight {
		return "Unknown"
	}
	return controllerTypeNames[t]
}

// ParseControllerType is the inverse of ControllerType.String(). Matching is
// case insensitive.
func ParseControllerType(s string) (ControllerType, error) {
	for i, n := range controllerTypeNames {
		if strings.EqualFold(n, s) {
			return ControllerType(i), nil
		}
	}
	return ProController, curated.Errorf(UnrecognisedControllerType, s)
}

// HasSideButtons returns true for controller types that expose the SL and SR
// buttons. These are the single halves of a split controller.
func (t ControllerType) HasSideButtons() bool {
	return t == NpadLeft || t == NpadRight
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t ControllerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *ControllerType) UnmarshalText(text []byte) error {
	v, err := ParseControllerType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
