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

package userinput

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/padshell/padshell/curated"
)

// InputKind classifies a ControllerInputID.
type InputKind int

// List of valid InputKind values.
const (
	InputNone InputKind = iota
	InputButton
	InputAxis
	InputHat
)

// The number of buttons, axes and hats that can be bound.
const (
	NumButtons = 21
	NumAxes    = 6
	NumHats    = 3
)

// ControllerInputID identifies a single physical input of a joystick: a
// button, an axis or one direction of a hat switch.
//
// The zero value is an unbound input.
type ControllerInputID struct {
	Kind      InputKind
	Index     int
	Direction HatDirection
}

// Button returns the ControllerInputID for button n.
func Button(n int) ControllerInputID {
	return ControllerInputID{Kind: InputButton, Index: n}
}

// Axis returns the ControllerInputID for axis n.
func Axis(n int) ControllerInputID {
	return ControllerInputID{Kind: InputAxis, Index: n}
}

// Hat returns the ControllerInputID for direction d of hat n.
func Hat(n int, d HatDirection) ControllerInputID {
	return ControllerInputID{Kind: InputHat, Index: n, Direction: d}
}

// the label for an unbound input.
const unbound = "Unbound"

// String returns labels of the form "Button3", "Axis2" and "Hat0Up".
func (id ControllerInputID) String() string {
	switch id.Kind {
	case InputButton:
		return fmt.Sprintf("Button%d", id.Index)
	case InputAxis:
		return fmt.Sprintf("Axis%d", id.Index)
	case InputHat:
		return fmt.Sprintf("Hat%d%s", id.Index, id.Direction)
	}
	return unbound
}

// Valid returns true if the ID is within the bindable range for its kind.
// An unbound ID is not valid.
func (id ControllerInputID) Valid() bool {
	switch id.Kind {
	case InputButton:
		return id.Index >= 0 && id.Index < NumButtons
	case InputAxis:
		return id.Index >= 0 && id.Index < NumAxes
	case InputHat:
		return id.Index >= 0 && id.Index < NumHats && id.Direction > HatNone && id.Direction <= HatDirRight
	}
	return false
}

// IsAxis returns true if the ID is a valid axis.
func (id ControllerInputID) IsAxis() bool {
	return id.Kind == InputAxis && id.Valid()
}

// Sentinal error returned by ParseControllerInputID().
const UnrecognisedControllerInput = "userinput: unrecognised controller input: %s"

// ParseControllerInputID is the inverse of ControllerInputID.String().
// Matching is case insensitive. Indexes outside the bindable range are an
// error.
func ParseControllerInputID(s string) (ControllerInputID, error) {
	l := strings.ToLower(strings.TrimSpace(s))

	if l == strings.ToLower(unbound) {
		return ControllerInputID{}, nil
	}

	var id ControllerInputID
	var rest string

	switch {
	case strings.HasPrefix(l, "button"):
		id.Kind = InputButton
		rest = l[len("button"):]
	case strings.HasPrefix(l, "axis"):
		id.Kind = InputAxis
		rest = l[len("axis"):]
	case strings.HasPrefix(l, "hat"):
		id.Kind = InputHat
		rest = l[len("hat"):]

		// split the index from the direction
		i := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
		if i <= 0 {
			return ControllerInputID{}, curated.Errorf(UnrecognisedControllerInput, s)
		}
		for d := HatDirUp; d <= HatDirRight; d++ {
			if rest[i:] == strings.ToLower(d.String()) {
				id.Direction = d
			}
		}
		rest = rest[:i]
	default:
		return ControllerInputID{}, curated.Errorf(UnrecognisedControllerInput, s)
	}

	n, err := strconv.Atoi(rest)
	if err != nil {
		return ControllerInputID{}, curated.Errorf(UnrecognisedControllerInput, s)
	}
	id.Index = n

	if !id.Valid() {
		return ControllerInputID{}, curated.Errorf(UnrecognisedControllerInput, s)
	}

	return id, nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (id ControllerInputID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (id *ControllerInputID) UnmarshalText(text []byte) error {
	v, err := ParseControllerInputID(string(text))
	if err != nil {
		return err
	}
	*id = v
	return nil
}
