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

// HatState is the raw bit field reported by a joystick hat switch. More than
// one direction bit can be set when the hat is held on a diagonal.
type HatState uint8

// List of hat bits.
const (
	HatCentered HatState = 0x00
	HatUp       HatState = 0x01
	HatRight    HatState = 0x02
	HatDown     HatState = 0x04
	HatLeft     HatState = 0x08
)

// HatDirection is a single cardinal direction of a hat switch.
type HatDirection int

// List of valid HatDirection values. The order of the values is the order
// of priority used by HatState.Direction().
const (
	HatNone HatDirection = iota
	HatDirUp
	HatDirDown
	HatDirLeft
	HatDirRight
)

var hatDirectionNames = [...]string{"", "Up", "Down", "Left", "Right"}

func (d HatDirection) String() string {
	if d < HatNone || d > HatDirRight {
		return ""
	}
	return hatDirectionNames[d]
}

// Direction decodes the hat state to a single direction. When the hat is
// held on a diagonal the direction with the highest priority is reported.
// The priority order is Up, Down, Left, Right.
func (h HatState) Direction() HatDirection {
	switch {
	case h&HatUp == HatUp:
		return HatDirUp
	case h&HatDown == HatDown:
		return HatDirDown
	case h&HatLeft == HatLeft:
		return HatDirLeft
	case h&HatRight == HatRight:
		return HatDirRight
	}
	return HatNone
}
