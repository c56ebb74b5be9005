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

// The logical resolution of the emulated touch screen.
const (
	TouchScreenWidth  = 1280
	TouchScreenHeight = 720
)

// TouchPoint is a single point of contact with the emulated touch screen.
type TouchPoint struct {
	X         uint32
	Y         uint32
	DiameterX uint32
	DiameterY uint32
	Angle     uint32
}

// NewTouchPoint returns a TouchPoint at the coordinates with the contact
// size and angle of a mouse pointer.
func NewTouchPoint(x, y uint32) TouchPoint {
	return TouchPoint{
		X:         x,
		Y:         y,
		DiameterX: 10,
		DiameterY: 10,
		Angle:     90,
	}
}
