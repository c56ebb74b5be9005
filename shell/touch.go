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

import "github.com/padshell/padshell/hid"

// MapTouch converts a position in a window of the given size to a point on
// the emulated touch screen. The emulated screen is presented in the window
// at the largest size that keeps its aspect ratio, centred, with bars along
// two edges. Positions on the bars are not on the touch screen and return
// false.
func MapTouch(width, height, x, y int) (hid.TouchPoint, bool) {
	if width <= 0 || height <= 0 {
		return hid.TouchPoint{}, false
	}

	sw := width
	sh := height
	if width > height*hid.TouchScreenWidth/hid.TouchScreenHeight {
		sw = height * hid.TouchScreenWidth / hid.TouchScreenHeight
	} else {
		sh = width * hid.TouchScreenHeight / hid.TouchScreenWidth
	}
	if sw <= 0 || sh <= 0 {
		return hid.TouchPoint{}, false
	}

	startX := (width - sw) / 2
	startY := (height - sh) / 2

	if x < startX || y < startY || x >= startX+sw || y >= startY+sh {
		return hid.TouchPoint{}, false
	}

	mx := (x - startX) * hid.TouchScreenWidth / sw
	my := (y - startY) * hid.TouchScreenHeight / sh

	return hid.NewTouchPoint(uint32(mx), uint32(my)), true
}
