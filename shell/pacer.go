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

import "time"

// Pacer decides when the render loop presents a frame. Elapsed time is
// accumulated and a frame is due when a full frame period has accumulated.
//
// The time carried over after a frame is always less than one frame period.
// After a stall of any length exactly one frame is presented and the loop
// returns to its normal cadence.
type Pacer struct {
	frame time.Duration
	acc   time.Duration
}

// NewPacer is the preferred method of initialisation for the Pacer type.
func NewPacer(fps int) *Pacer {
	p := &Pacer{frame: time.Second / defaultTargetFPS}
	p.SetRate(fps)
	return p
}

// SetRate changes the number of frames per second. Values less than one are
// ignored.
func (p *Pacer) SetRate(fps int) {
	if fps < 1 {
		return
	}
	p.frame = time.Second / time.Duration(fps)
	p.acc = min(p.acc, p.frame-1)
}

// Frame returns the frame period.
func (p *Pacer) Frame() time.Duration {
	return p.frame
}

// Add elapsed time to the pacer. Returns true if a frame should be
// presented.
func (p *Pacer) Add(elapsed time.Duration) bool {
	if elapsed > 0 {
		p.acc += elapsed
	}
	if p.acc < p.frame {
		return false
	}
	p.acc = (p.acc - p.frame) % p.frame
	return true
}
