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
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
)

// the period over which frame rates are measured.
const measurePeriod = time.Second

// counter measures the rate of a single kind of frame.
type counter struct {
	crit  sync.Mutex
	count int
	start time.Time

	// float64 bits
	rate atomic.Uint64
}

func (c *counter) frame(now time.Time) {
	c.crit.Lock()
	defer c.crit.Unlock()

	c.count++

	elapsed := now.Sub(c.start)
	if elapsed < measurePeriod {
		return
	}

	c.rate.Store(math.Float64bits(float64(c.count) / elapsed.Seconds()))
	c.count = 0
	c.start = now
}

func (c *counter) reset(now time.Time) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.count = 0
	c.start = now
	c.rate.Store(0)
}

func (c *counter) fps() float64 {
	return math.Float64frombits(c.rate.Load())
}

// Statistics measures the host and game frame rates of a device. The rates
// are updated once per measurement period. Statistics is safe for concurrent
// use.
type Statistics struct {
	clock clock.Clock
	host  counter
	game  counter
}

// NewStatistics is the preferred method of initialisation for the Statistics
// type. A nil clock uses the system clock.
func NewStatistics(clk clock.Clock) *Statistics {
	if clk == nil {
		clk = clock.New()
	}
	s := &Statistics{clock: clk}
	s.Reset()
	return s
}

// FrameHost records a frame presented by the host.
func (s *Statistics) FrameHost() {
	s.host.frame(s.clock.Now())
}

// FrameGame records a frame produced by the emulated console.
func (s *Statistics) FrameGame() {
	s.game.frame(s.clock.Now())
}

// HostFPS returns the most recent host frame rate.
func (s *Statistics) HostFPS() float64 {
	return s.host.fps()
}

// GameFPS returns the most recent game frame rate.
func (s *Statistics) GameFPS() float64 {
	return s.game.fps()
}

// Reset the measurements.
func (s *Statistics) Reset() {
	now := s.clock.Now()
	s.host.reset(now)
	s.game.reset(now)
}
