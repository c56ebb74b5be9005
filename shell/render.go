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

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/padshell/padshell/logger"
	"github.com/padshell/padshell/version"
)

func (sh *Shell) renderLoop() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	err := sh.window.MakeContextCurrent()
	if err != nil {
		sh.closing.Store(true)
		sh.device.DisposeGpu()
		return err
	}
	defer func() {
		if err := sh.window.ReleaseContext(); err != nil {
			logger.Log(logger.Allow, "shell", err)
		}
	}()

	// GPU resources are disposed of while the context is still current
	defer sh.device.DisposeGpu()

	fps := sh.prefs.TargetFPS.Get().(int)
	pacer := NewPacer(fps)

	last := sh.clock.Now()
	lastTitle := last

	for !sh.closing.Load() {
		if sh.device.WaitFifo() {
			sh.device.ProcessFrame()
		}

		if sh.resize.CompareAndSwap(true, false) {
			sh.window.Viewport(int(sh.width.Load()), int(sh.height.Load()))
		}

		if f := sh.prefs.TargetFPS.Get().(int); f != fps {
			fps = f
			pacer.SetRate(fps)
		}

		now := sh.clock.Now()
		elapsed := now.Sub(last)
		last = now

		if pacer.Add(elapsed) {
			sh.device.PresentFrame()
			sh.window.SwapBuffers()
			sh.device.Statistics().FrameHost()
			sh.device.SignalVsync()

			if now.Sub(lastTitle) >= titlePeriod {
				lastTitle = now
				sh.publishTitle(sh.Title())
			}
		}
	}

	return nil
}

// Title returns the text for the window title.
func (sh *Shell) Title() string {
	var b strings.Builder
	b.WriteString(version.ApplicationName)

	if n := strings.TrimSpace(sh.device.TitleName()); n != "" {
		b.WriteString(" | ")
		b.WriteString(n)
	}
	if id := strings.TrimSpace(sh.device.TitleID()); id != "" {
		b.WriteString(" | ")
		b.WriteString(strings.ToUpper(id))
	}

	vsync := "Off"
	if sh.device.Vsync() {
		vsync = "On"
	}

	stats := sh.device.Statistics()
	fmt.Fprintf(&b, " | Host FPS: %.1f | Game FPS: %.1f | Game Vsync: %s", stats.HostFPS(), stats.GameFPS(), vsync)

	return b.String()
}
