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

package settings_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/prefs"
	"github.com/padshell/padshell/settings"
	"github.com/padshell/padshell/test"
	"github.com/spf13/pflag"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	settings.AddFlags(flags)
	test.DemandSuccess(t, flags.Parse(args))
	return flags
}

// registry with the live keys
func newRegistry(t *testing.T) (*prefs.Registry, *prefs.Int, *prefs.Bool, *prefs.Bool) {
	t.Helper()
	var fps prefs.Int
	var keyboard, vsync prefs.Bool
	r := prefs.NewRegistry()
	test.DemandSuccess(t, r.Add(settings.KeyFPS, &fps))
	test.DemandSuccess(t, r.Add(settings.KeyKeyboardEnabled, &keyboard))
	test.DemandSuccess(t, r.Add(settings.KeyVsync, &vsync))
	return r, &fps, &keyboard, &vsync
}

func TestDefaults(t *testing.T) {
	s, err := settings.Load(nil, "")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, s.FPS(), 60)
	test.ExpectEquality(t, s.Backend(), "opengl")
	w, h := s.WindowSize()
	test.ExpectEquality(t, w, 1280)
	test.ExpectEquality(t, h, 720)
	test.ExpectFailure(t, s.LogEcho())
	test.ExpectFailure(t, s.Statsview())

	r, fps, keyboard, vsync := newRegistry(t)
	test.ExpectSuccess(t, s.Populate(r))
	test.ExpectEquality(t, fps.Get().(int), 60)
	test.ExpectEquality(t, keyboard.Get().(bool), true)
	test.ExpectEquality(t, vsync.Get().(bool), true)
}

func TestMissingConfigFile(t *testing.T) {
	s, err := settings.Load(nil, filepath.Join(t.TempDir(), settings.ConfigFile))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.FPS(), 60)
}

func TestConfigFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), settings.ConfigFile)
	data := `
fps = 30
backend = "vulkan"

[window]
width = 1920

[keyboard]
enabled = false
`
	test.DemandSuccess(t, os.WriteFile(pth, []byte(data), 0o600))

	s, err := settings.Load(newFlags(t), pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.FPS(), 30)
	test.ExpectEquality(t, s.Backend(), "vulkan")
	w, h := s.WindowSize()
	test.ExpectEquality(t, w, 1920)
	test.ExpectEquality(t, h, 720)

	r, fps, keyboard, _ := newRegistry(t)
	test.ExpectSuccess(t, s.Populate(r))
	test.ExpectEquality(t, fps.Get().(int), 30)
	test.ExpectEquality(t, keyboard.Get().(bool), false)
}

func TestMalformedConfigFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), settings.ConfigFile)
	test.DemandSuccess(t, os.WriteFile(pth, []byte("fps = = 30"), 0o600))

	_, err := settings.Load(nil, pth)
	test.ExpectSuccess(t, curated.Is(err, settings.SettingsLoad))
}

func TestPriority(t *testing.T) {
	pth := filepath.Join(t.TempDir(), settings.ConfigFile)
	test.DemandSuccess(t, os.WriteFile(pth, []byte("fps = 30\nbackend = \"vulkan\"\n"), 0o600))

	// the environment overrides the file
	t.Setenv("PADSHELL_FPS", "50")
	t.Setenv("PADSHELL_KEYBOARD_ENABLED", "false")

	s, err := settings.Load(newFlags(t), pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.FPS(), 50)
	test.ExpectEquality(t, s.Backend(), "vulkan")

	r, fps, keyboard, _ := newRegistry(t)
	test.ExpectSuccess(t, s.Populate(r))
	test.ExpectEquality(t, fps.Get().(int), 50)
	test.ExpectEquality(t, keyboard.Get().(bool), false)

	// flags override the environment
	s, err = settings.Load(newFlags(t, "--fps", "120", "--backend", "software"), pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.FPS(), 120)
	test.ExpectEquality(t, s.Backend(), "software")
}

func TestInputFile(t *testing.T) {
	s, err := settings.Load(newFlags(t, "--input", "bindings.toml"), "")
	test.DemandSuccess(t, err)
	pth, err := s.InputFile()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, "bindings.toml")
}

func TestPopulateErrors(t *testing.T) {
	t.Setenv("PADSHELL_FPS", "fast")

	s, err := settings.Load(nil, "")
	test.DemandSuccess(t, err)

	r, fps, _, vsync := newRegistry(t)
	test.DemandSuccess(t, fps.Set(25))
	err = s.Populate(r)
	test.ExpectSuccess(t, curated.Is(err, settings.SettingsPopulate))
	test.ExpectEquality(t, fps.Get().(int), 25)

	// other keys are still populated
	test.ExpectEquality(t, vsync.Get().(bool), true)

	// keys missing from the registry are skipped
	t.Setenv("PADSHELL_FPS", "30")
	s, err = settings.Load(nil, "")
	test.DemandSuccess(t, err)
	var keyboard prefs.Bool
	r = prefs.NewRegistry()
	test.DemandSuccess(t, r.Add(settings.KeyKeyboardEnabled, &keyboard))
	test.ExpectSuccess(t, s.Populate(r))
	test.ExpectEquality(t, keyboard.Get().(bool), true)
}
