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
	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/prefs"
)

// Sentinal error returned when setting an invalid frame rate.
const InvalidFrameRate = "shell: invalid frame rate: %v"

// Preferences for the shell. Values are read by the loops every iteration
// and can be changed at any time.
type Preferences struct {
	// forward the host keyboard to the emulated keyboard
	EnableKeyboard prefs.Bool

	// the rate at which frames are presented
	TargetFPS prefs.Int

	// initial vsync state of the device
	Vsync prefs.Bool
}

// the default target frame rate.
const defaultTargetFPS = 60

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	p.TargetFPS.SetHookPre(func(v prefs.Value) error {
		if fps, ok := v.(int); !ok || fps <= 0 {
			return curated.Errorf(InvalidFrameRate, v)
		}
		return nil
	})
	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.EnableKeyboard.Set(true)
	p.TargetFPS.Set(defaultTargetFPS)
	p.Vsync.Set(true)
}

// Register the preferences with a registry.
func (p *Preferences) Register(r *prefs.Registry) error {
	if err := r.Add("keyboard.enabled", &p.EnableKeyboard); err != nil {
		return err
	}
	if err := r.Add("fps", &p.TargetFPS); err != nil {
		return err
	}
	if err := r.Add("vsync", &p.Vsync); err != nil {
		return err
	}
	return nil
}
