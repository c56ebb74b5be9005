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

package sdlwindow

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/test"
	"github.com/padshell/padshell/userinput"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
)

func TestNormaliseAxis(t *testing.T) {
	test.ExpectEquality(t, normaliseAxis(0), 0.0)
	test.ExpectEquality(t, normaliseAxis(math.MaxInt16), 1.0)
	test.ExpectEquality(t, normaliseAxis(-math.MaxInt16), -1.0)
	test.ExpectEquality(t, normaliseAxis(math.MinInt16), -1.0)
	test.ExpectApproximate(t, normaliseAxis(16384), 0.5, 0.001)
}

func TestKeyMod(t *testing.T) {
	test.ExpectEquality(t, keyMod(0), userinput.KeyModNone)
	test.ExpectEquality(t, keyMod(sdl.KMOD_LSHIFT), userinput.KeyModShift)
	test.ExpectEquality(t, keyMod(sdl.KMOD_RALT), userinput.KeyModAlt)
	test.ExpectEquality(t, keyMod(sdl.KMOD_LCTRL|sdl.KMOD_LALT), userinput.KeyModCtrl|userinput.KeyModAlt)

	// lock keys are not modifiers
	test.ExpectEquality(t, keyMod(sdl.KMOD_NUM|sdl.KMOD_CAPS), userinput.KeyModNone)
}

func TestHatValues(t *testing.T) {
	// SDL hat values are used directly as hat states
	test.ExpectEquality(t, userinput.HatState(sdl.HAT_UP), userinput.HatUp)
	test.ExpectEquality(t, userinput.HatState(sdl.HAT_RIGHT), userinput.HatRight)
	test.ExpectEquality(t, userinput.HatState(sdl.HAT_DOWN), userinput.HatDown)
	test.ExpectEquality(t, userinput.HatState(sdl.HAT_LEFT), userinput.HatLeft)
	test.ExpectEquality(t, userinput.HatState(sdl.HAT_CENTERED), userinput.HatCentered)
}

func TestAbandon(t *testing.T) {
	destroyed := false
	err := abandon(errors.New("no context"), func() error {
		destroyed = true
		return nil
	})
	test.ExpectSuccess(t, destroyed)
	test.ExpectSuccess(t, curated.Is(err, SDLError))
	test.ExpectEquality(t, len(multierr.Errors(err)), 1)

	// the teardown error is kept
	err = abandon(errors.New("no context"), func() error {
		return curated.Errorf(SDLError, errors.New("window busy"))
	})
	errs := multierr.Errors(err)
	test.DemandEquality(t, len(errs), 2)
	test.ExpectSuccess(t, curated.Is(errs[0], SDLError))
	test.ExpectSuccess(t, strings.Contains(errs[1].Error(), "window busy"))
}
