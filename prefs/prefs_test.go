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

package prefs_test

import (
	"testing"

	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/prefs"
	"github.com/padshell/padshell/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, v.String(), "true")

	// strings other than "true" are false
	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.Get().(bool), true)

	nv, err := v.Toggle()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, nv, false)

	err = v.Set(10)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(60))
	test.ExpectEquality(t, v.Get().(int), 60)
	test.ExpectSuccess(t, v.Set(" 50 "))
	test.ExpectEquality(t, v.String(), "50")
	test.ExpectFailure(t, v.Set("fifty"))
	test.ExpectEquality(t, v.Get().(int), 50)
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set(0.05))
	test.ExpectEquality(t, v.Get().(float64), 0.05)
	test.ExpectEquality(t, v.String(), "0.050")
	test.ExpectSuccess(t, v.Set("0.5"))
	test.ExpectEquality(t, v.Get().(float64), 0.5)
	test.ExpectFailure(t, v.Set(true))
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, v.Set("opengl"))
	test.ExpectEquality(t, v.Get().(string), "opengl")
	test.ExpectSuccess(t, v.Set(100))
	test.ExpectEquality(t, v.String(), "100")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) <= 0 {
			return curated.Errorf("fps must be positive")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(60))
	test.ExpectEquality(t, post, 60)

	// pre hook prevents value being stored and the post hook being called
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 60)
	test.ExpectEquality(t, post, 60)
}

func TestRegistry(t *testing.T) {
	reg := prefs.NewRegistry()

	var enabled prefs.Bool
	var fps prefs.Int
	test.ExpectSuccess(t, reg.Add("keyboard.enabled", &enabled))
	test.ExpectSuccess(t, reg.Add("fps", &fps))

	err := reg.Add("fps", &fps)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	test.ExpectSuccess(t, reg.Set("keyboard.enabled", true))
	test.ExpectSuccess(t, reg.Set("fps", "60"))
	test.ExpectEquality(t, enabled.Get().(bool), true)

	v, err := reg.Get("fps")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.(int), 60)

	err = reg.Set("missing", 1)
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))

	w := &test.Writer{}
	reg.Write(w)
	test.ExpectEquality(t, w.String(), "fps :: 60\nkeyboard.enabled :: true\n")

	test.ExpectSuccess(t, reg.Reset())
	test.ExpectEquality(t, enabled.Get().(bool), false)
}
