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

// Package prefs holds values that can be changed while the program is
// running and read from any goroutine without further synchronisation.
//
// Each type stores its value atomically. Hooks can be set to run before and
// after a new value is stored. A pre hook returning an error prevents the
// new value from being stored:
//
//	var fps prefs.Int
//	fps.SetHookPre(func(v prefs.Value) error {
//		if v.(int) <= 0 {
//			return curated.Errorf("fps must be positive")
//		}
//		return nil
//	})
//
// Values are gathered into a Registry under dotted keys so that they can be
// populated from the configuration layer by name.
package prefs
