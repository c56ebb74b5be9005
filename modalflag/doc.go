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

// Package modalflag handles program modes and the flags for each mode. It
// wraps a pflag.FlagSet, creating a new one for every mode so that each mode
// has its own set of flags.
//
// Arguments are given with NewArgs() and parsed with Parse(). Sub-modes are
// added before calling Parse(). The first sub-mode is the default mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "DEVICES")
//
//	p, err := md.Parse()
//	if p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		fps := md.AddInt("fps", 60, "target frames per second")
//		...
//	}
//
// Modes are matched case insensitively and are always reported in upper
// case. If the first argument is not a recognised sub-mode then the default
// sub-mode is selected and the argument is left for the next call to
// Parse().
//
// Flags are parsed in the GNU style (--flag) and parsing stops at the first
// non-flag argument, so the flags of a sub-mode are never mistaken for flags
// of the parent mode. The underlying FlagSet is available through Flags()
// for use with packages that understand pflag.
package modalflag
