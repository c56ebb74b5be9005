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

// Package settings collects the start-up configuration of the shell from
// three sources, in increasing order of priority: an optional TOML file in
// the configuration directory, environment variables with the PADSHELL_
// prefix, and command line flags.
//
// Keys are dotted. The environment variable for a key is the upper case key
// with dots replaced by underscores. For example, keyboard.enabled is read
// from PADSHELL_KEYBOARD_ENABLED.
//
// Values that can change while the shell is running are copied into a
// prefs.Registry with Populate(). Everything else is read once with the
// accessor functions.
package settings
