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

// Package paths resolves the location of configuration files. The
// ResourcePath() function returns the path to a named resource inside the
// Padshell configuration directory, creating the directory if required.
//
// The location of the configuration directory depends on how the program
// was built. Development builds use a ".padshell" directory in the current
// working directory. Builds with the "release" tag use the "padshell"
// directory inside the user's configuration directory, as reported by
// os.UserConfigDir().
package paths
