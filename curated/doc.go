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

// Package curated wraps the plain Go error type with errors that remember the
// pattern they were created with. A curated error can then be identified by
// that pattern rather than by comparing error strings.
//
// Errors are created with Errorf(), which takes the same arguments as
// fmt.Errorf(). Patterns should be declared as package level constants so that
// callers can test for them:
//
//	const UnsupportedBackend = "shell: unsupported graphics backend: %s"
//
//	err := curated.Errorf(UnsupportedBackend, "vulkan")
//	if curated.Is(err, UnsupportedBackend) {
//		...
//	}
//
// Has() is like Is() but will search the entire chain of curated errors,
// following any curated error passed as a placeholder value.
//
//	f := curated.Errorf("capture: invalid binding for %s: %v", "left.l", err)
//	curated.Has(f, UnsupportedBackend) // true
//	curated.Is(f, UnsupportedBackend)  // false
//
// IsAny() answers whether the error was created by Errorf() at all. Uncurated
// errors should generally be considered unexpected.
//
// The Error() implementation removes duplicate adjacent parts from the
// message, a part being a substring separated by ": ". So an error wrapped
// twice with the same prefix:
//
//	bindings: bindings: file not found
//
// is printed as:
//
//	bindings: file not found
//
// Curated errors also implement Unwrap() so that the errors package functions
// work with any error values used as placeholders.
package curated
