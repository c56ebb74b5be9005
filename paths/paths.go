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

package paths

import (
	"path/filepath"

	"github.com/padshell/padshell/curated"
)

// Sentinal error returned when the configuration directory is unusable.
const NoResourcePath = "paths: %v"

// ResourcePath returns the resource string (representing the resource to
// be loaded) prepended with the configuration directory for the
// build. The subPth argument can be empty.
//
// Neither the existence of the resource nor its validity is checked.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", curated.Errorf(NoResourcePath, err)
	}
	return filepath.Join(base, file), nil
}
