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

// Package version reports the version of the application. A release build
// sets the version number at link time:
//
//	go build -ldflags "-X github.com/padshell/padshell/version.number=v0.1.0"
//
// Other builds are described as "unreleased" if VCS information is
// available and "local" if it is not.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the application as it appears in window
// titles and log messages.
const ApplicationName = "Padshell"

// set by the linker for release builds
var number string

var (
	version  string
	revision string
)

// Version returns the version string and the VCS revision. The boolean is
// true if this is a release build.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name, version and revision in a single
// line.
func String() string {
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	version, revision = describe(number, settings)
}

// describe derives the version and revision from the linked version number
// and the build settings.
func describe(number string, settings []debug.BuildSetting) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	for _, v := range settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			vcsRevision = v.Value
		case "vcs.modified":
			vcsModified = v.Value == "true"
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	default:
		return "local", rev
	}
}
