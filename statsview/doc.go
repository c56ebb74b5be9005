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

// Package statsview is an optional package that is built only when the
// "statsview" build tag is present. Otherwise, the Launch() function does
// nothing and Available() returns false.
//
// It provides an HTTP server offering runtime statistics, which is useful
// for watching the allocation behaviour of the frame loops. Underlying
// functionality is provided by "github.com/go-echarts/statsview".
//
// After launch, graphical statistics are viewable at:
//
//	<address>/debug/statsview
//
// And standard Go pprof statistics at:
//
//	<address>/debug/pprof/
package statsview
