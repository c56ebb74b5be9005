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

// Package userinput describes input from the real hardware that the user of
// the emulator is using to control the emulated console.
//
// It defines the canonical names for keyboard keys (the Key type) and for
// the buttons, axes and hats of joysticks (the ControllerInputID type).
// Names reported by the host windowing system are translated to these types
// with ResolveKeyName(), and the first activated input of a joystick is
// found with FirstActivated().
//
// Host devices are seen through the snapshot interfaces KeyboardState,
// JoystickState, Joysticks and MouseState. These are implemented by the GUI
// package in use (SDL during development, so there will be a bias towards
// that system) and by fakes in tests. Events from the host arrive as one of
// the Event types.
package userinput
