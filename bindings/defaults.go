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

package bindings

import (
	"github.com/padshell/padshell/hid"
	"github.com/padshell/padshell/userinput"
)

// Default deadzone and trigger threshold for new gamepad configs.
const (
	DefaultDeadzone         = 0.05
	DefaultTriggerThreshold = 0.5
)

// DefaultKeyboard returns the default keyboard config for the player.
func DefaultKeyboard(player hid.ControllerID) Config {
	return Config{
		Index:          0,
		Kind:           Keyboard,
		ControllerType: hid.NpadPair,
		PlayerIndex:    player,
		Keyboard: &KeyboardBindings{
			Left: KeyboardLeft{
				StickUp:     userinput.W,
				StickDown:   userinput.S,
				StickLeft:   userinput.A,
				StickRight:  userinput.D,
				StickButton: userinput.F,
				DpadUp:      userinput.Up,
				DpadDown:    userinput.Down,
				DpadLeft:    userinput.Left,
				DpadRight:   userinput.Right,
				Minus:       userinput.Minus,
				L:           userinput.E,
				ZL:          userinput.Q,
				SL:          userinput.R,
				SR:          userinput.Unknown,
			},
			Right: KeyboardRight{
				StickUp:     userinput.I,
				StickDown:   userinput.K,
				StickLeft:   userinput.J,
				StickRight:  userinput.L,
				StickButton: userinput.H,
				A:           userinput.Z,
				B:           userinput.X,
				X:           userinput.C,
				Y:           userinput.V,
				Plus:        userinput.Plus,
				R:           userinput.U,
				ZR:          userinput.O,
				SL:          userinput.Unknown,
				SR:          userinput.Y,
			},
			Hotkeys: KeyboardHotkeys{
				ToggleVsync: userinput.Tab,
			},
		},
	}
}

// DefaultGamepad returns the default config for the gamepad at index.
func DefaultGamepad(index int, player hid.ControllerID) Config {
	return Config{
		Index:          index,
		Kind:           Gamepad,
		ControllerType: hid.ProController,
		PlayerIndex:    player,
		Gamepad: &GamepadBindings{
			Left: GamepadLeft{
				StickX:      userinput.Axis(0),
				StickY:      userinput.Axis(1),
				StickButton: userinput.Button(8),
				DpadUp:      userinput.Hat(0, userinput.HatDirUp),
				DpadDown:    userinput.Hat(0, userinput.HatDirDown),
				DpadLeft:    userinput.Hat(0, userinput.HatDirLeft),
				DpadRight:   userinput.Hat(0, userinput.HatDirRight),
				Minus:       userinput.Button(6),
				L:           userinput.Button(4),
				ZL:          userinput.Axis(2),
			},
			Right: GamepadRight{
				StickX:      userinput.Axis(3),
				StickY:      userinput.Axis(4),
				StickButton: userinput.Button(9),
				A:           userinput.Button(1),
				B:           userinput.Button(0),
				X:           userinput.Button(3),
				Y:           userinput.Button(2),
				Plus:        userinput.Button(7),
				R:           userinput.Button(5),
				ZR:          userinput.Axis(5),
			},
		},
		DeadzoneLeft:     DefaultDeadzone,
		DeadzoneRight:    DefaultDeadzone,
		TriggerThreshold: DefaultTriggerThreshold,
	}
}
