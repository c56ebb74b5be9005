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
	"strconv"
	"strings"

	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/hid"
	"github.com/padshell/padshell/userinput"
)

// Kind is the kind of host device driving an emulated controller.
type Kind int

// List of valid Kind values.
const (
	Keyboard Kind = iota
	Gamepad
)

func (k Kind) String() string {
	switch k {
	case Keyboard:
		return "keyboard"
	case Gamepad:
		return "gamepad"
	}
	return "unknown"
}

// MarshalText implements the encoding.TextMarshaler interface.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "keyboard":
		*k = Keyboard
	case "gamepad":
		*k = Gamepad
	default:
		return curated.Errorf(InvalidConfig, "kind", string(text))
	}
	return nil
}

// KeyboardLeft is the left half of a keyboard binding set.
type KeyboardLeft struct {
	StickUp     userinput.Key `toml:"stick_up"`
	StickDown   userinput.Key `toml:"stick_down"`
	StickLeft   userinput.Key `toml:"stick_left"`
	StickRight  userinput.Key `toml:"stick_right"`
	StickButton userinput.Key `toml:"stick_button"`
	DpadUp      userinput.Key `toml:"dpad_up"`
	DpadDown    userinput.Key `toml:"dpad_down"`
	DpadLeft    userinput.Key `toml:"dpad_left"`
	DpadRight   userinput.Key `toml:"dpad_right"`
	Minus       userinput.Key `toml:"minus"`
	L           userinput.Key `toml:"l"`
	ZL          userinput.Key `toml:"zl"`
	SL          userinput.Key `toml:"sl"`
	SR          userinput.Key `toml:"sr"`
}

// KeyboardRight is the right half of a keyboard binding set.
type KeyboardRight struct {
	StickUp     userinput.Key `toml:"stick_up"`
	StickDown   userinput.Key `toml:"stick_down"`
	StickLeft   userinput.Key `toml:"stick_left"`
	StickRight  userinput.Key `toml:"stick_right"`
	StickButton userinput.Key `toml:"stick_button"`
	A           userinput.Key `toml:"a"`
	B           userinput.Key `toml:"b"`
	X           userinput.Key `toml:"x"`
	Y           userinput.Key `toml:"y"`
	Plus        userinput.Key `toml:"plus"`
	R           userinput.Key `toml:"r"`
	ZR          userinput.Key `toml:"zr"`
	SL          userinput.Key `toml:"sl"`
	SR          userinput.Key `toml:"sr"`
}

// KeyboardHotkeys are the hotkeys of a keyboard binding set.
type KeyboardHotkeys struct {
	ToggleVsync userinput.Key `toml:"toggle_vsync"`
}

// KeyboardBindings is the complete binding set for a keyboard.
type KeyboardBindings struct {
	Left    KeyboardLeft    `toml:"left"`
	Right   KeyboardRight   `toml:"right"`
	Hotkeys KeyboardHotkeys `toml:"hotkeys"`
}

func (b *KeyboardBindings) field(slot Slot) *userinput.Key {
	switch slot {
	case LeftStickUp:
		return &b.Left.StickUp
	case LeftStickDown:
		return &b.Left.StickDown
	case LeftStickLeft:
		return &b.Left.StickLeft
	case LeftStickRight:
		return &b.Left.StickRight
	case LeftStickButton:
		return &b.Left.StickButton
	case LeftDpadUp:
		return &b.Left.DpadUp
	case LeftDpadDown:
		return &b.Left.DpadDown
	case LeftDpadLeft:
		return &b.Left.DpadLeft
	case LeftDpadRight:
		return &b.Left.DpadRight
	case LeftMinus:
		return &b.Left.Minus
	case LeftL:
		return &b.Left.L
	case LeftZL:
		return &b.Left.ZL
	case LeftSL:
		return &b.Left.SL
	case LeftSR:
		return &b.Left.SR
	case RightStickUp:
		return &b.Right.StickUp
	case RightStickDown:
		return &b.Right.StickDown
	case RightStickLeft:
		return &b.Right.StickLeft
	case RightStickRight:
		return &b.Right.StickRight
	case RightStickButton:
		return &b.Right.StickButton
	case RightA:
		return &b.Right.A
	case RightB:
		return &b.Right.B
	case RightX:
		return &b.Right.X
	case RightY:
		return &b.Right.Y
	case RightPlus:
		return &b.Right.Plus
	case RightR:
		return &b.Right.R
	case RightZR:
		return &b.Right.ZR
	case RightSL:
		return &b.Right.SL
	case RightSR:
		return &b.Right.SR
	case HotkeyToggleVsync:
		return &b.Hotkeys.ToggleVsync
	}
	return nil
}

// Key returns the key bound to the slot. The boolean result is false if the
// slot is not a keyboard slot.
func (b *KeyboardBindings) Key(slot Slot) (userinput.Key, bool) {
	if b == nil {
		return userinput.Unknown, false
	}
	if f := b.field(slot); f != nil {
		return *f, true
	}
	return userinput.Unknown, false
}

// SetKey binds the key to the slot. Returns false if the slot is not a
// keyboard slot.
func (b *KeyboardBindings) SetKey(slot Slot, k userinput.Key) bool {
	if f := b.field(slot); f != nil {
		*f = k
		return true
	}
	return false
}

// GamepadLeft is the left half of a gamepad binding set.
type GamepadLeft struct {
	StickX      userinput.ControllerInputID `toml:"stick_x"`
	StickY      userinput.ControllerInputID `toml:"stick_y"`
	StickButton userinput.ControllerInputID `toml:"stick_button"`
	DpadUp      userinput.ControllerInputID `toml:"dpad_up"`
	DpadDown    userinput.ControllerInputID `toml:"dpad_down"`
	DpadLeft    userinput.ControllerInputID `toml:"dpad_left"`
	DpadRight   userinput.ControllerInputID `toml:"dpad_right"`
	Minus       userinput.ControllerInputID `toml:"minus"`
	L           userinput.ControllerInputID `toml:"l"`
	ZL          userinput.ControllerInputID `toml:"zl"`
	SL          userinput.ControllerInputID `toml:"sl"`
	SR          userinput.ControllerInputID `toml:"sr"`
}

// GamepadRight is the right half of a gamepad binding set.
type GamepadRight struct {
	StickX      userinput.ControllerInputID `toml:"stick_x"`
	StickY      userinput.ControllerInputID `toml:"stick_y"`
	StickButton userinput.ControllerInputID `toml:"stick_button"`
	A           userinput.ControllerInputID `toml:"a"`
	B           userinput.ControllerInputID `toml:"b"`
	X           userinput.ControllerInputID `toml:"x"`
	Y           userinput.ControllerInputID `toml:"y"`
	Plus        userinput.ControllerInputID `toml:"plus"`
	R           userinput.ControllerInputID `toml:"r"`
	ZR          userinput.ControllerInputID `toml:"zr"`
	SL          userinput.ControllerInputID `toml:"sl"`
	SR          userinput.ControllerInputID `toml:"sr"`
}

// GamepadHotkeys are the hotkeys of a gamepad binding set.
type GamepadHotkeys struct {
	ToggleVsync userinput.ControllerInputID `toml:"toggle_vsync"`
}

// GamepadBindings is the complete binding set for a gamepad.
type GamepadBindings struct {
	Left    GamepadLeft    `toml:"left"`
	Right   GamepadRight   `toml:"right"`
	Hotkeys GamepadHotkeys `toml:"hotkeys"`
}

func (b *GamepadBindings) field(slot Slot) *userinput.ControllerInputID {
	switch slot {
	case LeftStickX:
		return &b.Left.StickX
	case LeftStickY:
		return &b.Left.StickY
	case LeftStickButton:
		return &b.Left.StickButton
	case LeftDpadUp:
		return &b.Left.DpadUp
	case LeftDpadDown:
		return &b.Left.DpadDown
	case LeftDpadLeft:
		return &b.Left.DpadLeft
	case LeftDpadRight:
		return &b.Left.DpadRight
	case LeftMinus:
		return &b.Left.Minus
	case LeftL:
		return &b.Left.L
	case LeftZL:
		return &b.Left.ZL
	case LeftSL:
		return &b.Left.SL
	case LeftSR:
		return &b.Left.SR
	case RightStickX:
		return &b.Right.StickX
	case RightStickY:
		return &b.Right.StickY
	case RightStickButton:
		return &b.Right.StickButton
	case RightA:
		return &b.Right.A
	case RightB:
		return &b.Right.B
	case RightX:
		return &b.Right.X
	case RightY:
		return &b.Right.Y
	case RightPlus:
		return &b.Right.Plus
	case RightR:
		return &b.Right.R
	case RightZR:
		return &b.Right.ZR
	case RightSL:
		return &b.Right.SL
	case RightSR:
		return &b.Right.SR
	case HotkeyToggleVsync:
		return &b.Hotkeys.ToggleVsync
	}
	return nil
}

// Input returns the joystick input bound to the slot. The boolean result is
// false if the slot is not a gamepad slot.
func (b *GamepadBindings) Input(slot Slot) (userinput.ControllerInputID, bool) {
	if b == nil {
		return userinput.ControllerInputID{}, false
	}
	if f := b.field(slot); f != nil {
		return *f, true
	}
	return userinput.ControllerInputID{}, false
}

// SetInput binds the joystick input to the slot. Returns false if the slot
// is not a gamepad slot.
func (b *GamepadBindings) SetInput(slot Slot, id userinput.ControllerInputID) bool {
	if f := b.field(slot); f != nil {
		*f = id
		return true
	}
	return false
}

// Config is the input configuration for a single player.
type Config struct {
	// the device index is only meaningful for gamepads. the keyboard is
	// always index zero
	Index int  `toml:"index"`
	Kind  Kind `toml:"kind"`

	ControllerType hid.ControllerType `toml:"controller_type"`
	PlayerIndex    hid.ControllerID   `toml:"player_index"`

	// exactly one of these is non-nil, depending on Kind
	Keyboard *KeyboardBindings `toml:"keyboard,omitempty"`
	Gamepad  *GamepadBindings  `toml:"gamepad,omitempty"`

	DeadzoneLeft     float64 `toml:"deadzone_left"`
	DeadzoneRight    float64 `toml:"deadzone_right"`
	TriggerThreshold float64 `toml:"trigger_threshold"`
}

// Clone returns a deep copy of the config.
func (c Config) Clone() Config {
	if c.Keyboard != nil {
		k := *c.Keyboard
		c.Keyboard = &k
	}
	if c.Gamepad != nil {
		g := *c.Gamepad
		c.Gamepad = &g
	}
	return c
}

// Sentinal error returned by Validate().
const InvalidConfig = "bindings: invalid config: %s: %v"

// Validate checks the config for consistency.
func (c Config) Validate() error {
	if c.PlayerIndex < hid.Player1 || c.PlayerIndex >= hid.UnknownController {
		return curated.Errorf(InvalidConfig, "player_index", c.PlayerIndex)
	}
	if c.ControllerType < hid.ProController || c.ControllerType > hid.NpadRight {
		return curated.Errorf(InvalidConfig, "controller_type", c.ControllerType)
	}

	switch c.Kind {
	case Keyboard:
		if c.Keyboard == nil {
			return curated.Errorf(InvalidConfig, "keyboard", "missing bindings")
		}
		if c.Index != 0 {
			return curated.Errorf(InvalidConfig, "index", c.Index)
		}
	case Gamepad:
		if c.Gamepad == nil {
			return curated.Errorf(InvalidConfig, "gamepad", "missing bindings")
		}
		if c.Index < 0 {
			return curated.Errorf(InvalidConfig, "index", c.Index)
		}
	default:
		return curated.Errorf(InvalidConfig, "kind", c.Kind)
	}

	if c.DeadzoneLeft < 0 || c.DeadzoneLeft >= 1 {
		return curated.Errorf(InvalidConfig, "deadzone_left", c.DeadzoneLeft)
	}
	if c.DeadzoneRight < 0 || c.DeadzoneRight >= 1 {
		return curated.Errorf(InvalidConfig, "deadzone_right", c.DeadzoneRight)
	}
	if c.TriggerThreshold < 0 || c.TriggerThreshold > 1 {
		return curated.Errorf(InvalidConfig, "trigger_threshold", c.TriggerThreshold)
	}

	return nil
}

// Device returns the device identifier of the config, in the form used by
// the controller editor.
func (c Config) Device() string {
	if c.Kind == Keyboard {
		return "keyboard/0"
	}
	return "controller/" + strconv.Itoa(c.Index)
}
