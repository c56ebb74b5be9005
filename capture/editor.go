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

package capture

import (
	"github.com/padshell/padshell/bindings"
	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/hid"
	"github.com/padshell/padshell/logger"
	"github.com/padshell/padshell/userinput"
)

// Side selects one of the two analog sticks.
type Side int

// List of valid Side values.
const (
	LeftStick Side = iota
	RightStick
)

// Sentinal errors returned by the Editor type.
const (
	InvalidBinding = "capture: invalid binding for %s: %v"
	InvalidValue   = "capture: invalid %s: %v"
)

// Editor is the model of the controller configuration window for a single
// player. The editor is not safe for concurrent use. Captures started by the
// editor update its labels through the session's Invoker, which must run
// them on the goroutine that uses the editor.
type Editor struct {
	list    *bindings.List
	session *Session

	player hid.ControllerID
	device string
	kind   bindings.Kind
	index  int

	controllerType   hid.ControllerType
	deadzoneLeft     float64
	deadzoneRight    float64
	triggerThreshold float64

	labels map[bindings.Slot]string

	// called after a capture has updated a label. may be nil
	OnCapture func(Result)
}

// NewEditor is the preferred method of initialisation for the Editor type.
func NewEditor(list *bindings.List, session *Session) *Editor {
	return &Editor{
		list:    list,
		session: session,
		device:  DeviceDisabled,
		labels:  make(map[bindings.Slot]string),
	}
}

// Load the editor with the config of the player. If the player has no
// config the disabled device is selected.
func (e *Editor) Load(player hid.ControllerID) {
	e.cancelCapture()
	e.player = player
	cfg, ok := e.list.Get(player)
	if !ok {
		e.device = DeviceDisabled
		e.setValues(bindings.DefaultKeyboard(player))
		return
	}
	e.device = cfg.Device()
	e.setValues(cfg)
}

// setValues copies the config into the editor's fields and labels.
func (e *Editor) setValues(cfg bindings.Config) {
	e.kind = cfg.Kind
	e.index = cfg.Index
	e.controllerType = cfg.ControllerType
	e.deadzoneLeft = cfg.DeadzoneLeft
	e.deadzoneRight = cfg.DeadzoneRight
	e.triggerThreshold = cfg.TriggerThreshold

	clear(e.labels)
	switch cfg.Kind {
	case bindings.Keyboard:
		for _, s := range bindings.KeyboardSlots {
			k, _ := cfg.Keyboard.Key(s)
			e.labels[s] = k.String()
		}
	case bindings.Gamepad:
		for _, s := range bindings.GamepadSlots {
			id, _ := cfg.Gamepad.Input(s)
			e.labels[s] = id.String()
		}
	}
}

func (e *Editor) defaults() bindings.Config {
	if e.kind == bindings.Gamepad {
		return bindings.DefaultGamepad(e.index, e.player)
	}
	return bindings.DefaultKeyboard(e.player)
}

// Player returns the player being edited.
func (e *Editor) Player() hid.ControllerID {
	return e.player
}

// Device returns the ID of the selected device.
func (e *Editor) Device() string {
	return e.device
}

// Enabled returns false if the disabled device is selected.
func (e *Editor) Enabled() bool {
	return e.device != DeviceDisabled
}

// SelectDevice changes the device used by the player. Selecting a device of
// a different kind replaces the labels with the defaults for that kind.
func (e *Editor) SelectDevice(id string) error {
	kind, index, enabled, err := ParseDevice(id)
	if err != nil {
		return err
	}

	if !enabled {
		e.device = DeviceDisabled
		return nil
	}

	changed := !e.Enabled() || kind != e.kind
	if changed || index != e.index {
		e.cancelCapture()
	}
	e.device = id
	e.kind = kind
	e.index = index

	if changed {
		e.setValues(e.defaults())
	}

	return nil
}

// Kind returns the kind of the selected device.
func (e *Editor) Kind() bindings.Kind {
	return e.kind
}

// AvailableSlots returns the slots that can be edited for the selected
// device and controller type. Keyboards bind each stick direction to a key
// while gamepads bind each stick axis. Nothing is available when the player
// is disabled.
func (e *Editor) AvailableSlots() []bindings.Slot {
	if !e.Enabled() {
		return nil
	}

	slots := bindings.KeyboardSlots
	if e.kind == bindings.Gamepad {
		slots = bindings.GamepadSlots
	}

	side := e.controllerType.HasSideButtons()
	var a []bindings.Slot
	for _, s := range slots {
		if s.SideButton() && !side {
			continue
		}
		a = append(a, s)
	}
	return a
}

// ControllerSpecificSlots returns the slots that are only available for the
// selected controller type. The side buttons are only used by the single
// halves of a split controller.
func (e *Editor) ControllerSpecificSlots() []bindings.Slot {
	if !e.Enabled() || !e.controllerType.HasSideButtons() {
		return nil
	}
	return []bindings.Slot{bindings.LeftSL, bindings.LeftSR, bindings.RightSL, bindings.RightSR}
}

// AnalogSettings returns true if the deadzone and trigger threshold values
// apply to the selected device.
func (e *Editor) AnalogSettings() bool {
	return e.Enabled() && e.kind == bindings.Gamepad
}

// Label returns the label for the slot. An empty string is returned for
// slots that do not apply to the selected device.
func (e *Editor) Label(slot bindings.Slot) string {
	return e.labels[slot]
}

// SetLabel changes the label of the slot. The label is not checked until the
// editor is saved. Returns false if the slot does not apply to the selected
// device.
func (e *Editor) SetLabel(slot bindings.Slot, label string) bool {
	if _, ok := e.labels[slot]; !ok {
		return false
	}
	e.labels[slot] = label
	return true
}

// Capture the next host input into the slot. Returns false if the slot does
// not apply to the selected device or if another capture is in progress.
func (e *Editor) Capture(slot bindings.Slot) bool {
	if !e.Enabled() || e.session == nil {
		return false
	}
	if _, ok := e.labels[slot]; !ok {
		return false
	}

	// the result is dropped if the device changes before it is delivered
	player, kind, index := e.player, e.kind, e.index

	return e.session.Begin(Request{
		Slot:      slot,
		Kind:      kind,
		Index:     index,
		Threshold: e.triggerThreshold,
		Done: func(r Result) {
			if !r.Cancelled && e.player == player && e.kind == kind && e.index == index {
				if _, ok := e.labels[r.Slot]; ok {
					e.labels[r.Slot] = r.Label
				}
			}
			if e.OnCapture != nil {
				e.OnCapture(r)
			}
		},
	})
}

// ControllerType returns the selected controller type.
func (e *Editor) ControllerType() hid.ControllerType {
	return e.controllerType
}

// SetControllerType changes the controller type.
func (e *Editor) SetControllerType(t hid.ControllerType) {
	e.controllerType = t
}

// Deadzone returns the deadzone of the stick.
func (e *Editor) Deadzone(side Side) float64 {
	if side == RightStick {
		return e.deadzoneRight
	}
	return e.deadzoneLeft
}

// SetDeadzone changes the deadzone of the stick. The value must be in the
// range 0.0 to 1.0, not including 1.0.
func (e *Editor) SetDeadzone(side Side, v float64) error {
	if v < 0 || v >= 1 {
		return curated.Errorf(InvalidValue, "deadzone", v)
	}
	if side == RightStick {
		e.deadzoneRight = v
	} else {
		e.deadzoneLeft = v
	}
	return nil
}

// TriggerThreshold returns the axis activation threshold.
func (e *Editor) TriggerThreshold() float64 {
	return e.triggerThreshold
}

// SetTriggerThreshold changes the axis activation threshold. The value must
// be in the range 0.0 to 1.0.
func (e *Editor) SetTriggerThreshold(v float64) error {
	if v < 0 || v > 1 {
		return curated.Errorf(InvalidValue, "trigger threshold", v)
	}
	e.triggerThreshold = v
	return nil
}

// Reset the labels and values to the defaults for the selected device.
func (e *Editor) Reset() {
	if !e.Enabled() {
		return
	}
	e.cancelCapture()
	e.setValues(e.defaults())
}

func (e *Editor) cancelCapture() {
	if e.session != nil {
		e.session.Cancel()
	}
}

// Config converts the editor's labels and values into a player config. The
// first label that cannot be parsed is returned as an error.
func (e *Editor) Config() (bindings.Config, error) {
	cfg := bindings.Config{
		Index:            e.index,
		Kind:             e.kind,
		ControllerType:   e.controllerType,
		PlayerIndex:      e.player,
		DeadzoneLeft:     e.deadzoneLeft,
		DeadzoneRight:    e.deadzoneRight,
		TriggerThreshold: e.triggerThreshold,
	}

	switch e.kind {
	case bindings.Keyboard:
		cfg.Keyboard = &bindings.KeyboardBindings{}
		for _, s := range bindings.KeyboardSlots {
			k, err := userinput.ParseKey(e.labels[s])
			if err != nil {
				return bindings.Config{}, curated.Errorf(InvalidBinding, s, err)
			}
			cfg.Keyboard.SetKey(s, k)
		}
	case bindings.Gamepad:
		cfg.Gamepad = &bindings.GamepadBindings{}
		for _, s := range bindings.GamepadSlots {
			id, err := userinput.ParseControllerInputID(e.labels[s])
			if err != nil {
				return bindings.Config{}, curated.Errorf(InvalidBinding, s, err)
			}
			cfg.Gamepad.SetInput(s, id)
		}
	}

	return cfg, cfg.Validate()
}

// Save the editor to the list of player configs. If the disabled device is
// selected the player's config is removed. The list is unchanged if the
// config cannot be created.
func (e *Editor) Save() error {
	if !e.Enabled() {
		if e.list.Remove(e.player) {
			logger.Logf(logger.Allow, "capture", "%s disabled", e.player)
		}
		return nil
	}

	cfg, err := e.Config()
	if err != nil {
		return err
	}

	e.list.Upsert(cfg)
	logger.Logf(logger.Allow, "capture", "%s using %s", e.player, e.device)

	return nil
}
