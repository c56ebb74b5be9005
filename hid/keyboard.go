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

package hid

// KeyboardInput is the report sent to the virtual keyboard. Keys is a bit
// set of the USB HID usage codes of the keys being held.
type KeyboardInput struct {
	Modifier uint32
	Keys     [8]uint32
}

// SetKey marks the usage code as being held. Zero is ignored.
func (k *KeyboardInput) SetKey(usage uint8) {
	if usage == 0 {
		return
	}
	k.Keys[usage/32] |= 1 << (usage % 32)
}

// KeyDown returns true if the usage code is being held.
func (k KeyboardInput) KeyDown(usage uint8) bool {
	return k.Keys[usage/32]&(1<<(usage%32)) != 0
}

// Merge combines the keys and modifiers of another report with this one.
func (k *KeyboardInput) Merge(o KeyboardInput) {
	k.Modifier |= o.Modifier
	for i := range k.Keys {
		k.Keys[i] |= o.Keys[i]
	}
}
