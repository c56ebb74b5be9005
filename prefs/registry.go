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

package prefs

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"go.uber.org/multierr"

	"github.com/padshell/padshell/curated"
)

// Sentinal errors returned by the Registry type.
const (
	DuplicateKey = "prefs: duplicate key: %s"
	UnknownKey   = "prefs: unknown key: %s"
)

// Registry is a collection of prefs values addressed by a dotted key. For
// example "keyboard.enabled".
//
// Values are added to a Registry by the subsystems that own them. The
// settings package then sets each value from the command line, the
// environment, or the configuration file.
type Registry struct {
	crit    sync.Mutex
	entries map[string]pref
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]pref),
	}
}

// Add a pref value to the registry.
func (r *Registry) Add(key string, p pref) error {
	r.crit.Lock()
	defer r.crit.Unlock()

	if _, ok := r.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	r.entries[key] = p
	return nil
}

// Set the value of the pref with the specified key.
func (r *Registry) Set(key string, v Value) error {
	r.crit.Lock()
	p, ok := r.entries[key]
	r.crit.Unlock()

	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	return p.Set(v)
}

// Get the value of the pref with the specified key.
func (r *Registry) Get(key string) (Value, error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	p, ok := r.entries[key]
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p.Get(), nil
}

// Keys returns the sorted list of keys in the registry.
func (r *Registry) Keys() []string {
	r.crit.Lock()
	defer r.crit.Unlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all values in the registry. Errors from individual values are
// combined.
func (r *Registry) Reset() error {
	r.crit.Lock()
	defer r.crit.Unlock()

	var err error
	for _, p := range r.entries {
		err = multierr.Append(err, p.Reset())
	}
	return err
}

// Write the registry to the io.Writer in the form "key :: value", one entry
// per line, sorted by key.
func (r *Registry) Write(w io.Writer) {
	for _, k := range r.Keys() {
		r.crit.Lock()
		s := r.entries[k].String()
		r.crit.Unlock()
		fmt.Fprintf(w, "%s :: %s\n", k, s)
	}
}
