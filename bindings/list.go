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
	"slices"
	"sync"

	"github.com/padshell/padshell/hid"
)

// List is the set of active player configs. There is at most one config for
// each player. It is safe for concurrent use: the editor writes to the list
// while the main loop reads from it every frame.
type List struct {
	crit    sync.Mutex
	configs []Config
}

// NewList is the preferred method of initialisation for the List type.
func NewList(configs ...Config) *List {
	l := &List{}
	l.Replace(configs)
	return l
}

// All returns a copy of every config in the list, in the order they were
// added.
func (l *List) All() []Config {
	l.crit.Lock()
	defer l.crit.Unlock()
	c := make([]Config, len(l.configs))
	for i := range l.configs {
		c[i] = l.configs[i].Clone()
	}
	return c
}

// Len returns the number of configs in the list.
func (l *List) Len() int {
	l.crit.Lock()
	defer l.crit.Unlock()
	return len(l.configs)
}

// Get returns a copy of the config for the player.
func (l *List) Get(player hid.ControllerID) (Config, bool) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, c := range l.configs {
		if c.PlayerIndex == player {
			return c.Clone(), true
		}
	}
	return Config{}, false
}

// Upsert replaces the config for the player or adds it if there is none.
func (l *List) Upsert(cfg Config) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.upsert(cfg.Clone())
}

func (l *List) upsert(cfg Config) {
	for i := range l.configs {
		if l.configs[i].PlayerIndex == cfg.PlayerIndex {
			l.configs[i] = cfg
			return
		}
	}
	l.configs = append(l.configs, cfg)
}

// Remove the config for the player. Returns false if there was no config.
func (l *List) Remove(player hid.ControllerID) bool {
	l.crit.Lock()
	defer l.crit.Unlock()
	n := len(l.configs)
	l.configs = slices.DeleteFunc(l.configs, func(c Config) bool {
		return c.PlayerIndex == player
	})
	return len(l.configs) != n
}

// Replace the entire list. Later configs for the same player replace earlier
// ones.
func (l *List) Replace(configs []Config) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.configs = l.configs[:0]
	for _, c := range configs {
		l.upsert(c.Clone())
	}
}
