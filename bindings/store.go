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
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/hid"
	"github.com/padshell/padshell/logger"
)

// Sentinal errors returned by the Store type.
const (
	StoreLoad = "bindings: load: %v"
	StoreSave = "bindings: save: %v"
)

// the on-disk layout of the input file. each config is a [[player]] table.
type inputFile struct {
	Player []Config `toml:"player"`
}

// Store reads and writes player configs to a TOML file.
type Store struct {
	path string
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the path of the input file.
func (s *Store) Path() string {
	return s.path
}

// Defaults returns the configs used when there is no input file.
func Defaults() []Config {
	return []Config{DefaultKeyboard(hid.Player1)}
}

// Load the configs from the input file. If the file does not exist it is
// created with the default configs, which are then returned.
//
// Configs that fail validation are dropped and logged. When more than one
// config exists for the same player the last one is used.
func (s *Store) Load() ([]Config, error) {
	var f inputFile

	_, err := toml.DecodeFile(s.path, &f)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d := Defaults()
			if err := s.Save(d); err != nil {
				return d, err
			}
			return d, nil
		}
		return nil, curated.Errorf(StoreLoad, err)
	}

	l := NewList()
	for _, c := range f.Player {
		if err := c.Validate(); err != nil {
			logger.Log(logger.Allow, "bindings", err)
			continue
		}
		l.Upsert(c)
	}

	return l.All(), nil
}

// Save the configs to the input file, replacing what is there.
func (s *Store) Save(configs []Config) error {
	err := os.MkdirAll(filepath.Dir(s.path), 0700)
	if err != nil {
		return curated.Errorf(StoreSave, err)
	}

	// write to a temporary file in the same directory and rename it into
	// place so that a watcher never sees a partial file
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return curated.Errorf(StoreSave, err)
	}
	defer os.Remove(tmp.Name())

	err = toml.NewEncoder(tmp).Encode(inputFile{Player: configs})
	if err != nil {
		tmp.Close()
		return curated.Errorf(StoreSave, err)
	}

	err = tmp.Close()
	if err != nil {
		return curated.Errorf(StoreSave, err)
	}

	err = os.Rename(tmp.Name(), s.path)
	if err != nil {
		return curated.Errorf(StoreSave, err)
	}

	return nil
}
