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
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/logger"
)

// Sentinal error returned by NewWatcher().
const WatcherError = "bindings: watcher: %v"

// the period in which file events are coalesced into a single reload.
const watchDebounce = 250 * time.Millisecond

// Watcher reloads the input file whenever it changes on disk.
//
// The directory containing the file is watched rather than the file itself
// because editors and Store.Save() replace the file with a rename.
type Watcher struct {
	store    *Store
	watcher  *fsnotify.Watcher
	onChange func([]Config)
	debounce func(func())

	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher starts watching the store's file. The onChange function is
// called with the reloaded configs from the watcher's goroutine.
func NewWatcher(store *Store, onChange func([]Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(WatcherError, err)
	}

	err = fw.Add(filepath.Dir(store.Path()))
	if err != nil {
		fw.Close()
		return nil, curated.Errorf(WatcherError, err)
	}

	w := &Watcher{
		store:    store,
		watcher:  fw,
		onChange: onChange,
		debounce: debounce.New(watchDebounce),
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()

	name := filepath.Clean(w.store.Path())

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.debounce(w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Log(logger.Allow, "bindings", curated.Errorf(WatcherError, err))
		}
	}
}

func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}

	configs, err := w.store.Load()
	if err != nil {
		logger.Log(logger.Allow, "bindings", err)
		return
	}

	logger.Logf(logger.Allow, "bindings", "reloaded %d player configs from %s", len(configs), w.store.Path())
	w.onChange(configs)
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
