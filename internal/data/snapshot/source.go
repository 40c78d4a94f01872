// Package snapshot serves battle snapshots read from the JSON file the
// simulation rewrites while a battle runs.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-battle-overlay/internal/core/battle"
	"github.com/penwyp/go-battle-overlay/internal/util"
)

// ErrNoSnapshot is returned before any snapshot has been decoded
var ErrNoSnapshot = errors.New("no battle snapshot loaded")

// Event reports a reload attempt of the snapshot file
type Event struct {
	Path      string
	Operation string
	Err       error
}

// Load reads and decodes one snapshot file
func Load(path string) (*battle.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses snapshot JSON
func Decode(data []byte) (*battle.Snapshot, error) {
	var snap battle.Snapshot
	if err := sonic.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// FileSource keeps the latest decoded snapshot of a watched file. The
// parent directory is watched so that atomic replace-by-rename is seen.
type FileSource struct {
	path    string
	watcher *fsnotify.Watcher

	mu      sync.RWMutex
	current *battle.Snapshot

	events    chan Event
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewFileSource starts watching path. A missing file is not an error; the
// source reports ErrNoSnapshot until the file appears.
func NewFileSource(path string) (*FileSource, error) {
	path = util.ExpandPath(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	fs := &FileSource{
		path:    path,
		watcher: watcher,
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
	}

	if err := fs.Reload(); err != nil && !errors.Is(err, os.ErrNotExist) {
		util.LogWarn("initial snapshot unreadable", util.F("path", path), util.F("error", err.Error()))
	}

	fs.wg.Add(1)
	go fs.processEvents()

	return fs, nil
}

// Path is the watched snapshot file
func (fs *FileSource) Path() string {
	return fs.path
}

// Snapshot returns a private copy of the latest snapshot
func (fs *FileSource) Snapshot() (*battle.Snapshot, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if fs.current == nil {
		return nil, ErrNoSnapshot
	}
	return fs.current.Clone(), nil
}

// Reload decodes the file now. On failure the previous snapshot stays current.
func (fs *FileSource) Reload() error {
	snap, err := Load(fs.path)
	if err != nil {
		return err
	}
	fs.mu.Lock()
	fs.current = snap
	fs.mu.Unlock()
	return nil
}

// Events delivers one event per reload attempt. Events are dropped when the
// consumer falls behind; only the latest snapshot matters.
func (fs *FileSource) Events() <-chan Event {
	return fs.events
}

// Close stops watching. It is safe to call more than once.
func (fs *FileSource) Close() error {
	var err error
	fs.closeOnce.Do(func() {
		close(fs.done)
		err = fs.watcher.Close()
		fs.wg.Wait()
	})
	return err
}

func (fs *FileSource) processEvents() {
	defer fs.wg.Done()
	for {
		select {
		case <-fs.done:
			return

		case event, ok := <-fs.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fs.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			err := fs.Reload()
			if err != nil {
				// a half-written file is retried on the next write
				util.LogWarn("snapshot reload failed, keeping previous",
					util.F("path", fs.path), util.F("error", err.Error()))
			}
			fs.notify(Event{Path: event.Name, Operation: event.Op.String(), Err: err})

		case err, ok := <-fs.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("snapshot watch error", util.F("error", err.Error()))
		}
	}
}

func (fs *FileSource) notify(e Event) {
	select {
	case fs.events <- e:
	default:
	}
}
