// Package history remembers the last answer given to a prompt, keyed by a
// caller-chosen id, so a later run can start where the previous one ended.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/flock"
)

// Entry is one remembered answer.
type Entry struct {
	Index     int       `json:"index"`
	Value     string    `json:"value,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// State is the on-disk content of the history file.
type State struct {
	Entries map[string]Entry `json:"entries"`
}

// Load returns the entry remembered for id. ok is false when there is
// none or the file cannot be read.
func Load(path, id string) (Entry, bool) {
	// Shared lock: blocks only while a writer holds the exclusive lock.
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return Entry{}, false
	}
	defer fileLock.Unlock()

	state, err := read(path)
	if err != nil {
		return Entry{}, false
	}
	e, ok := state.Entries[id]
	return e, ok
}

// Save records idx and its option text for id, keeping other entries.
func Save(path, id string, idx int, value string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrapf(err, "create history directory for %s", path)
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return errors.Wrapf(err, "lock %s", path)
	}
	defer fileLock.Unlock()

	state, err := read(path)
	if err != nil {
		// An unreadable file is replaced rather than blocking new answers.
		state = State{}
	}
	if state.Entries == nil {
		state.Entries = make(map[string]Entry)
	}
	state.Entries[id] = Entry{Index: idx, Value: value, UpdatedAt: time.Now()}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	// Write atomically: write to temp file then rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return errors.Wrapf(err, "write %s", tmpPath)
	}
	return os.Rename(tmpPath, path)
}

func read(path string) (State, error) {
	var state State
	data, err := os.ReadFile(path)
	if err != nil {
		return state, err
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return state, errors.Wrapf(err, "parse %s", path)
	}
	return state, nil
}

// Resolve picks the start index for a list from a remembered entry. The
// option text wins over the stored index so reordered lists still land on
// the same answer; ok is false if neither is usable.
func Resolve(e Entry, options []string, usable func(int) bool) (int, bool) {
	if e.Value != "" {
		for i, o := range options {
			if o == e.Value && usable(i) {
				return i, true
			}
		}
	}
	if e.Index >= 0 && e.Index < len(options) && usable(e.Index) {
		return e.Index, true
	}
	return 0, false
}
