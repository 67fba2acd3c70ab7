// Package history maintains the persisted log of past conversions,
// most-recent-first. Entries are immutable once appended; they leave the log
// only through an explicit user-confirmed Remove or Clear.
package history

import (
	"sync"
	"time"

	"github.com/pavannsshetty7022/abbrevify/internal/store"
)

// Entry is a single completed conversion.
type Entry struct {
	ID        int64  `json:"id"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	Mode      string `json:"mode"`
	Timestamp string `json:"timestamp"`
}

// Log is the ordered conversion history backed by a snapshot file.
// Every mutation persists immediately (write-through, no batching).
type Log struct {
	mu      sync.RWMutex
	path    string
	entries []Entry
	lastID  int64

	// Clock is the time source, overridable in tests. Nil means time.Now.
	Clock func() time.Time
}

// Load reads the history snapshot at path. A missing or corrupted snapshot
// yields an empty log.
func Load(path string) *Log {
	entries := store.Load(path, []Entry(nil))
	l := &Log{path: path, entries: entries}
	if len(entries) > 0 {
		// Entries are newest-first; the head carries the highest ID.
		l.lastID = entries[0].ID
	}
	return l
}

func (l *Log) now() time.Time {
	if l.Clock != nil {
		return l.Clock()
	}
	return time.Now()
}

// Append records a completed conversion at the head of the log and persists.
// IDs are creation timestamps in unix milliseconds, bumped by one when the
// clock has not advanced so they stay unique and non-decreasing.
func (l *Log) Append(input, output, mode string) (Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	entry := Entry{
		ID:        id,
		Input:     input,
		Output:    output,
		Mode:      mode,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	l.entries = append([]Entry{entry}, l.entries...)
	return entry, store.Save(l.path, l.entries)
}

// Remove deletes the entry with the given ID and persists. Removing an
// unknown ID is a no-op, not an error.
func (l *Log) Remove(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.entries[:0]
	for _, e := range l.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	l.entries = kept
	return store.Save(l.path, l.entries)
}

// Clear empties the log and persists.
func (l *Log) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	return store.Save(l.path, l.entries)
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
