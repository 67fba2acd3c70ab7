// Package abbrev maintains the user's custom abbreviation table. Keys are
// normalized to lowercase so "BTW" and "btw" are the same entry. The full
// table is sent with every service request so the server can honor user
// overrides without any account state.
package abbrev

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/pavannsshetty7022/abbrevify/internal/store"
)

// ErrEmptyField is returned when an abbreviation or its expansion is blank
// after trimming.
var ErrEmptyField = errors.New("abbreviation and expansion are both required")

// Registry is the persisted abbreviation table.
type Registry struct {
	mu      sync.RWMutex
	path    string
	entries map[string]string
}

// Load reads the abbreviation snapshot at path. A missing or corrupted
// snapshot yields an empty registry.
func Load(path string) *Registry {
	entries := store.Load(path, map[string]string{})
	if entries == nil {
		entries = map[string]string{}
	}
	return &Registry{path: path, entries: entries}
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Add inserts or overwrites the entry for the normalized key and persists.
// Last write wins for duplicate keys.
func (r *Registry) Add(key, expansion string) error {
	key = normalize(key)
	expansion = strings.TrimSpace(expansion)
	if key == "" || expansion == "" {
		return ErrEmptyField
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = expansion
	return store.Save(r.path, r.entries)
}

// Remove deletes the entry for the normalized key and persists.
// Removing an absent key is a no-op.
func (r *Registry) Remove(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, normalize(key))
	return store.Save(r.path, r.entries)
}

// Lookup returns the expansion for the key, case-insensitively.
func (r *Registry) Lookup(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	expansion, ok := r.entries[normalize(key)]
	return expansion, ok
}

// Snapshot returns a full copy of the table for inclusion in a request body.
func (r *Registry) Snapshot() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}
	return out
}

// Keys returns all abbreviation keys sorted lexicographically, for a
// deterministic display order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
