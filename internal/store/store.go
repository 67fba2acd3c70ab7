// Package store implements the persistent collection store: versioned JSON
// snapshot files under the data directory, one file per collection.
//
// Load is fail-soft by design: a missing, unreadable, or corrupted snapshot
// yields the caller's default value rather than an error, so a damaged file
// never blocks startup. Save is write-through and atomic (temp file + rename).
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pavannsshetty7022/abbrevify/internal/log"
)

const snapshotVersion = 1

// snapshot is the on-disk envelope around a collection value.
type snapshot struct {
	Version   int             `json:"version"`
	UpdatedAt string          `json:"updated_at,omitempty"`
	Data      json.RawMessage `json:"data"`
}

// Load reads the snapshot at path and decodes it into T. Any failure
// (absent file, bad JSON, unsupported version) returns def.
func Load[T any](path string, def T) T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn(log.CatStore, "snapshot unreadable, using default", "path", path, "error", err)
		}
		return def
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warn(log.CatStore, "snapshot corrupted, using default", "path", path, "error", err)
		return def
	}
	if snap.Version != 0 && snap.Version != snapshotVersion {
		log.Warn(log.CatStore, "snapshot version unsupported, using default", "path", path, "version", snap.Version)
		return def
	}

	var value T
	if err := json.Unmarshal(snap.Data, &value); err != nil {
		log.Warn(log.CatStore, "snapshot payload corrupted, using default", "path", path, "error", err)
		return def
	}
	return value
}

// Save writes value as a versioned snapshot at path, creating parent
// directories as needed. The write is atomic: a temp file in the same
// directory is renamed over the target.
func Save[T any](path string, value T) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	data, err := json.Marshal(snapshot{
		Version:   snapshotVersion,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Data:      raw,
	})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}
