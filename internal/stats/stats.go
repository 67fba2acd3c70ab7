// Package stats tracks usage counters per action kind. The total always
// equals the sum of the four leaf counters; each recorded action bumps
// exactly one leaf and the total, then persists.
package stats

import (
	"sync"

	"github.com/pavannsshetty7022/abbrevify/internal/service"
	"github.com/pavannsshetty7022/abbrevify/internal/store"
)

// Counters is the persisted usage record.
type Counters struct {
	TotalConversions     int `json:"totalConversions"`
	SmsToFullCount       int `json:"smsToFullCount"`
	FullToSmsCount       int `json:"fullToSmsCount"`
	GrammarCheckCount    int `json:"grammarCheckCount"`
	PlagiarismCheckCount int `json:"plagiarismCheckCount"`
}

// Tracker owns the counters and their snapshot file.
type Tracker struct {
	mu       sync.RWMutex
	path     string
	counters Counters
}

// Load reads the usage snapshot at path. A missing or corrupted snapshot
// yields zeroed counters.
func Load(path string) *Tracker {
	return &Tracker{path: path, counters: store.Load(path, Counters{})}
}

// RecordAction bumps the leaf counter for the completed action and the
// total, then persists. For convert actions the leaf follows mode, which the
// caller captured when the request was issued, not whatever direction is
// selected by the time the response lands.
func (t *Tracker) RecordAction(action service.Action, mode service.Mode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch action {
	case service.ActionConvert:
		if mode == service.ModeSmsToFull {
			t.counters.SmsToFullCount++
		} else {
			t.counters.FullToSmsCount++
		}
	case service.ActionGrammar:
		t.counters.GrammarCheckCount++
	case service.ActionPlagiarism:
		t.counters.PlagiarismCheckCount++
	default:
		return nil
	}
	t.counters.TotalConversions++
	return store.Save(t.path, t.counters)
}

// Counters returns a copy of the current counters.
func (t *Tracker) Counters() Counters {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.counters
}
