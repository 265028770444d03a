// Package afk tracks transient away-status notes. Entries live only in
// process memory and are cleared by the user's next message.
package afk

import (
	"sync"
	"time"
)

// Entry is one user's away status
type Entry struct {
	Reason string
	Since  time.Time
}

// Tracker holds the AFK entries for all users
type Tracker struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{entries: make(map[string]Entry)}
}

// Set marks a user as away
func (t *Tracker) Set(userID, reason string) {
	t.mu.Lock()
	t.entries[userID] = Entry{Reason: reason, Since: time.Now()}
	t.mu.Unlock()
}

// Get returns a user's entry if present
func (t *Tracker) Get(userID string) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[userID]
	return e, ok
}

// Clear removes a user's entry and reports whether one existed
func (t *Tracker) Clear(userID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[userID]; !ok {
		return false
	}
	delete(t.entries, userID)
	return true
}
