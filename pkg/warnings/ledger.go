// Package warnings implements the persisted moderation warning ledger.
// Warnings are append-only per user and removable by id; every mutation is
// followed by a full rewrite of the backing document.
package warnings

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/models"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/storage"
)

// ErrNotFound is returned when no warning matches the given id
var ErrNotFound = errors.New("warning not found")

// documentName is the store document backing the ledger
const documentName = "warnings"

// Notifier delivers a best-effort direct notification to the warned user.
// Delivery failures are the notifier's problem; the ledger never hears
// about them.
type Notifier interface {
	NotifyWarning(userID string, warning models.Warning)
}

// Ledger owns all persisted warnings. Mutations are serialized under one
// mutex, so overlapping warn/remove calls against the same subject cannot
// lose updates.
type Ledger struct {
	mu       sync.Mutex
	store    storage.Store
	warns    models.WarningsDocument
	notifier Notifier
	lastID   int64
}

// NewLedger loads the warning document from the store
func NewLedger(store storage.Store, notifier Notifier) (*Ledger, error) {
	warns := models.WarningsDocument{}
	if err := store.Load(documentName, &warns); err != nil {
		return nil, err
	}
	return &Ledger{store: store, warns: warns, notifier: notifier}, nil
}

// nextID derives a unique id from the current time. Two warns landing in
// the same millisecond get consecutive ids. Callers hold l.mu.
func (l *Ledger) nextID() string {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return strconv.FormatInt(id, 10)
}

// Warn records a new warning against the subject, persists the ledger and
// notifies the subject best-effort. The created warning is returned even
// when persisting fails: in-memory state stays authoritative and the next
// successful save will write it out.
func (l *Ledger) Warn(subjectID, moderatorID, moderatorName, reason string) (models.Warning, error) {
	l.mu.Lock()
	warning := models.Warning{
		ID:            l.nextID(),
		Moderator:     moderatorName,
		ModeratorID:   moderatorID,
		Reason:        reason,
		Timestamp:     time.Now().Unix(),
		SubjectUserID: subjectID,
	}
	l.warns[subjectID] = append(l.warns[subjectID], warning)
	err := l.store.Save(documentName, l.warns)
	l.mu.Unlock()

	if l.notifier != nil {
		l.notifier.NotifyWarning(subjectID, warning)
	}

	return warning, err
}

// List returns the subject's warnings in call order. A subject with no
// warnings yields an empty slice, not an error.
func (l *Ledger) List(subjectID string) []models.Warning {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.warns[subjectID]
	out := make([]models.Warning, len(entries))
	copy(out, entries)
	return out
}

// Remove deletes the subject's warning with the given id and persists the
// ledger. Returns ErrNotFound when the subject has no matching entry; the
// document is only rewritten on success.
func (l *Ledger) Remove(subjectID, warningID string) (models.Warning, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.warns[subjectID]
	for i, w := range entries {
		if w.ID != warningID {
			continue
		}
		l.warns[subjectID] = append(entries[:i:i], entries[i+1:]...)
		if len(l.warns[subjectID]) == 0 {
			delete(l.warns, subjectID)
		}
		if err := l.store.Save(documentName, l.warns); err != nil {
			return w, err
		}
		return w, nil
	}
	return models.Warning{}, ErrNotFound
}

// Count returns the total number of warnings across all subjects
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, entries := range l.warns {
		total += len(entries)
	}
	return total
}
