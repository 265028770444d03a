// Package verify implements one-shot verification codes for new members.
// A staff member generates codes; a joining user redeems one with /verify
// to receive the verified role.
package verify

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/models"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/storage"
	"github.com/google/uuid"
)

var (
	// ErrCodeNotFound is returned when a code does not exist
	ErrCodeNotFound = errors.New("verification code not found")
	// ErrCodeRedeemed is returned when a code was already used
	ErrCodeRedeemed = errors.New("verification code already redeemed")
)

// documentName is the store document backing verification codes
const documentName = "verify_codes"

// Manager owns the persisted verification codes
type Manager struct {
	mu    sync.Mutex
	store storage.Store
	codes models.VerificationDocument
}

// NewManager loads verification codes from the store
func NewManager(store storage.Store) (*Manager, error) {
	codes := models.VerificationDocument{}
	if err := store.Load(documentName, &codes); err != nil {
		return nil, err
	}
	return &Manager{store: store, codes: codes}, nil
}

// Generate creates a new unredeemed code
func (m *Manager) Generate(createdBy string) (models.VerificationCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	code := models.VerificationCode{
		Code:      strings.ToUpper(uuid.New().String()[:8]),
		CreatedBy: createdBy,
		CreatedAt: time.Now().Unix(),
	}
	m.codes[code.Code] = code
	return code, m.store.Save(documentName, m.codes)
}

// Redeem marks a code as used by the given user
func (m *Manager) Redeem(code, userID string) (models.VerificationCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.codes[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return models.VerificationCode{}, ErrCodeNotFound
	}
	if entry.RedeemedBy != "" {
		return models.VerificationCode{}, ErrCodeRedeemed
	}

	entry.RedeemedBy = userID
	entry.RedeemedAt = time.Now().Unix()
	m.codes[entry.Code] = entry
	return entry, m.store.Save(documentName, m.codes)
}

// Delete removes a code entirely
func (m *Manager) Delete(code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToUpper(strings.TrimSpace(code))
	if _, ok := m.codes[key]; !ok {
		return ErrCodeNotFound
	}
	delete(m.codes, key)
	return m.store.Save(documentName, m.codes)
}

// List returns all codes sorted by creation time
func (m *Manager) List() []models.VerificationCode {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.VerificationCode, 0, len(m.codes))
	for _, c := range m.codes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out
}
