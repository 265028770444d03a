// Package permissions decides whether an actor may invoke privileged
// operations. Privilege comes from the platform's administrator bit, guild
// ownership, or a persisted allow-list maintained with /admin permissions.
package permissions

import (
	"errors"
	"sort"
	"sync"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/storage"
)

// ErrDenied is returned when an actor fails the privileged check
var ErrDenied = errors.New("permission denied")

// documentName is the store document backing the allow-list
const documentName = "custom_perms"

// Class is the privilege class of an operation
type Class int

const (
	// Unrestricted operations are open to everyone
	Unrestricted Class = iota
	// Privileged operations require admin, ownership, or an allow-list entry
	Privileged
)

// Actor describes the invoking user as seen by the policy
type Actor struct {
	UserID          string
	IsAdministrator bool
	IsGuildOwner    bool
}

// Policy authorizes operations and owns the persisted allow-list
type Policy struct {
	mu      sync.Mutex
	store   storage.Store
	allowed map[string]struct{}
}

// NewPolicy loads the allow-list from the store
func NewPolicy(store storage.Store) (*Policy, error) {
	var ids []string
	if err := store.Load(documentName, &ids); err != nil {
		return nil, err
	}

	allowed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}

	return &Policy{store: store, allowed: allowed}, nil
}

// Authorize reports whether the actor may invoke an operation of the given class
func (p *Policy) Authorize(actor Actor, class Class) bool {
	if class == Unrestricted {
		return true
	}
	if actor.IsAdministrator || actor.IsGuildOwner {
		return true
	}
	return p.IsAllowed(actor.UserID)
}

// IsAllowed reports whether a user id is on the allow-list
func (p *Policy) IsAllowed(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.allowed[userID]
	return ok
}

// Grant adds a user to the allow-list. Granting an already-granted user is
// a no-op that still succeeds.
func (p *Policy) Grant(userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.allowed[userID]; ok {
		return nil
	}
	p.allowed[userID] = struct{}{}
	return p.persist()
}

// Revoke removes a user from the allow-list
func (p *Policy) Revoke(userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.allowed[userID]; !ok {
		return nil
	}
	delete(p.allowed, userID)
	return p.persist()
}

// Allowed returns a sorted copy of the allow-list
func (p *Policy) Allowed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	ids := make([]string, 0, len(p.allowed))
	for id := range p.allowed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// persist rewrites the whole document. Callers hold p.mu.
func (p *Policy) persist() error {
	ids := make([]string, 0, len(p.allowed))
	for id := range p.allowed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return p.store.Save(documentName, ids)
}
