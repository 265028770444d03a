package permissions

import (
	"testing"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/storage"
)

func newTestPolicy(t *testing.T) (*Policy, storage.Store) {
	t.Helper()
	store, err := storage.NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONStore() returned error: %v", err)
	}
	policy, err := NewPolicy(store)
	if err != nil {
		t.Fatalf("NewPolicy() returned error: %v", err)
	}
	return policy, store
}

func TestAuthorizeUnrestricted(t *testing.T) {
	policy, _ := newTestPolicy(t)

	if !policy.Authorize(Actor{UserID: "1"}, Unrestricted) {
		t.Error("Unrestricted operations must be open to everyone")
	}
}

func TestAuthorizePrivileged(t *testing.T) {
	policy, _ := newTestPolicy(t)

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"plain user", Actor{UserID: "1"}, false},
		{"administrator", Actor{UserID: "1", IsAdministrator: true}, true},
		{"guild owner", Actor{UserID: "1", IsGuildOwner: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Authorize(tt.actor, Privileged); got != tt.want {
				t.Errorf("Authorize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGrantAllowsPrivileged(t *testing.T) {
	policy, _ := newTestPolicy(t)

	if err := policy.Grant("42"); err != nil {
		t.Fatalf("Grant() returned error: %v", err)
	}

	if !policy.Authorize(Actor{UserID: "42"}, Privileged) {
		t.Error("Granted user should pass the privileged check")
	}
}

func TestGrantRevokeGrantIdempotence(t *testing.T) {
	policy, _ := newTestPolicy(t)

	if err := policy.Grant("42"); err != nil {
		t.Fatalf("Grant() returned error: %v", err)
	}
	if err := policy.Grant("42"); err != nil {
		t.Fatalf("repeated Grant() returned error: %v", err)
	}
	if err := policy.Revoke("42"); err != nil {
		t.Fatalf("Revoke() returned error: %v", err)
	}
	if err := policy.Grant("42"); err != nil {
		t.Fatalf("Grant() after Revoke() returned error: %v", err)
	}

	allowed := policy.Allowed()
	if len(allowed) != 1 || allowed[0] != "42" {
		t.Errorf("Allowed() = %v, want exactly [42]", allowed)
	}
}

func TestPolicyPersistence(t *testing.T) {
	policy, store := newTestPolicy(t)

	if err := policy.Grant("7"); err != nil {
		t.Fatalf("Grant() returned error: %v", err)
	}
	if err := policy.Grant("9"); err != nil {
		t.Fatalf("Grant() returned error: %v", err)
	}

	// Simulate a restart by loading a fresh policy from the same store
	reloaded, err := NewPolicy(store)
	if err != nil {
		t.Fatalf("NewPolicy() after restart returned error: %v", err)
	}

	if !reloaded.IsAllowed("7") || !reloaded.IsAllowed("9") {
		t.Errorf("Reloaded allow-list = %v, want [7 9]", reloaded.Allowed())
	}
}
