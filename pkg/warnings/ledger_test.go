package warnings

import (
	"fmt"
	"testing"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/models"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/storage"
)

// recordingNotifier captures best-effort notifications for assertions
type recordingNotifier struct {
	notified []string
}

func (r *recordingNotifier) NotifyWarning(userID string, _ models.Warning) {
	r.notified = append(r.notified, userID)
}

func newTestLedger(t *testing.T) (*Ledger, storage.Store, *recordingNotifier) {
	t.Helper()
	store, err := storage.NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONStore() returned error: %v", err)
	}
	notifier := &recordingNotifier{}
	ledger, err := NewLedger(store, notifier)
	if err != nil {
		t.Fatalf("NewLedger() returned error: %v", err)
	}
	return ledger, store, notifier
}

func TestWarnThenList(t *testing.T) {
	ledger, _, notifier := newTestLedger(t)

	created, err := ledger.Warn("subject", "mod-id", "ModName", "spamming")
	if err != nil {
		t.Fatalf("Warn() returned error: %v", err)
	}

	list := ledger.List("subject")
	if len(list) != 1 {
		t.Fatalf("List() returned %d entries, want 1", len(list))
	}

	last := list[len(list)-1]
	if last.Reason != "spamming" {
		t.Errorf("Reason = %v, want %v", last.Reason, "spamming")
	}
	if last.Moderator != "ModName" || last.ModeratorID != "mod-id" {
		t.Errorf("Moderator = %v/%v, want ModName/mod-id", last.Moderator, last.ModeratorID)
	}
	if last.ID != created.ID {
		t.Errorf("Listed id = %v, want %v", last.ID, created.ID)
	}

	if len(notifier.notified) != 1 || notifier.notified[0] != "subject" {
		t.Errorf("Notifier calls = %v, want [subject]", notifier.notified)
	}
}

func TestWarnSequencePreservesOrderAndUniqueIDs(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	const n = 30
	for i := 0; i < n; i++ {
		if _, err := ledger.Warn("subject", "mod", "Mod", fmt.Sprintf("reason %d", i)); err != nil {
			t.Fatalf("Warn() #%d returned error: %v", i, err)
		}
	}

	list := ledger.List("subject")
	if len(list) != n {
		t.Fatalf("List() returned %d entries, want %d", len(list), n)
	}

	seen := make(map[string]bool, n)
	for i, w := range list {
		if w.Reason != fmt.Sprintf("reason %d", i) {
			t.Errorf("Entry %d has reason %q, out of call order", i, w.Reason)
		}
		if seen[w.ID] {
			t.Errorf("Duplicate warning id %s", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestRemoveByID(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	first, _ := ledger.Warn("subject", "mod", "Mod", "first")
	second, _ := ledger.Warn("subject", "mod", "Mod", "second")
	third, _ := ledger.Warn("subject", "mod", "Mod", "third")

	removed, err := ledger.Remove("subject", second.ID)
	if err != nil {
		t.Fatalf("Remove() returned error: %v", err)
	}
	if removed.Reason != "second" {
		t.Errorf("Removed reason = %v, want second", removed.Reason)
	}

	list := ledger.List("subject")
	if len(list) != 2 {
		t.Fatalf("List() after remove returned %d entries, want 2", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != third.ID {
		t.Errorf("Remaining ids = %v/%v, want %v/%v", list[0].ID, list[1].ID, first.ID, third.ID)
	}
}

func TestRemoveNonexistent(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	ledger.Warn("subject", "mod", "Mod", "only one")

	if _, err := ledger.Remove("subject", "nonexistent"); err != ErrNotFound {
		t.Errorf("Remove() error = %v, want ErrNotFound", err)
	}
	if _, err := ledger.Remove("other-subject", "anything"); err != ErrNotFound {
		t.Errorf("Remove() against empty subject error = %v, want ErrNotFound", err)
	}

	if got := len(ledger.List("subject")); got != 1 {
		t.Errorf("List() after failed remove returned %d entries, want 1", got)
	}
}

func TestLedgerPersistenceRoundTrip(t *testing.T) {
	ledger, store, _ := newTestLedger(t)

	a, _ := ledger.Warn("alpha", "mod", "Mod", "one")
	ledger.Warn("alpha", "mod", "Mod", "two")
	ledger.Warn("beta", "mod", "Mod", "three")

	// Simulate a restart
	reloaded, err := NewLedger(store, nil)
	if err != nil {
		t.Fatalf("NewLedger() after restart returned error: %v", err)
	}

	if got := len(reloaded.List("alpha")); got != 2 {
		t.Errorf("Reloaded alpha count = %d, want 2", got)
	}
	if got := len(reloaded.List("beta")); got != 1 {
		t.Errorf("Reloaded beta count = %d, want 1", got)
	}
	if reloaded.List("alpha")[0].ID != a.ID {
		t.Error("Reloaded ledger lost warning identity")
	}
	if reloaded.Count() != 3 {
		t.Errorf("Reloaded Count() = %d, want 3", reloaded.Count())
	}
}

func TestListUnknownSubjectIsEmpty(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	if got := ledger.List("nobody"); len(got) != 0 {
		t.Errorf("List() for unknown subject = %v, want empty", got)
	}
}
