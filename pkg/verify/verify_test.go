package verify

import (
	"strings"
	"testing"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/storage"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store, err := storage.NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONStore() returned error: %v", err)
	}
	m, err := NewManager(store)
	if err != nil {
		t.Fatalf("NewManager() returned error: %v", err)
	}
	return m
}

func TestGenerateAndRedeem(t *testing.T) {
	m := newTestManager(t)

	code, err := m.Generate("staff-1")
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}
	if len(code.Code) != 8 {
		t.Errorf("Code length = %d, want 8", len(code.Code))
	}

	redeemed, err := m.Redeem(code.Code, "member-1")
	if err != nil {
		t.Fatalf("Redeem() returned error: %v", err)
	}
	if redeemed.RedeemedBy != "member-1" {
		t.Errorf("RedeemedBy = %v, want member-1", redeemed.RedeemedBy)
	}

	// A code is one-shot
	if _, err := m.Redeem(code.Code, "member-2"); err != ErrCodeRedeemed {
		t.Errorf("second Redeem() error = %v, want ErrCodeRedeemed", err)
	}
}

func TestRedeemUnknownCode(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Redeem("NOPE1234", "member-1"); err != ErrCodeNotFound {
		t.Errorf("Redeem() error = %v, want ErrCodeNotFound", err)
	}
}

func TestRedeemNormalizesInput(t *testing.T) {
	m := newTestManager(t)

	code, _ := m.Generate("staff-1")

	// lowercase + surrounding spaces should still match
	lowered := "  " + strings.ToLower(code.Code) + " "
	if _, err := m.Redeem(lowered, "member-1"); err != nil {
		t.Errorf("Redeem() of padded code returned error: %v", err)
	}
}

func TestDeleteAndList(t *testing.T) {
	m := newTestManager(t)

	a, _ := m.Generate("staff-1")
	b, _ := m.Generate("staff-1")

	if got := len(m.List()); got != 2 {
		t.Fatalf("List() returned %d codes, want 2", got)
	}

	if err := m.Delete(a.Code); err != nil {
		t.Fatalf("Delete() returned error: %v", err)
	}
	if err := m.Delete(a.Code); err != ErrCodeNotFound {
		t.Errorf("Delete() of missing code error = %v, want ErrCodeNotFound", err)
	}

	list := m.List()
	if len(list) != 1 || list[0].Code != b.Code {
		t.Errorf("List() after delete = %v, want only %v", list, b.Code)
	}
}
