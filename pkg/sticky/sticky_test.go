package sticky

import (
	"testing"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/storage"
)

func newTestManager(t *testing.T) (*Manager, storage.Store) {
	t.Helper()
	store, err := storage.NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONStore() returned error: %v", err)
	}
	m, err := NewManager(store)
	if err != nil {
		t.Fatalf("NewManager() returned error: %v", err)
	}
	return m, store
}

func TestSetGetRemove(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.Set("chan-1", "read the rules"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}

	s, ok := m.Get("chan-1")
	if !ok || s.Content != "read the rules" {
		t.Errorf("Get() = %v, %v; want content and true", s, ok)
	}

	if err := m.Remove("chan-1"); err != nil {
		t.Fatalf("Remove() returned error: %v", err)
	}
	if _, ok := m.Get("chan-1"); ok {
		t.Error("Get() after Remove() should find nothing")
	}

	// Removing again is a no-op
	if err := m.Remove("chan-1"); err != nil {
		t.Errorf("Remove() of missing entry returned error: %v", err)
	}
}

func TestTrackRepost(t *testing.T) {
	m, store := newTestManager(t)

	m.Set("chan-1", "sticky text")
	if err := m.TrackRepost("chan-1", "msg-99"); err != nil {
		t.Fatalf("TrackRepost() returned error: %v", err)
	}

	s, _ := m.Get("chan-1")
	if s.LastMessageID != "msg-99" {
		t.Errorf("LastMessageID = %v, want msg-99", s.LastMessageID)
	}

	// Tracking a channel without a sticky is a no-op
	if err := m.TrackRepost("chan-2", "msg-1"); err != nil {
		t.Errorf("TrackRepost() for missing sticky returned error: %v", err)
	}

	// Survives a restart
	reloaded, err := NewManager(store)
	if err != nil {
		t.Fatalf("NewManager() after restart returned error: %v", err)
	}
	s, ok := reloaded.Get("chan-1")
	if !ok || s.LastMessageID != "msg-99" {
		t.Errorf("Reloaded sticky = %v, %v; want tracked message id", s, ok)
	}
}
