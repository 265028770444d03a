package afk

import "testing"

func TestSetAndGet(t *testing.T) {
	tracker := NewTracker()

	tracker.Set("1", "lunch")

	entry, ok := tracker.Get("1")
	if !ok {
		t.Fatal("Get() after Set() should find the entry")
	}
	if entry.Reason != "lunch" {
		t.Errorf("Reason = %v, want lunch", entry.Reason)
	}
	if entry.Since.IsZero() {
		t.Error("Since should be set")
	}
}

func TestClear(t *testing.T) {
	tracker := NewTracker()
	tracker.Set("1", "afk")

	if !tracker.Clear("1") {
		t.Error("Clear() should report an existing entry was removed")
	}
	if _, ok := tracker.Get("1"); ok {
		t.Error("Get() after Clear() should find nothing")
	}
	if tracker.Clear("1") {
		t.Error("Clear() of a missing entry should report false")
	}
}

func TestSetOverwrites(t *testing.T) {
	tracker := NewTracker()
	tracker.Set("1", "first")
	tracker.Set("1", "second")

	entry, _ := tracker.Get("1")
	if entry.Reason != "second" {
		t.Errorf("Reason = %v, want second", entry.Reason)
	}
}
