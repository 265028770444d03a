package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJSONStoreRoundTrip(t *testing.T) {
	store, err := NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONStore() returned error: %v", err)
	}

	saved := map[string][]string{
		"100": {"a", "b"},
		"200": {"c"},
	}

	if err := store.Save("warnings", saved); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	loaded := map[string][]string{}
	if err := store.Load("warnings", &loaded); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("Loaded %d entries, want 2", len(loaded))
	}
	if len(loaded["100"]) != 2 || loaded["100"][0] != "a" {
		t.Errorf("Loaded[\"100\"] = %v, want [a b]", loaded["100"])
	}
}

func TestJSONStoreLoadMissingDocument(t *testing.T) {
	store, err := NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONStore() returned error: %v", err)
	}

	loaded := map[string]string{"keep": "me"}
	if err := store.Load("nothing-here", &loaded); err != nil {
		t.Fatalf("Load() of a missing document should not error, got: %v", err)
	}

	// The target must be left untouched
	if loaded["keep"] != "me" {
		t.Error("Load() of a missing document must not modify the target")
	}
}

func TestJSONStoreCorruptDocumentResetsToEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONStore(dir)
	if err != nil {
		t.Fatalf("NewJSONStore() returned error: %v", err)
	}

	// Simulate a bad manual edit
	if err := os.WriteFile(filepath.Join(dir, "perms.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	loaded := map[string]bool{}
	if err := store.Load("perms", &loaded); err != nil {
		t.Fatalf("Load() of a corrupt document should not error, got: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Load() of a corrupt document yielded %v, want empty", loaded)
	}
}

func TestJSONStoreOverwrite(t *testing.T) {
	store, err := NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONStore() returned error: %v", err)
	}

	if err := store.Save("doc", []string{"one", "two"}); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if err := store.Save("doc", []string{"three"}); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	var loaded []string
	if err := store.Load("doc", &loaded); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != "three" {
		t.Errorf("Loaded = %v, want [three]", loaded)
	}
}

func TestJSONStoreFilesAreHumanReadable(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONStore(dir)
	if err != nil {
		t.Fatalf("NewJSONStore() returned error: %v", err)
	}

	if err := store.Save("doc", map[string]int{"a": 1}); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "doc.json"))
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	// Indented output is part of the contract: files are hand-editable
	if string(data) == `{"a":1}` {
		t.Error("Saved document should be pretty-printed")
	}
}
