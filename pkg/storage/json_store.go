package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/goccy/go-json"
)

// JSONStore persists each named document as <dir>/<name>.json.
// Files are pretty-printed so operators can inspect and hand-edit them
// between restarts.
type JSONStore struct {
	dir string
}

// NewJSONStore creates a JSONStore rooted at dir, creating it if needed
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return &JSONStore{dir: dir}, nil
}

// path returns the file backing a named document
func (s *JSONStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads a named document. Absent or corrupt files leave `into`
// untouched and return nil, so callers always start from a usable default.
func (s *JSONStore) Load(name string, into interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading document %s: %w", name, err)
	}

	if err := json.Unmarshal(data, into); err != nil {
		logger.Warn(fmt.Sprintf("Document '%s' is unparseable, resetting to empty: %v", name, err), "Storage")
		return nil
	}
	return nil
}

// Save overwrites a named document. The write goes through a temp file and
// rename so a crash mid-write never leaves a half-written document behind.
func (s *JSONStore) Save(name string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", name, err)
	}

	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing document %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("committing document %s: %w", name, err)
	}
	return nil
}
