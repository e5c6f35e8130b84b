package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one <name>.json per collection under a base directory.
// Writes land in a temp file first and are renamed into place so a reader
// never observes a torn document.
type FileStore struct {
	dir string
}

// NewFileStore ensures the data directory exists and returns a handle.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Read unmarshals the collection document into dest.
func (s *FileStore) Read(_ context.Context, name string, dest interface{}) error {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoRecord
		}
		return fmt.Errorf("read collection %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode collection %s: %w", name, err)
	}
	return nil
}

// Write replaces the collection document.
func (s *FileStore) Write(_ context.Context, name string, value interface{}) error {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}

	path := s.path(name)
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("stage collection %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("flush collection %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit collection %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) path(name string) string {
	// Collection names are caller-controlled for catalogs; strip anything
	// that could escape the data directory.
	clean := strings.ReplaceAll(filepath.Base(name), string(filepath.Separator), "_")
	return filepath.Join(s.dir, clean+".json")
}
