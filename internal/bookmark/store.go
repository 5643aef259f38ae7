// Package bookmark persists package bookmarks as a JSON file in the state
// directory, mirroring the session store's file handling.
package bookmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const storeFileName = "bookmarks.json"

// Bookmark identifies one saved package option within a family.
type Bookmark struct {
	FamilyCode   string `json:"family_code"`
	FamilyName   string `json:"family_name"`
	VariantName  string `json:"variant_name"`
	OptionName   string `json:"option_name"`
	Order        int    `json:"order"`
	IsEnterprise bool   `json:"is_enterprise,omitempty"`
}

// Store is the mutex-guarded bookmark file.
type Store struct {
	mu   sync.Mutex
	path string
	list []Bookmark
}

// Open loads (or initializes) the bookmark store in dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	s := &Store{path: filepath.Join(dir, storeFileName)}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}
	if err := json.Unmarshal(raw, &s.list); err != nil {
		return nil, fmt.Errorf("parse bookmarks: %w", err)
	}
	return s, nil
}

// Add stores a bookmark. Returns false without writing when an entry with
// the same family, variant and option already exists.
func (s *Store) Add(b Bookmark) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.list {
		if existing.FamilyCode == b.FamilyCode &&
			existing.VariantName == b.VariantName &&
			existing.OptionName == b.OptionName {
			return false, nil
		}
	}
	s.list = append(s.list, b)
	return true, s.save()
}

// Remove deletes the bookmark at the given index.
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.list) {
		return fmt.Errorf("bookmark index %d out of range", index)
	}
	s.list = append(s.list[:index], s.list[index+1:]...)
	return s.save()
}

// List returns the bookmarks in saved order.
func (s *Store) List() []Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Bookmark, len(s.list))
	copy(out, s.list)
	return out
}

func (s *Store) save() error {
	raw, err := json.MarshalIndent(s.list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write bookmarks: %w", err)
	}
	return os.Rename(tmp, s.path)
}
