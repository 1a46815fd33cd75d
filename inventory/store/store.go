// Package store persists the item collection as a single JSON document on
// disk, the durable slot the dashboard rehydrates from at startup.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
)

type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the snapshot. A missing file is an empty collection, not an
// error: first runs start from nothing.
func (s *Store) Load() ([]inventory.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var items []inventory.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	return items, nil
}

// Save overwrites the slot with the full collection. The write goes through
// a temp file and a rename so a crash mid-write cannot leave a truncated
// snapshot behind.
func (s *Store) Save(items []inventory.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []inventory.Item{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	return nil
}
