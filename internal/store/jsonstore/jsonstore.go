// Package jsonstore is the default backend: a single human-readable JSON
// file, portable, diff-friendly. No locking; fine for a local single-user
// tool.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucvt/tick/internal/model"
	"github.com/lucvt/tick/internal/store"
)

const dataFileName = store.Slot + ".json"

// wireItem also carries the legacy field set ({"title","done"}, no id) so an
// old data file keeps loading; ids are assigned on the fly in that case.
type wireItem struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Done  bool   `json:"done"`
	Title string `json:"title,omitempty"`
}

// Store persists the collection as <dir>/todos.json.
type Store struct {
	Dir string
}

// New returns a Store rooted at dir (cwd when dir is empty).
func New(dir string) (*Store, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	return &Store{Dir: dir}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.Dir, dataFileName)
}

// Load reads the slot. A missing file means an empty collection; a file that
// does not parse surfaces store.ErrCorrupt.
func (s *Store) Load(ctx context.Context) ([]model.Item, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var wire []wireItem
	if err := json.Unmarshal(b, &wire); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", store.ErrCorrupt, s.path(), err)
	}
	items := make([]model.Item, 0, len(wire))
	nextID := 1
	for _, w := range wire {
		it := model.Item{ID: w.ID, Text: w.Text, Done: w.Done}
		if it.Text == "" && w.Title != "" {
			it.Text = w.Title
		}
		if it.ID == 0 {
			it.ID = nextID
		}
		if it.ID >= nextID {
			nextID = it.ID + 1
		}
		items = append(items, it)
	}
	return items, nil
}

// Save overwrites the slot with the full collection.
func (s *Store) Save(ctx context.Context, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path(), b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
