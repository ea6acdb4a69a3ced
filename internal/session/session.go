// Package session ties the pure list core to a persistence slot. It owns the
// in-memory collection and the draft text, and mirrors every successful
// mutation into the store, in mutation order.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lucvt/tick/internal/list"
	"github.com/lucvt/tick/internal/model"
	"github.com/lucvt/tick/internal/store"
)

// ErrEmptyText rejects adds whose text is empty after trimming.
var ErrEmptyText = errors.New("todo text is empty")

// Session is the single mutator of the collection. Not safe for concurrent
// use; the CLI and TUI both drive it from one goroutine.
type Session struct {
	items []model.Item
	draft string
	store store.Store
	log   *slog.Logger
}

// Open performs the one startup read of the slot. Corrupt persisted data
// fails Open (check with errors.Is(err, store.ErrCorrupt)); a missing slot
// yields an empty collection.
func Open(ctx context.Context, st store.Store, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.Default()
	}
	items, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", store.Slot, err)
	}
	return &Session{items: items, store: st, log: log}, nil
}

// Items returns a copy of the current collection.
func (s *Session) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the current collection size.
func (s *Session) Len() int { return len(s.items) }

// Add trims text, appends a new pending item and persists. The returned Item
// carries the assigned id.
func (s *Session) Add(ctx context.Context, text string) (model.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Item{}, ErrEmptyText
	}
	s.items = list.Add(s.items, text)
	it := s.items[len(s.items)-1]
	s.persist(ctx)
	return it, nil
}

// Toggle flips the done flag of the item with the given id and persists.
// It reports whether the collection changed; an unknown id is a no-op.
func (s *Session) Toggle(ctx context.Context, id int) bool {
	if !s.has(id) {
		return false
	}
	s.items = list.Toggle(s.items, id)
	s.persist(ctx)
	return true
}

// Remove drops the item with the given id and persists.
// It reports whether the collection changed; an unknown id is a no-op.
func (s *Session) Remove(ctx context.Context, id int) bool {
	if !s.has(id) {
		return false
	}
	s.items = list.Remove(s.items, id)
	s.persist(ctx)
	return true
}

// Draft is the pending text for the next item.
func (s *Session) Draft() string { return s.draft }

// SetDraft replaces the pending text.
func (s *Session) SetDraft(v string) { s.draft = v }

// ClearDraft resets the pending text after a successful add.
func (s *Session) ClearDraft() { s.draft = "" }

func (s *Session) has(id int) bool {
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// persist mirrors the collection into the slot. A failed write is logged and
// swallowed: durability is lost for that write but the in-memory state stays,
// and the next successful write catches up (full overwrite, last write wins).
func (s *Session) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.items); err != nil {
		s.log.Error("persist failed", "slot", store.Slot, "items", len(s.items), "err", err)
	}
}
