// Package store defines the persistence slot for the todo collection.
//
// Every backend keeps one named slot ("todos") holding the full ordered
// collection. Saves overwrite the whole slot; last write wins. No locking:
// there is exactly one mutator per process and this is a local tool.
package store

import (
	"context"
	"errors"

	"github.com/lucvt/tick/internal/model"
)

// Slot is the name of the single durable location used for persistence.
const Slot = "todos"

// ErrCorrupt marks persisted data that exists but cannot be decoded.
// Callers fail fast on it instead of silently starting from empty.
var ErrCorrupt = errors.New("persisted todos are corrupt")

// Store loads and saves the full collection.
// The concrete backends are jsonstore (default), badgerstore and sqlitestore.
type Store interface {
	Load(ctx context.Context) ([]model.Item, error)
	Save(ctx context.Context, items []model.Item) error
	Close() error
}
