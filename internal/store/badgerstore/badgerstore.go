// Package badgerstore keeps the collection in an embedded BadgerDB, as one
// JSON value under the "todos" key. Overkill for a todo list, handy when the
// data dir lives on flaky filesystems where atomic single-file writes are not
// guaranteed.
package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/lucvt/tick/internal/model"
	"github.com/lucvt/tick/internal/store"
)

// Store persists the collection under store.Slot in a badger db at <dir>/todos.badger.
type Store struct {
	db *badger.DB
}

// badgerLogger routes badger's chatty internal logging to slog at debug level.
type badgerLogger struct {
	log *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}
func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}
func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}
func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

// Open opens (creating if needed) the badger database under dir.
func Open(dir string, log *slog.Logger) (*Store, error) {
	path := filepath.Join(dir, store.Slot+".badger")
	if err := os.MkdirAll(path, 0o750); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	opts := badger.DefaultOptions(path).WithSyncWrites(true)
	if log != nil {
		opts = opts.WithLogger(badgerLogger{log: log})
	} else {
		opts = opts.WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a throwaway in-memory database for tests.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db}, nil
}

// Load reads the slot key. A missing key means an empty collection; a value
// that does not decode surfaces store.ErrCorrupt.
func (s *Store) Load(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := s.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get([]byte(store.Slot))
		if errors.Is(err, badger.ErrKeyNotFound) {
			items = []model.Item{}
			return nil
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", store.Slot, err)
		}
		return entry.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &items); err != nil {
				return fmt.Errorf("%w: key %s: %v", store.ErrCorrupt, store.Slot, err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Save overwrites the slot key with the full collection.
func (s *Store) Save(ctx context.Context, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(store.Slot), b)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", store.Slot, err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
