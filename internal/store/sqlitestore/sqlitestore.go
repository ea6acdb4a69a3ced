// Package sqlitestore keeps the collection in a local SQLite file. One table,
// replace-all saves inside a transaction; the pos column preserves insertion
// order independently of ids.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/lucvt/tick/internal/model"
	"github.com/lucvt/tick/internal/store"
)

// Store persists the collection in <dir>/todos.sqlite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the db under dir and applies the schema.
func Open(ctx context.Context, dir string) (*Store, error) {
	path := filepath.Join(dir, store.Slot+".sqlite")
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pragma: %w", err)
		}
	}
	schema := `CREATE TABLE IF NOT EXISTS todos (
		id   INTEGER NOT NULL,
		text TEXT    NOT NULL,
		done INTEGER NOT NULL DEFAULT 0,
		pos  INTEGER NOT NULL,
		PRIMARY KEY (id)
	);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Load reads all rows in insertion order. An empty table is an empty
// collection; undecodable rows cannot happen with this schema, but a scan
// failure still comes back wrapped as store.ErrCorrupt.
func (s *Store) Load(ctx context.Context) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, text, done FROM todos ORDER BY pos ASC`)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var it model.Item
		var done int
		if err := rows.Scan(&it.ID, &it.Text, &done); err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", store.ErrCorrupt, err)
		}
		it.Done = done != 0
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return items, nil
}

// Save replaces the whole table with the given collection in one transaction.
func (s *Store) Save(ctx context.Context, items []model.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM todos`); err != nil {
		return fmt.Errorf("clear todos: %w", err)
	}
	for pos, it := range items {
		done := 0
		if it.Done {
			done = 1
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO todos(id, text, done, pos) VALUES(?, ?, ?, ?)`,
			it.ID, it.Text, done, pos); err != nil {
			return fmt.Errorf("insert todo %d: %w", it.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
