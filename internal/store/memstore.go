package store

import (
	"context"

	"github.com/lucvt/tick/internal/model"
)

// Mem is an in-memory Store for tests and dry runs.
type Mem struct {
	Items   []model.Item
	SaveErr error // returned by Save when non-nil
	LoadErr error // returned by Load when non-nil
	Saves   int
}

func (m *Mem) Load(ctx context.Context) ([]model.Item, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make([]model.Item, len(m.Items))
	copy(out, m.Items)
	return out, nil
}

func (m *Mem) Save(ctx context.Context, items []model.Item) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Items = make([]model.Item, len(items))
	copy(m.Items, items)
	m.Saves++
	return nil
}

func (m *Mem) Close() error { return nil }
