package jsonstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucvt/tick/internal/model"
	"github.com/lucvt/tick/internal/store"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	items, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	require.NoError(t, err)

	cases := [][]model.Item{
		{},
		{{ID: 1, Text: "buy milk"}},
		{{ID: 2, Text: "a", Done: true}, {ID: 5, Text: "b"}, {ID: 9, Text: "c", Done: true}},
	}
	for _, want := range cases {
		require.NoError(t, s.Save(ctx, want))
		got, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLoadPersistedSlot(t *testing.T) {
	dir := t.TempDir()
	payload := `[{"id":5,"text":"x","done":true}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todos.json"), []byte(payload), 0o644))

	s, err := New(dir)
	require.NoError(t, err)
	items, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.Item{ID: 5, Text: "x", Done: true}, items[0])
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todos.json"), []byte("{not json"), 0o644))

	s, err := New(dir)
	require.NoError(t, err)
	_, err = s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrCorrupt))
}

func TestLoadLegacyShapeAssignsIDs(t *testing.T) {
	dir := t.TempDir()
	payload := `[{"title":"old a","done":false},{"title":"old b","done":true}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todos.json"), []byte(payload), 0o644))

	s, err := New(dir)
	require.NoError(t, err)
	items, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.Item{ID: 1, Text: "old a"}, items[0])
	assert.Equal(t, model.Item{ID: 2, Text: "old b", Done: true}, items[1])
}
