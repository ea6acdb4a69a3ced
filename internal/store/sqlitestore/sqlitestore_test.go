package sqlitestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucvt/tick/internal/model"
)

func TestLoadEmptyDB(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	items, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	cases := [][]model.Item{
		{},
		{{ID: 1, Text: "buy milk"}},
		{{ID: 9, Text: "first"}, {ID: 2, Text: "second", Done: true}, {ID: 5, Text: "third"}},
	}
	for _, want := range cases {
		require.NoError(t, s.Save(ctx, want))
		got, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestOrderSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(ctx, dir)
	require.NoError(t, err)
	// Insertion order deliberately disagrees with id order.
	want := []model.Item{{ID: 3, Text: "c"}, {ID: 1, Text: "a", Done: true}, {ID: 2, Text: "b"}}
	require.NoError(t, s.Save(ctx, want))
	require.NoError(t, s.Close())

	s2, err := Open(ctx, dir)
	require.NoError(t, err)
	defer s2.Close()
	got, err := s2.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
