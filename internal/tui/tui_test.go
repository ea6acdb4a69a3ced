package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucvt/tick/internal/model"
	"github.com/lucvt/tick/internal/session"
	"github.com/lucvt/tick/internal/store"
)

func newTestModel(t *testing.T, mem *store.Mem) modelTUI {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sess, err := session.Open(context.Background(), mem, log)
	require.NoError(t, err)
	return newModel(context.Background(), sess)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRefreshMirrorsSession(t *testing.T) {
	mem := &store.Mem{Items: []model.Item{
		{ID: 1, Text: "a", Done: true},
		{ID: 4, Text: "b"},
	}}
	m := newTestModel(t, mem)
	assert.True(t, itemsEqual(m.list.Items(), mem.Items))
}

func TestSpaceTogglesAndPersists(t *testing.T) {
	mem := &store.Mem{Items: []model.Item{{ID: 7, Text: "x"}}}
	m := newTestModel(t, mem)

	next, _ := m.Update(keyRunes(" "))
	m = next.(modelTUI)

	require.Len(t, mem.Items, 1)
	assert.True(t, mem.Items[0].Done)
	assert.True(t, itemsEqual(m.list.Items(), mem.Items))
}

func TestDeleteRemovesAndPersists(t *testing.T) {
	mem := &store.Mem{Items: []model.Item{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}}
	m := newTestModel(t, mem)

	next, _ := m.Update(keyRunes("d"))
	m = next.(modelTUI)

	require.Len(t, mem.Items, 1)
	assert.Equal(t, 2, mem.Items[0].ID)
	assert.True(t, itemsEqual(m.list.Items(), mem.Items))
}

func TestInlineAddCommitsAndClearsDraft(t *testing.T) {
	mem := &store.Mem{}
	m := newTestModel(t, mem)

	next, _ := m.Update(keyRunes("a"))
	m = next.(modelTUI)
	require.True(t, m.adding)

	for _, r := range "buy milk" {
		next, _ = m.Update(keyRunes(string(r)))
		m = next.(modelTUI)
	}
	assert.Equal(t, "buy milk", m.sess.Draft())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(modelTUI)

	require.Len(t, mem.Items, 1)
	assert.Equal(t, model.Item{ID: 1, Text: "buy milk"}, mem.Items[0])
	assert.False(t, m.adding)
	assert.Equal(t, "", m.sess.Draft())
}

func TestInlineAddRejectsEmptyText(t *testing.T) {
	mem := &store.Mem{}
	m := newTestModel(t, mem)

	next, _ := m.Update(keyRunes("a"))
	m = next.(modelTUI)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(modelTUI)

	assert.True(t, m.adding)
	assert.NotEmpty(t, m.addErr)
	assert.Empty(t, mem.Items)
}

func TestEscKeepsDraftForNextAdd(t *testing.T) {
	mem := &store.Mem{}
	m := newTestModel(t, mem)

	next, _ := m.Update(keyRunes("a"))
	m = next.(modelTUI)
	next, _ = m.Update(keyRunes("half"))
	m = next.(modelTUI)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(modelTUI)
	require.False(t, m.adding)

	next, _ = m.Update(keyRunes("a"))
	m = next.(modelTUI)
	assert.Equal(t, "half", m.ti.Value())
}
