// Package tui is the interactive list view over a session. Unlike a
// save-on-quit editor, every mutation is persisted immediately through the
// session, so killing the terminal never loses confirmed changes.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lucvt/tick/internal/model"
	"github.com/lucvt/tick/internal/session"
)

// listItem adapts a model.Item to bubbles/list.Item.
type listItem struct {
	ID   int
	Text string
	Done bool
}

func (i listItem) labelText() string {
	box := boxUnchecked
	if i.Done {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.Text)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.labelText() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

type modelTUI struct {
	ctx  context.Context
	sess *session.Session
	list list.Model

	width  int
	height int

	// Inline add
	adding bool            // true when inline add is active
	ti     textinput.Model // text input for the new item
	addErr string          // last add validation error (shown inline)
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	boxStyled := mutedStyle.Render(boxUnchecked)
	textStyled := it.Text
	if it.Done {
		boxStyled = successStyle.Render(boxChecked)
		textStyled = doneStyle.Render(it.Text)
	}

	line := fmt.Sprintf("%s %s", boxStyled, textStyled)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Run starts the Bubble Tea list over the session's collection.
func Run(ctx context.Context, sess *session.Session) error {
	p := tea.NewProgram(newModel(ctx, sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(ctx context.Context, sess *session.Session) modelTUI {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	// Extend help with the add binding
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind} }

	m := modelTUI{ctx: ctx, sess: sess, list: l, width: 80, height: 24}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New item text..."
	m.ti.CharLimit = 200
	m.refresh()
	return m
}

// refresh rebuilds the visible list from the session (the single source of
// truth) and updates the header counts.
func (m *modelTUI) refresh() {
	items := m.sess.Items()
	li := make([]list.Item, 0, len(items))
	dn, pn := 0, 0
	for _, it := range items {
		if it.Done {
			dn++
		} else {
			pn++
		}
		li = append(li, listItem{ID: it.ID, Text: it.Text, Done: it.Done})
	}
	m.list.SetItems(li)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), dn,
		pendingStyle.Render("•"), pn,
		accentStyle.Render("Total"), len(items),
	)
}

func (m modelTUI) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = sz.Width, sz.Height
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				if _, err := m.sess.Add(m.ctx, m.ti.Value()); err != nil {
					m.addErr = "Text cannot be empty"
					return m, nil
				}
				m.sess.ClearDraft()
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				m.addErr = ""
				m.refresh()
				m.list.Select(len(m.list.Items()) - 1)
				return m, nil
			case "esc":
				// Keep the draft; reopening add mode restores it.
				m.sess.SetDraft(m.ti.Value())
				m.ti.Blur()
				m.adding = false
				m.addErr = ""
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		m.sess.SetDraft(m.ti.Value())
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if it, ok := m.selected(); ok {
				m.sess.Toggle(m.ctx, it.ID)
				m.refresh()
			}
			return m, nil
		case "d":
			if it, ok := m.selected(); ok {
				idx := m.list.Index()
				m.sess.Remove(m.ctx, it.ID)
				m.refresh()
				if idx >= len(m.list.Items()) {
					idx = len(m.list.Items()) - 1
				}
				if idx >= 0 {
					m.list.Select(idx)
				}
			}
			return m, nil
		case "a":
			m.adding = true
			m.ti.SetValue(m.sess.Draft())
			m.ti.CursorEnd()
			m.ti.Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 6
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += " — " + errorStyle.Render(m.addErr)
		}
		inputLine := title + "\n" + m.ti.View()
		content = content + "\n" + panelStyle.Render(inputLine)
	}
	return panelStyle.Render(content)
}

// itemsEqual reports whether the rendered rows still match the session; used
// by tests to keep refresh honest.
func itemsEqual(rows []list.Item, items []model.Item) bool {
	if len(rows) != len(items) {
		return false
	}
	for i, r := range rows {
		li, ok := r.(listItem)
		if !ok {
			return false
		}
		if li.ID != items[i].ID || li.Text != items[i].Text || li.Done != items[i].Done {
			return false
		}
	}
	return true
}
