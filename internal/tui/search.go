package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type searchModel struct {
	input textinput.Model
}

func newSearchModel() searchModel {
	ti := textinput.New()
	ti.Placeholder = "title, description or tag"
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()
	return searchModel{input: ti}
}

func (s searchModel) init() tea.Cmd {
	return textinput.Blink
}

func (s searchModel) view() string {
	out := titleStyle.Render("Search photos") + "\n\n"
	out += s.input.View() + "\n\n"
	out += helpStyle.Render("enter search · esc cancel")
	return out
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenGallery
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			query := strings.TrimSpace(m.search.input.Value())
			g := &m.gallery
			if query == "" {
				g.filter = filterAll
				g.searchQuery = ""
			} else {
				g.filter = filterSearch
				g.searchQuery = query
			}
			g.cursor = 0
			g.reload(m.storages)
			m.screen = m.guardScreen(screenGallery)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}
