// Package suggestui provides an interactive Bubble Tea view over a word
// index: suggestions update as the query is typed.
package suggestui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordshuf/internal/trie"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	modeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D7A65F"))
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Options controls the queries issued by the model.
type Options struct {
	Limit    int
	Distance int
	Fuzzy    bool
}

// fuzzyIndex is implemented by indexes that support edit-distance lookups.
type fuzzyIndex interface {
	Fuzzy(query string, maxDistance, limit int) []string
}

// Model implements the Bubble Tea suggestion view.
type Model struct {
	path  string
	index trie.Index
	opts  Options

	input   textinput.Model
	results []string
	status  string
	err     error

	width int
}

// NewModel constructs a suggestion view over index, loaded from path.
func NewModel(path string, index trie.Index, opts Options) *Model {
	if opts.Limit <= 0 {
		opts.Limit = 10
	}
	if _, ok := index.(fuzzyIndex); !ok {
		opts.Fuzzy = false
	}
	input := textinput.New()
	input.Prompt = "Query: "
	input.Placeholder = "prefix, a.c, a[bc]d"
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()
	return &Model{
		path:  path,
		index: index,
		opts:  opts,
		input: input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Results returns the suggestions currently shown.
func (m *Model) Results() []string {
	return m.results
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(1, msg.Width-lipgloss.Width(m.input.Prompt)-1)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if _, ok := m.index.(fuzzyIndex); ok {
				m.opts.Fuzzy = !m.opts.Fuzzy
				m.refresh()
			} else {
				m.status = "fuzzy search needs the trie index"
			}
			return m, nil
		case "ctrl+a":
			m.insertQuery()
			return m, nil
		case "ctrl+x":
			m.removeQuery()
			return m, nil
		}
	}
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.status = ""
		m.refresh()
	}
	return m, cmd
}

func (m *Model) refresh() {
	query := m.input.Value()
	m.err = nil
	if query == "" {
		m.results = nil
		return
	}
	if m.opts.Fuzzy {
		m.results = m.index.(fuzzyIndex).Fuzzy(query, m.opts.Distance, m.opts.Limit)
		return
	}
	m.results, m.err = m.index.Suggest(query, m.opts.Limit)
}

func (m *Model) insertQuery() {
	word := strings.TrimSpace(m.input.Value())
	switch {
	case word == "" || trie.IsPattern(word):
		m.status = "only plain words can be added"
	case m.index.Insert(word):
		m.status = fmt.Sprintf("added %q", word)
	default:
		m.status = fmt.Sprintf("%q is already indexed", word)
	}
	m.refresh()
}

func (m *Model) removeQuery() {
	word := strings.TrimSpace(m.input.Value())
	if m.index.Remove(word) {
		m.status = fmt.Sprintf("removed %q", word)
	} else {
		m.status = fmt.Sprintf("%q is not indexed", word)
	}
	m.refresh()
}

// View implements tea.Model.
func (m *Model) View() string {
	mode := "prefix"
	if m.opts.Fuzzy {
		mode = fmt.Sprintf("fuzzy ≤%d", m.opts.Distance)
	}
	header := titleStyle.Render(m.truncate(fmt.Sprintf("%s · %d words", m.path, m.index.Len()))) +
		" " + modeStyle.Render(mode)

	lines := []string{header, m.input.View(), ""}
	switch {
	case m.err != nil:
		lines = append(lines, errorStyle.Render(m.truncate(m.err.Error())))
	case m.input.Value() == "":
		lines = append(lines, emptyStyle.Render("type to search"))
	case len(m.results) == 0:
		lines = append(lines, emptyStyle.Render("no suggestions"))
	default:
		for _, word := range m.results {
			lines = append(lines, wordStyle.Render(m.truncate(word)))
		}
	}
	lines = append(lines, "")
	if m.status != "" {
		lines = append(lines, m.status)
	}
	lines = append(lines, footerStyle.Render("tab fuzzy · ctrl+a add · ctrl+x remove · esc quit"))
	return strings.Join(lines, "\n")
}

func (m *Model) truncate(s string) string {
	if m.width <= 0 {
		return s
	}
	return runewidth.Truncate(s, m.width, "…")
}
