// Package preview provides a Bubble Tea pager for word lists.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	blankStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea word list pager.
type Model struct {
	path  string
	words []string

	viewport viewport.Model
	ready    bool

	width  int
	height int
}

// NewModel constructs a pager over words loaded from path.
func NewModel(path string, words []string) *Model {
	return &Model{
		path:     path,
		words:    words,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = maxInt(1, msg.Height-2)
		m.viewport.SetContent(renderLines(m.words, msg.Width))
		m.ready = true
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	header := titleStyle.Render(runewidth.Truncate(fmt.Sprintf("%s · %d words", m.path, len(m.words)), m.width, "…"))
	footer := footerStyle.Render(fmt.Sprintf("%3.f%% · ↑/↓ scroll · g/G top/bottom · q quit", m.viewport.ScrollPercent()*100))
	return strings.Join([]string{header, m.viewport.View(), footer}, "\n")
}

// renderLines numbers each word and cuts lines to width.
func renderLines(words []string, width int) string {
	if len(words) == 0 {
		return blankStyle.Render("(empty)")
	}
	digits := len(fmt.Sprintf("%d", len(words)))
	lines := make([]string, 0, len(words))
	for i, word := range words {
		number := fmt.Sprintf("%*d", digits, i+1)
		avail := width - len(number) - 1
		if avail < 1 {
			avail = 1
		}
		var text string
		if word == "" {
			text = blankStyle.Render("(blank)")
		} else {
			text = runewidth.Truncate(word, avail, "…")
		}
		lines = append(lines, numberStyle.Render(number)+" "+text)
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
