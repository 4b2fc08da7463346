// Package historyui provides the Bubble Tea run history interface.
package historyui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordshuf/internal/model"
	"github.com/verte-zerg/wordshuf/internal/report"
)

// RunSource lists recorded runs.
type RunSource interface {
	ListRuns(ctx context.Context, cfg model.HistoryConfig) ([]model.RunRecord, error)
	CountByStatus(ctx context.Context) (map[model.Status]int, error)
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

const timeFormat = "2006-01-02 15:04:05"

// Model implements the Bubble Tea history UI.
type Model struct {
	source RunSource
	cfg    model.HistoryConfig

	runs    []model.RunRecord
	summary string
	errMsg  string

	table table.Model

	width  int
	height int
}

// NewModel constructs a history UI model and loads the first page of runs.
func NewModel(source RunSource, cfg model.HistoryConfig) *Model {
	m := &Model{
		source: source,
		cfg:    cfg,
		table: table.New(
			table.WithColumns(buildColumns(0)),
			table.WithFocused(true),
			table.WithHeight(1),
		),
	}
	m.table.SetStyles(tableStyles())
	m.reload()
	return m
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
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "f":
			m.cfg.Status = nextStatus(m.cfg.Status)
			m.reload()
			return m, nil
		case "r":
			m.reload()
			return m, nil
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	parts := []string{m.renderHeader()}
	if len(m.runs) == 0 && m.errMsg == "" {
		parts = append(parts, headerStyle.Render("No runs recorded yet."))
	} else {
		parts = append(parts, m.table.View())
	}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg))
	}
	parts = append(parts, footerStyle.Render("↑/↓ scroll · g/G top/bottom · f filter · r reload · q quit"))
	return strings.Join(parts, "\n")
}

func (m *Model) renderHeader() string {
	filter := "all"
	if m.cfg.Status != "" {
		filter = string(m.cfg.Status)
	}
	title := titleStyle.Render("Shuffle history")
	meta := headerStyle.Render(fmt.Sprintf("filter: %s · %s", filter, m.summary))
	return title + "  " + meta
}

func (m *Model) reload() {
	ctx := context.Background()
	runs, err := m.source.ListRuns(ctx, m.cfg)
	if err != nil {
		m.errMsg = fmt.Sprintf("Failed to load runs: %v", err)
		m.runs = nil
		m.table.SetRows(nil)
		return
	}
	m.errMsg = ""
	m.runs = runs
	counts, err := m.source.CountByStatus(ctx)
	if err != nil {
		m.errMsg = fmt.Sprintf("Failed to count runs: %v", err)
	} else {
		m.summary = report.Summary(counts)
	}
	m.table.SetRows(buildRows(runs))
	m.table.GotoTop()
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.table.SetColumns(buildColumns(m.width))
	m.table.SetWidth(m.width)
	// Title and footer lines; the table height includes its header.
	bodyHeight := m.height - 2
	if m.errMsg != "" {
		bodyHeight--
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.table.SetHeight(bodyHeight)
}

func buildColumns(width int) []table.Column {
	columns := []table.Column{
		{Title: "Started", Width: 19},
		{Title: "Status", Width: 15},
		{Title: "Lines", Width: 8},
		{Title: "Duration", Width: 9},
		{Title: "Input", Width: 20},
		{Title: "Output", Width: 20},
	}
	if width > 0 {
		fixed := 0
		for _, col := range columns[:4] {
			// Cell padding adds one column per cell.
			fixed += col.Width + 1
		}
		pathWidth := (width - fixed - 2) / 2
		if pathWidth < 12 {
			pathWidth = 12
		}
		columns[4].Width = pathWidth
		columns[5].Width = pathWidth
	}
	return columns
}

func buildRows(runs []model.RunRecord) []table.Row {
	rows := make([]table.Row, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, table.Row{
			run.StartedAt.Local().Format(timeFormat),
			string(run.Status),
			fmt.Sprintf("%d", run.Lines),
			fmt.Sprintf("%dms", run.DurationMs),
			run.InputPath,
			run.OutputPath,
		})
	}
	return rows
}

func nextStatus(current model.Status) model.Status {
	if current == "" {
		return model.Statuses[0]
	}
	for i, status := range model.Statuses {
		if status == current {
			if i+1 < len(model.Statuses) {
				return model.Statuses[i+1]
			}
			return ""
		}
	}
	return ""
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
