// Package report renders run history as plain text.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/wordshuf/internal/model"
)

const (
	terminalWidthBackup = 100
	minPathWidth        = 12
	timeFormat          = "2006-01-02 15:04:05"
)

var historyHeaders = []string{"Started", "Status", "Lines", "Duration", "Input", "Output"}

// RenderHistory writes runs as an aligned table. Path columns are shortened
// so rows fit width; width <= 0 disables shortening.
func RenderHistory(w io.Writer, runs []model.RunRecord, width int) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded yet.")
		return err
	}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.StartedAt.Local().Format(timeFormat),
			string(run.Status),
			fmt.Sprintf("%d", run.Lines),
			fmt.Sprintf("%dms", run.DurationMs),
			run.InputPath,
			run.OutputPath,
		})
	}
	if width > 0 {
		fitPaths(rows, width)
	}
	table := textTable{headers: historyHeaders, rows: rows, rightAlign: map[int]bool{2: true, 3: true}}
	for _, line := range table.lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// fitPaths shortens the last two columns so the full row fits width.
func fitPaths(rows [][]string, width int) {
	fixed := 0
	for col := 0; col < len(historyHeaders)-2; col++ {
		colWidth := displayWidth(historyHeaders[col])
		for _, row := range rows {
			if w := displayWidth(row[col]); w > colWidth {
				colWidth = w
			}
		}
		fixed += colWidth + 1
	}
	avail := (width - fixed - 1) / 2
	if avail < minPathWidth {
		avail = minPathWidth
	}
	for _, row := range rows {
		row[4] = truncateLeft(row[4], avail)
		row[5] = truncateLeft(row[5], avail)
	}
}

// Summary formats per-status run counts on one line.
func Summary(counts map[model.Status]int) string {
	total := 0
	parts := make([]string, 0, len(model.Statuses))
	for _, status := range model.Statuses {
		n := counts[status]
		total += n
		parts = append(parts, fmt.Sprintf("%d %s", n, status))
	}
	noun := "runs"
	if total == 1 {
		noun = "run"
	}
	return fmt.Sprintf("%d %s: %s", total, noun, strings.Join(parts, ", "))
}

// TerminalWidth returns the width of stdout or a fallback when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
