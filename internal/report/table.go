package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// textTable lays out rows in space-separated columns sized to their widest cell.
type textTable struct {
	headers    []string
	rows       [][]string
	rightAlign map[int]bool
}

func (t textTable) columnWidths() []int {
	var widths []int
	measure := func(cells []string) {
		for i, cell := range cells {
			for len(widths) <= i {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}
	measure(t.headers)
	for _, row := range t.rows {
		measure(row)
	}
	return widths
}

func (t textTable) lines() []string {
	widths := t.columnWidths()
	if len(widths) == 0 {
		return nil
	}
	out := make([]string, 0, len(t.rows)+1)
	if len(t.headers) > 0 {
		out = append(out, t.line(t.headers, widths))
	}
	for _, row := range t.rows {
		out = append(out, t.line(row, widths))
	}
	return out
}

func (t textTable) line(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		gap := strings.Repeat(" ", max(0, width-displayWidth(cell)))
		if t.rightAlign[i] {
			parts[i] = gap + cell
		} else {
			parts[i] = cell + gap
		}
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}

// truncateLeft keeps the tail of value so it fits width, marking the cut.
func truncateLeft(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(value) <= width {
		return value
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(value)
	w := 1
	start := len(runes)
	for start > 0 {
		rw := runewidth.RuneWidth(runes[start-1])
		if w+rw > width {
			break
		}
		w += rw
		start--
	}
	return "…" + string(runes[start:])
}
