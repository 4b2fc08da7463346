package report

import "testing"

func TestTextTableAlignsColumns(t *testing.T) {
	headers := []string{"Status", "Lines", "Input"}
	rows := [][]string{
		{"ok", "12", "words.txt"},
		{"input_not_found", "0", "日本.txt"},
	}
	rightAlign := map[int]bool{1: true}

	lines := textTable{headers: headers, rows: rows, rightAlign: rightAlign}.lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Status          Lines Input" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "ok                 12 words.txt" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "input_not_found     0 日本.txt" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestTruncateLeft(t *testing.T) {
	if got := truncateLeft("short", 10); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncateLeft("/very/long/path/words.txt", 10); got != "…words.txt" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncateLeft("/a/日本語", 5); got != "…本語" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncateLeft("abc", 0); got != "" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestTextTableRaggedRows(t *testing.T) {
	lines := textTable{headers: []string{"A"}, rows: [][]string{{"x", "yy"}, {}}}.lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "A" || lines[1] != "x yy" || lines[2] != "" {
		t.Fatalf("unexpected lines %q", lines)
	}
	if got := (textTable{}).lines(); got != nil {
		t.Fatalf("expected nil for empty table, got %q", got)
	}
}
