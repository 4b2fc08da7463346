package historyui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordshuf/internal/model"
)

type fakeSource struct {
	runs    []model.RunRecord
	err     error
	lastCfg model.HistoryConfig
}

func (f *fakeSource) ListRuns(_ context.Context, cfg model.HistoryConfig) ([]model.RunRecord, error) {
	f.lastCfg = cfg
	if f.err != nil {
		return nil, f.err
	}
	var out []model.RunRecord
	for _, run := range f.runs {
		if cfg.Status != "" && run.Status != cfg.Status {
			continue
		}
		out = append(out, run)
	}
	return out, nil
}

func (f *fakeSource) CountByStatus(context.Context) (map[model.Status]int, error) {
	counts := map[model.Status]int{}
	for _, run := range f.runs {
		counts[run.Status]++
	}
	return counts, nil
}

func sampleRuns() []model.RunRecord {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	return []model.RunRecord{
		{StartedAt: start, Status: model.StatusOK, Lines: 3, InputPath: "prefixes.txt", OutputPath: "shuffled_words.txt"},
		{StartedAt: start, Status: model.StatusInputNotFound, InputPath: "missing.txt", OutputPath: "out.txt"},
	}
}

func TestViewListsRuns(t *testing.T) {
	src := &fakeSource{runs: sampleRuns()}
	m := NewModel(src, model.HistoryConfig{Limit: 10})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})

	view := m.View()
	for _, want := range []string{"Shuffle history", "filter: all", "2 runs", "prefixes.txt", "missing.txt", "input_not_found"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if src.lastCfg.Limit != 10 {
		t.Fatalf("expected limit to be passed through, got %d", src.lastCfg.Limit)
	}
}

func TestFilterKeyCyclesStatus(t *testing.T) {
	src := &fakeSource{runs: sampleRuns()}
	m := NewModel(src, model.HistoryConfig{})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	if src.lastCfg.Status != model.StatusOK {
		t.Fatalf("expected ok filter, got %q", src.lastCfg.Status)
	}
	if len(m.runs) != 1 {
		t.Fatalf("expected 1 run after filtering, got %d", len(m.runs))
	}
	if !strings.Contains(m.View(), "filter: ok") {
		t.Fatalf("expected filter label in view")
	}

	for i := 0; i < len(model.Statuses); i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	}
	if src.lastCfg.Status != "" {
		t.Fatalf("expected filter to wrap back to all, got %q", src.lastCfg.Status)
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(&fakeSource{}, model.HistoryConfig{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestLoadErrorShown(t *testing.T) {
	m := NewModel(&fakeSource{err: errors.New("db locked")}, model.HistoryConfig{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if !strings.Contains(m.View(), "db locked") {
		t.Fatalf("expected error in view:\n%s", m.View())
	}
}

func TestEmptyHistory(t *testing.T) {
	m := NewModel(&fakeSource{}, model.HistoryConfig{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Fatalf("expected empty notice:\n%s", m.View())
	}
}
