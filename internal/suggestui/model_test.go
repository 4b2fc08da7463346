package suggestui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/wordshuf/internal/trie"
)

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newTestModel(opts Options) *Model {
	tr := trie.New(trie.DefaultCacheCapacity, zerolog.Nop())
	tr.Load([]string{"apple", "app", "apricot", "banana", "car", "caw"})
	m := NewModel("words.txt", tr, opts)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return m
}

func sameWords(t *testing.T, got, want []string) {
	t.Helper()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTypingUpdatesSuggestions(t *testing.T) {
	m := newTestModel(Options{Limit: 5})
	if !strings.Contains(m.View(), "type to search") {
		t.Fatalf("expected hint before typing:\n%s", m.View())
	}
	typeText(m, "ap")
	sameWords(t, m.Results(), []string{"app", "apple", "apricot"})

	typeText(m, "p")
	sameWords(t, m.Results(), []string{"app", "apple"})
	view := m.View()
	for _, want := range []string{"words.txt · 6 words", "prefix", "apple"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTabTogglesFuzzy(t *testing.T) {
	m := newTestModel(Options{Limit: 5, Distance: 1})
	typeText(m, "cax")
	sameWords(t, m.Results(), nil)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	sameWords(t, m.Results(), []string{"car", "caw"})
	if !strings.Contains(m.View(), "fuzzy ≤1") {
		t.Fatalf("expected fuzzy mode in header:\n%s", m.View())
	}
}

func TestTabNeedsFuzzyIndex(t *testing.T) {
	sa := trie.NewSortedArray()
	sa.Load([]string{"apple"})
	m := NewModel("words.txt", sa, Options{Fuzzy: true})
	if m.opts.Fuzzy {
		t.Fatalf("expected fuzzy to be disabled for the sorted index")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.opts.Fuzzy || !strings.Contains(m.View(), "needs the trie index") {
		t.Fatalf("expected fuzzy to stay off:\n%s", m.View())
	}
}

func TestInsertAndRemoveQuery(t *testing.T) {
	m := newTestModel(Options{Limit: 5})
	typeText(m, "apex")
	sameWords(t, m.Results(), nil)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	sameWords(t, m.Results(), []string{"apex"})
	if !strings.Contains(m.View(), `added "apex"`) {
		t.Fatalf("expected add status:\n%s", m.View())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	sameWords(t, m.Results(), nil)
	if !strings.Contains(m.View(), `removed "apex"`) {
		t.Fatalf("expected remove status:\n%s", m.View())
	}
}

func TestInvalidPatternShowsError(t *testing.T) {
	m := newTestModel(Options{Limit: 5})
	typeText(m, "a[b")
	if !strings.Contains(m.View(), "invalid pattern") {
		t.Fatalf("expected pattern error:\n%s", m.View())
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
