package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/wordshuf/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func insertRuns(t *testing.T, st *Store, statuses ...model.Status) []string {
	t.Helper()
	ctx := context.Background()
	ids := make([]string, 0, len(statuses))
	for i, status := range statuses {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(15 * time.Millisecond)
		id, err := st.InsertRun(ctx, model.RunRecord{
			StartedAt:  start,
			EndedAt:    end,
			InputPath:  "prefixes.txt",
			OutputPath: "shuffled_words.txt",
			Lines:      i,
			Status:     status,
			Message:    string(status),
			DurationMs: end.Sub(start).Milliseconds(),
		})
		if err != nil {
			t.Fatalf("insert run: %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestInsertAndListRuns(t *testing.T) {
	st := openTestStore(t)
	ids := insertRuns(t, st, model.StatusOK, model.StatusInputNotFound, model.StatusOK)

	runs, err := st.ListRuns(context.Background(), model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].ID != ids[2] || runs[2].ID != ids[0] {
		t.Fatalf("expected newest first, got %s, %s, %s", runs[0].ID, runs[1].ID, runs[2].ID)
	}
	if runs[1].Status != model.StatusInputNotFound || runs[1].Lines != 1 {
		t.Fatalf("unexpected run: %+v", runs[1])
	}
	if runs[0].DurationMs != 15 {
		t.Fatalf("unexpected duration %d", runs[0].DurationMs)
	}
	if !runs[2].StartedAt.Equal(time.Unix(0, 0)) {
		t.Fatalf("unexpected start time %v", runs[2].StartedAt)
	}
}

func TestListRunsFilterAndLimit(t *testing.T) {
	st := openTestStore(t)
	insertRuns(t, st, model.StatusOK, model.StatusIOFailure, model.StatusOK, model.StatusOK)
	ctx := context.Background()

	okRuns, err := st.ListRuns(ctx, model.HistoryConfig{Status: model.StatusOK, Limit: 2})
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(okRuns) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(okRuns))
	}
	for _, run := range okRuns {
		if run.Status != model.StatusOK {
			t.Fatalf("unexpected status %q", run.Status)
		}
	}

	failures, err := st.ListRuns(ctx, model.HistoryConfig{Status: model.StatusIOFailure})
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
}

func TestCountByStatus(t *testing.T) {
	st := openTestStore(t)
	insertRuns(t, st, model.StatusOK, model.StatusIOFailure, model.StatusOK)

	counts, err := st.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[model.StatusOK] != 2 || counts[model.StatusIOFailure] != 1 || counts[model.StatusInputNotFound] != 0 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestInsertRunKeepsExplicitID(t *testing.T) {
	st := openTestStore(t)
	id, err := st.InsertRun(context.Background(), model.RunRecord{ID: "fixed", Status: model.StatusOK})
	if err != nil {
		t.Fatalf("insert run: %v", err)
	}
	if id != "fixed" {
		t.Fatalf("expected explicit id, got %q", id)
	}
}

func TestInsertRunRejectsUnknownStatus(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.InsertRun(context.Background(), model.RunRecord{Status: "weird"}); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
