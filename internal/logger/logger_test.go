package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"err":     zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.WarnLevel,
		"chatty":  zerolog.WarnLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetupConsoleFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closer := Setup(Options{Level: "info", Console: &buf})
	defer func() {
		_ = closer.Close()
	}()

	log.Debug().Msg("hidden")
	log.Info().Str("path", "words.txt").Msg("shuffled")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message should be filtered: %s", out)
	}
	if !strings.Contains(out, "shuffled") || !strings.Contains(out, "words.txt") {
		t.Fatalf("expected info message with field: %s", out)
	}
}

func TestSetupFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordshuf.log")
	log, closer := Setup(Options{Level: "debug", File: path})
	log.Debug().Int("lines", 3).Msg("run finished")
	if err := closer.Close(); err != nil {
		t.Fatalf("close log file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"lines":3`) {
		t.Fatalf("expected JSON field in log file: %s", data)
	}
}
