// Package main provides the CLI entrypoint for wordshuf.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordshuf/internal/config"
	"github.com/verte-zerg/wordshuf/internal/historyui"
	"github.com/verte-zerg/wordshuf/internal/logger"
	"github.com/verte-zerg/wordshuf/internal/model"
	"github.com/verte-zerg/wordshuf/internal/preview"
	"github.com/verte-zerg/wordshuf/internal/report"
	"github.com/verte-zerg/wordshuf/internal/shuffle"
	"github.com/verte-zerg/wordshuf/internal/store"
	"github.com/verte-zerg/wordshuf/internal/suggestui"
	"github.com/verte-zerg/wordshuf/internal/trie"
	"github.com/verte-zerg/wordshuf/internal/wordlist"
)

const (
	defaultInput        = "prefixes.txt"
	defaultOutput       = "shuffled_words.txt"
	defaultHistoryLimit = 50
	defaultSuggestLimit = 10
)

var (
	shuffleInput     string
	shuffleOutput    string
	shuffleStrict    bool
	shuffleNoHistory bool

	logLevel string
	logFile  string

	historyStatus string
	historyLimit  int
	historyPlain  bool

	suggestFile     string
	suggestLimit    int
	suggestFuzzy    bool
	suggestDistance int
	suggestIndex    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordshuf [input [output]]",
		Short:         "Shuffle a line-delimited word list",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runShuffleCmd,
	}

	rootCmd.Flags().StringVarP(&shuffleInput, "input", "i", defaultInput, "word list to read")
	rootCmd.Flags().StringVarP(&shuffleOutput, "output", "o", defaultOutput, "file to write the shuffled list to")
	rootCmd.Flags().BoolVar(&shuffleStrict, "strict", false, "exit with status 1 when the shuffle fails")
	rootCmd.Flags().BoolVar(&shuffleNoHistory, "no-history", false, "do not record this run in the history database")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "diagnostic log level (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write diagnostics to a rotating log file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newSuggestCmd())

	return rootCmd
}

func runShuffleCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return reportSetupError(cmd, shuffleStrict, fmt.Errorf("failed to load config: %w", err))
	}
	applyStringConfig(cmd, "input", &shuffleInput, fileCfg.Shuffle.Input)
	applyStringConfig(cmd, "output", &shuffleOutput, fileCfg.Shuffle.Output)
	applyBoolConfig(cmd, "strict", &shuffleStrict, fileCfg.Shuffle.Strict)
	record := !shuffleNoHistory
	if fileCfg.Shuffle.Record != nil && !cmd.Flags().Changed("no-history") {
		record = *fileCfg.Shuffle.Record
	}
	if len(args) > 0 {
		shuffleInput = args[0]
	}
	if len(args) > 1 {
		shuffleOutput = args[1]
	}

	cfg := model.Config{
		InputPath:  shuffleInput,
		OutputPath: shuffleOutput,
		Strict:     shuffleStrict,
		Record:     record,
	}
	if err := validateConfig(cfg); err != nil {
		return reportSetupError(cmd, cfg.Strict, err)
	}

	log, closer := setupLogger(cmd, fileCfg.Log)
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}()

	startedAt := time.Now()
	outcome := shuffle.New().Run(cfg.InputPath, cfg.OutputPath)
	endedAt := time.Now()

	log.Info().
		Err(outcome.Err).
		Str("input", outcome.InputPath).
		Str("output", outcome.OutputPath).
		Int("lines", outcome.Lines).
		Str("status", string(outcome.Status)).
		Dur("elapsed", endedAt.Sub(startedAt)).
		Msg("shuffle finished")

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), outcome.Message()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.Record {
		recordRun(log, model.RunRecord{
			StartedAt:  startedAt,
			EndedAt:    endedAt,
			InputPath:  outcome.InputPath,
			OutputPath: outcome.OutputPath,
			Lines:      outcome.Lines,
			Status:     outcome.Status,
			Message:    outcome.Message(),
			DurationMs: endedAt.Sub(startedAt).Milliseconds(),
		})
	}

	if cfg.Strict && !outcome.OK() {
		return fmt.Errorf("shuffle failed: %s", outcome.Status)
	}
	return nil
}

// reportSetupError prints the generic failure line for errors raised before
// the shuffle starts. Only strict mode turns them into a non-zero exit.
func reportSetupError(cmd *cobra.Command, strict bool, err error) error {
	outcome := shuffle.Outcome{Status: model.StatusIOFailure, Err: err}
	if _, werr := fmt.Fprintln(cmd.OutOrStdout(), outcome.Message()); werr != nil {
		return fmt.Errorf("failed to write output: %w", werr)
	}
	if strict {
		return err
	}
	return nil
}

// recordRun stores rec in the history database. Failures are logged only.
func recordRun(log zerolog.Logger, rec model.RunRecord) {
	dbPath := config.DefaultDBPath()
	st, err := store.Open(dbPath)
	if err != nil {
		log.Warn().Err(err).Str("db", dbPath).Msg("failed to open history db")
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close history db")
		}
	}()
	id, err := st.InsertRun(context.Background(), rec)
	if err != nil {
		log.Warn().Err(err).Msg("failed to record run")
		return
	}
	log.Debug().Str("id", id).Msg("run recorded")
}

func setupLogger(cmd *cobra.Command, fileCfg config.LogConfig) (zerolog.Logger, io.Closer) {
	level := os.Getenv(logger.EnvLevel)
	file := os.Getenv(logger.EnvFile)
	applyStringConfig(cmd, "log-level", &level, fileCfg.Level)
	applyStringConfig(cmd, "log-file", &file, fileCfg.File)
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	if cmd.Flags().Changed("log-file") {
		file = logFile
	}
	return logger.Setup(logger.Options{
		Level:   level,
		File:    file,
		Console: cmd.ErrOrStderr(),
	})
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template when path does not exist.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded shuffle runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyStatus, "status", "", "only show runs with this status (ok, input_not_found, io_failure)")
	cmd.Flags().IntVar(&historyLimit, "limit", defaultHistoryLimit, "maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print a plain table instead of the interactive view")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	status := model.Status(strings.TrimSpace(strings.ToLower(historyStatus)))
	if status != "" && !status.Valid() {
		return fmt.Errorf("--status must be one of: %s", joinStatuses())
	}
	if historyLimit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	cfg := model.HistoryConfig{Status: status, Limit: historyLimit}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf(cmd, "failed to close db: %v\n", cerr)
		}
	}()

	out := cmd.OutOrStdout()
	interactive := report.IsTerminal(out)
	if interactive && !historyPlain {
		program := tea.NewProgram(historyui.NewModel(st, cfg), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run history TUI: %w", err)
		}
		return nil
	}

	ctx := context.Background()
	runs, err := st.ListRuns(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	width := 0
	if interactive {
		width = report.TerminalWidth()
	}
	if err := report.RenderHistory(out, runs, width); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	counts, err := st.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to count runs: %w", err)
	}
	if _, err := fmt.Fprintln(out, report.Summary(counts)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [file]",
		Short: "Page through a word list (default: the configured output)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreviewCmd,
	}
}

func runPreviewCmd(_ *cobra.Command, args []string) error {
	path, err := resolveListPath(args)
	if err != nil {
		return err
	}
	words, err := wordlist.LoadWords(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s does not exist", path)
		}
		return err
	}
	program := tea.NewProgram(preview.NewModel(path, words), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run preview TUI: %w", err)
	}
	return nil
}

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest [query]",
		Short: "Suggest words from a word list by prefix, pattern or edit distance",
		Long: `Suggest words from a word list (default: the configured output).

A plain query is a prefix. A query containing . or [ is a pattern that
must match whole words: . matches any character, [abc] one of a set and
[^abc] anything outside it. With --fuzzy the query is matched by edit
distance instead. Without a query an interactive view is opened.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSuggestCmd,
	}
	cmd.Flags().StringVarP(&suggestFile, "file", "f", "", "word list to index (default: the configured output)")
	cmd.Flags().IntVarP(&suggestLimit, "limit", "n", defaultSuggestLimit, "maximum number of suggestions")
	cmd.Flags().BoolVar(&suggestFuzzy, "fuzzy", false, "match by edit distance instead of prefix")
	cmd.Flags().IntVar(&suggestDistance, "distance", 1, "maximum edit distance for --fuzzy")
	cmd.Flags().StringVar(&suggestIndex, "index", "trie", "index to query (trie, sorted)")
	return cmd
}

func runSuggestCmd(cmd *cobra.Command, args []string) error {
	if suggestLimit <= 0 {
		return fmt.Errorf("--limit must be > 0")
	}
	if suggestDistance < 0 {
		return fmt.Errorf("--distance must be >= 0")
	}
	if suggestIndex != "trie" && suggestIndex != "sorted" {
		return fmt.Errorf("--index must be one of: trie, sorted")
	}
	if suggestFuzzy && suggestIndex != "trie" {
		return fmt.Errorf("--fuzzy needs --index trie")
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	path := suggestFile
	if path == "" {
		if path, err = resolveListPath(nil); err != nil {
			return err
		}
	}
	words, err := wordlist.LoadWords(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s does not exist", path)
		}
		return err
	}

	log, closer := setupLogger(cmd, fileCfg.Log)
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}()

	tr := trie.New(trie.DefaultCacheCapacity, log)
	var index trie.Index = tr
	if suggestIndex == "sorted" {
		index = trie.NewSortedArray()
	}
	startedAt := time.Now()
	loaded := loadIndex(index, words)
	log.Debug().
		Str("file", path).
		Str("index", suggestIndex).
		Int("words", loaded).
		Dur("elapsed", time.Since(startedAt)).
		Msg("index loaded")

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if !report.IsTerminal(out) {
			return fmt.Errorf("a query is required when stdout is not a terminal")
		}
		ui := suggestui.NewModel(path, index, suggestui.Options{
			Limit:    suggestLimit,
			Distance: suggestDistance,
			Fuzzy:    suggestFuzzy,
		})
		program := tea.NewProgram(ui, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run suggest TUI: %w", err)
		}
		return nil
	}

	query := args[0]
	var results []string
	if suggestFuzzy {
		results = tr.Fuzzy(query, suggestDistance, suggestLimit)
	} else if results, err = index.Suggest(query, suggestLimit); err != nil {
		return err
	}
	log.Info().Str("query", query).Bool("fuzzy", suggestFuzzy).Int("results", len(results)).Msg("suggest finished")

	if len(results) == 0 {
		if _, err := fmt.Fprintf(out, "No suggestions for %q.\n", query); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	for _, word := range results {
		if _, err := fmt.Fprintln(out, word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// loadIndex inserts words into index, skipping blanks, and returns the
// number of distinct words indexed.
func loadIndex(index trie.Index, words []string) int {
	for _, word := range words {
		index.Insert(word)
	}
	return index.Len()
}

func resolveListPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if fileCfg.Shuffle.Output != nil && *fileCfg.Shuffle.Output != "" {
		return *fileCfg.Shuffle.Output, nil
	}
	return defaultOutput, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordshuf configuration
# Uncomment a value to enable it. CLI flags override config values.

[shuffle]
# input = %q     # Word list to read
# output = %q    # File to write the shuffled list to
# strict = false                 # Exit with status 1 when the shuffle fails
# record = true                  # Record runs in the history database

[log]
# level = "warn"                 # trace, debug, info, warn, error, off
# file = ""                      # Rotating log file instead of stderr
`,
		defaultInput,
		defaultOutput,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return fmt.Errorf("--input must not be empty")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return fmt.Errorf("--output must not be empty")
	}
	return nil
}

func joinStatuses() string {
	names := make([]string, 0, len(model.Statuses))
	for _, status := range model.Statuses {
		names = append(names, string(status))
	}
	return strings.Join(names, ", ")
}

func logErrf(cmd *cobra.Command, format string, args ...any) {
	if _, err := fmt.Fprintf(cmd.ErrOrStderr(), format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
