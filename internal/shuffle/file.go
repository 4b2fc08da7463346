package shuffle

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/verte-zerg/wordshuf/internal/model"
	"github.com/verte-zerg/wordshuf/internal/wordlist"
)

// InputNotFoundError reports a missing input word list.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

func (e *InputNotFoundError) Unwrap() error {
	return e.Err
}

// IOError reports any other failure while reading or writing a word list.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ShuffleFile reads inputPath, shuffles its lines and writes them to
// outputPath. It returns the number of lines written. The output is only
// opened after the input was read and decoded.
func (s *Shuffler) ShuffleFile(inputPath, outputPath string) (int, error) {
	words, err := wordlist.LoadWords(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, &InputNotFoundError{Path: inputPath, Err: err}
		}
		return 0, &IOError{Op: "read input", Err: err}
	}
	s.Shuffle(words)
	if err := wordlist.WriteWords(outputPath, words); err != nil {
		return 0, &IOError{Op: "write output", Err: err}
	}
	return len(words), nil
}

// Outcome describes a finished shuffle attempt.
type Outcome struct {
	InputPath  string
	OutputPath string
	Lines      int
	Status     model.Status
	Err        error
}

// Run performs ShuffleFile and classifies the result. It never fails.
func (s *Shuffler) Run(inputPath, outputPath string) Outcome {
	lines, err := s.ShuffleFile(inputPath, outputPath)
	return Outcome{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Lines:      lines,
		Status:     StatusOf(err),
		Err:        err,
	}
}

// OK reports whether the attempt succeeded.
func (o Outcome) OK() bool {
	return o.Status == model.StatusOK
}

// Message returns the console line for the outcome.
func (o Outcome) Message() string {
	switch o.Status {
	case model.StatusOK:
		return fmt.Sprintf("Words shuffled and written to %s", o.OutputPath)
	case model.StatusInputNotFound:
		return fmt.Sprintf("Error: %s does not exist.", o.InputPath)
	default:
		return fmt.Sprintf("An error occurred: %v", o.Err)
	}
}

// StatusOf maps an error returned by ShuffleFile to a status.
func StatusOf(err error) model.Status {
	if err == nil {
		return model.StatusOK
	}
	var notFound *InputNotFoundError
	if errors.As(err, &notFound) {
		return model.StatusInputNotFound
	}
	return model.StatusIOFailure
}
