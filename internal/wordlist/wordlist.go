// Package wordlist loads and writes line-delimited word lists.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is wrapped by LoadWords when the file is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// LoadWords reads the whole file and returns one entry per line.
// Blank lines and duplicates are kept as entries.
func LoadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if off := invalidUTF8Offset(data); off >= 0 {
		return nil, fmt.Errorf("failed to decode word list %s: %w at byte %d", path, ErrInvalidUTF8, off)
	}
	return SplitLines(string(data)), nil
}

// invalidUTF8Offset returns the offset of the first invalid byte, or -1.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for off := 0; off < len(data); {
		r, size := utf8.DecodeRune(data[off:])
		if r == utf8.RuneError && size == 1 {
			return off
		}
		off += size
	}
	return -1
}

// SplitLines splits data on "\n", "\r\n" and "\r". Terminators are removed;
// a final terminator does not start another entry.
func SplitLines(data string) []string {
	words := make([]string, 0, strings.Count(data, "\n")+1)
	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			words = append(words, data[start:i])
			start = i + 1
		case '\r':
			words = append(words, data[start:i])
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(data) {
		words = append(words, data[start:])
	}
	return words
}

// JoinLines joins words with "\n" and no trailing newline.
func JoinLines(words []string) string {
	return strings.Join(words, "\n")
}

// WriteWords truncates path (creating it with mode 0644 if needed) and
// writes the newline-joined words in place. Symlinks are followed and the
// mode of an existing file is kept.
func WriteWords(path string, words []string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open word list: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close on early return.
			_ = cerr
		}
	}()

	writer := bufio.NewWriter(file)
	for i, word := range words {
		if i > 0 {
			if err := writer.WriteByte('\n'); err != nil {
				return fmt.Errorf("failed to write word list: %w", err)
			}
		}
		if _, err := writer.WriteString(word); err != nil {
			return fmt.Errorf("failed to write word list: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close word list: %w", err)
	}
	return nil
}
