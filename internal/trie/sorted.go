package trie

import (
	"fmt"
	"sort"
	"strings"
)

// SortedArray answers prefix queries by binary search over a sorted
// slice. It is the baseline the trie is measured against.
type SortedArray struct {
	words []string
}

func NewSortedArray() *SortedArray {
	return &SortedArray{}
}

// Load inserts every non-empty word and returns how many were new.
func (s *SortedArray) Load(words []string) int {
	added := 0
	for _, word := range words {
		if s.Insert(word) {
			added++
		}
	}
	return added
}

func (s *SortedArray) Len() int {
	return len(s.words)
}

func (s *SortedArray) Insert(word string) bool {
	if word == "" {
		return false
	}
	i := sort.SearchStrings(s.words, word)
	if i < len(s.words) && s.words[i] == word {
		return false
	}
	s.words = append(s.words, "")
	copy(s.words[i+1:], s.words[i:])
	s.words[i] = word
	return true
}

func (s *SortedArray) Remove(word string) bool {
	i := sort.SearchStrings(s.words, word)
	if i >= len(s.words) || s.words[i] != word {
		return false
	}
	s.words = append(s.words[:i], s.words[i+1:]...)
	return true
}

func (s *SortedArray) Contains(word string) bool {
	i := sort.SearchStrings(s.words, word)
	return i < len(s.words) && s.words[i] == word
}

// Suggest returns up to limit words starting with prefix.
func (s *SortedArray) Suggest(prefix string, limit int) ([]string, error) {
	if IsPattern(prefix) {
		return nil, fmt.Errorf("%w: %q", ErrPatternUnsupported, prefix)
	}
	if limit <= 0 {
		return nil, nil
	}
	var results []string
	for i := sort.SearchStrings(s.words, prefix); i < len(s.words) && len(results) < limit; i++ {
		if !strings.HasPrefix(s.words[i], prefix) {
			break
		}
		results = append(results, s.words[i])
	}
	return results, nil
}
