package trie

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func benchWords(n int) []string {
	rnd := rand.New(rand.NewSource(1))
	const letters = "abcdefghijklmnopqrstuvwxyz"
	words := make([]string, n)
	for i := range words {
		var b strings.Builder
		length := 3 + rnd.Intn(8)
		for j := 0; j < length; j++ {
			b.WriteByte(letters[rnd.Intn(len(letters))])
		}
		words[i] = b.String()
	}
	return words
}

func BenchmarkTrieSuggest(b *testing.B) {
	tr := New(0, zerolog.Nop())
	tr.Load(benchWords(50000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Suggest("ab", 10)
	}
}

func BenchmarkTrieSuggestCached(b *testing.B) {
	tr := New(DefaultCacheCapacity, zerolog.Nop())
	tr.Load(benchWords(50000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Suggest("ab", 10)
	}
}

func BenchmarkSortedArraySuggest(b *testing.B) {
	sa := NewSortedArray()
	sa.Load(benchWords(50000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sa.Suggest("ab", 10)
	}
}

func BenchmarkTrieInsert(b *testing.B) {
	words := benchWords(10000)
	for i := 0; i < b.N; i++ {
		New(DefaultCacheCapacity, zerolog.Nop()).Load(words)
	}
}

func BenchmarkSortedArrayInsert(b *testing.B) {
	words := benchWords(10000)
	for i := 0; i < b.N; i++ {
		NewSortedArray().Load(words)
	}
}

func BenchmarkTrieFuzzy(b *testing.B) {
	tr := New(0, zerolog.Nop())
	tr.Load(benchWords(20000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Fuzzy("hello", 1, 10)
	}
}
