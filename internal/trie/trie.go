// Package trie indexes a word list for prefix suggestions, wildcard
// patterns and fuzzy lookups.
package trie

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultCacheCapacity is the number of query results kept by New.
const DefaultCacheCapacity = 10

var (
	// ErrInvalidPattern is returned for a bracket set without a closing ].
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrPatternUnsupported is returned by indexes that only match prefixes.
	ErrPatternUnsupported = errors.New("patterns are not supported by this index")
)

// Index is the query surface shared by Trie and SortedArray.
type Index interface {
	Insert(word string) bool
	Remove(word string) bool
	Contains(word string) bool
	Suggest(query string, limit int) ([]string, error)
	Len() int
}

type node struct {
	children map[rune]*node
	end      bool
}

func newNode() *node {
	return &node{children: map[rune]*node{}}
}

// sortedChildren returns the child runes in ascending order.
func (n *node) sortedChildren() []rune {
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Trie is a rune trie with a small LFU cache in front of its queries.
// It is safe for concurrent use.
type Trie struct {
	mu    sync.Mutex
	root  *node
	size  int
	cache *Cache
}

// New returns an empty trie caching up to cacheCapacity query results.
// A capacity of 0 disables the cache.
func New(cacheCapacity int, log zerolog.Logger) *Trie {
	return &Trie{
		root:  newNode(),
		cache: NewCache(cacheCapacity, log),
	}
}

// Load inserts every non-empty word and returns how many were new.
func (t *Trie) Load(words []string) int {
	added := 0
	for _, word := range words {
		if t.Insert(word) {
			added++
		}
	}
	return added
}

func (t *Trie) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

// CacheLen returns the number of cached query results.
func (t *Trie) CacheLen() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cache.Len()
}

// Insert adds word and reports whether it was not already present.
// Empty words are ignored.
func (t *Trie) Insert(word string) bool {
	if word == "" {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
		}
		cur = next
	}
	if cur.end {
		return false
	}
	cur.end = true
	t.size++
	t.cache.RemoveByWord(word)
	return true
}

// Remove deletes word and prunes nodes left without words below them.
func (t *Trie) Remove(word string) bool {
	if word == "" {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	runes := []rune(word)
	path := make([]*node, 0, len(runes)+1)
	cur := t.root
	path = append(path, cur)
	for _, r := range runes {
		next, ok := cur.children[r]
		if !ok {
			return false
		}
		cur = next
		path = append(path, cur)
	}
	if !cur.end {
		return false
	}
	cur.end = false
	t.size--
	for i := len(runes) - 1; i >= 0; i-- {
		child := path[i+1]
		if child.end || len(child.children) > 0 {
			break
		}
		delete(path[i].children, runes[i])
	}
	t.cache.RemoveByWord(word)
	return true
}

func (t *Trie) Contains(word string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.find(word)
	return n != nil && n.end
}

func (t *Trie) find(prefix string) *node {
	cur := t.root
	for _, r := range prefix {
		next, ok := cur.children[r]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// IsPattern reports whether query uses wildcard syntax: . for any
// character, [abc] for a set and [^abc] for an excluded set.
func IsPattern(query string) bool {
	return strings.ContainsAny(query, ".[")
}

// Suggest returns up to limit words in alphabetical order. A plain query
// is a prefix; a pattern query must match whole words.
func (t *Trie) Suggest(query string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	var pat pattern
	isPattern := IsPattern(query)
	if isPattern {
		var err error
		if pat, err = parsePattern(query); err != nil {
			return nil, err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := "suggest:" + query
	if cached, ok := t.cache.Get(key, limit); ok {
		return cached, nil
	}

	var results []string
	var affects func(string) bool
	if isPattern {
		var buf []rune
		collectPattern(t.root, pat, buf, limit, &results)
		affects = pat.matches
	} else {
		if start := t.find(query); start != nil {
			collect(start, []rune(query), limit, &results)
		}
		affects = func(word string) bool { return strings.HasPrefix(word, query) }
	}
	t.cache.Put(key, results, affects)
	return results, nil
}

// collect gathers words below n in preorder, children ascending.
func collect(n *node, buf []rune, limit int, out *[]string) {
	if len(*out) >= limit {
		return
	}
	if n.end {
		*out = append(*out, string(buf))
	}
	for _, r := range n.sortedChildren() {
		if len(*out) >= limit {
			return
		}
		collect(n.children[r], append(buf, r), limit, out)
	}
}

// Fuzzy returns up to limit words within maxDistance edits of query,
// closest first. Words at the same distance keep alphabetical order.
func (t *Trie) Fuzzy(query string, maxDistance, limit int) []string {
	if limit <= 0 || maxDistance < 0 {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	key := "fuzzy:" + strconv.Itoa(maxDistance) + ":" + query
	if cached, ok := t.cache.Get(key, limit); ok {
		return cached
	}

	results := fuzzySearch(t.root, []rune(query), maxDistance)
	if len(results) > limit {
		results = results[:limit]
	}
	t.cache.Put(key, results, func(word string) bool {
		return levenshtein([]rune(word), []rune(query)) <= maxDistance
	})
	return results
}
