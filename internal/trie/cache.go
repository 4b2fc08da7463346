package trie

import "github.com/rs/zerolog"

// Cache is a least-frequently-used store of query results. Ties on
// frequency evict the entry touched longest ago.
type Cache struct {
	capacity int
	entries  map[string]*cacheEntry
	clock    uint64
	log      zerolog.Logger
}

type cacheEntry struct {
	suggestions []string
	// affects reports whether inserting word could change suggestions.
	affects   func(word string) bool
	frequency int
	touched   uint64
}

// NewCache returns a cache holding at most capacity entries. A capacity
// <= 0 disables caching.
func NewCache(capacity int, log zerolog.Logger) *Cache {
	return &Cache{
		capacity: capacity,
		entries:  map[string]*cacheEntry{},
		log:      log,
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Frequency returns how often key was stored or served, 0 when absent.
func (c *Cache) Frequency(key string) int {
	if entry, ok := c.entries[key]; ok {
		return entry.frequency
	}
	return 0
}

// Get returns up to limit cached suggestions for key. It misses when the
// entry holds fewer than limit suggestions. A hit counts as a use.
func (c *Cache) Get(key string, limit int) ([]string, bool) {
	entry, ok := c.entries[key]
	if !ok || limit <= 0 || len(entry.suggestions) < limit {
		return nil, false
	}
	c.clock++
	entry.frequency++
	entry.touched = c.clock
	c.log.Debug().Str("key", key).Int("frequency", entry.frequency).Msg("cache hit")
	return append([]string(nil), entry.suggestions[:limit]...), true
}

// Put stores suggestions for key. Empty results are not cached. Storing
// an existing key replaces its suggestions and counts as a use.
func (c *Cache) Put(key string, suggestions []string, affects func(word string) bool) {
	if c.capacity <= 0 || len(suggestions) == 0 {
		return
	}
	c.clock++
	if entry, ok := c.entries[key]; ok {
		entry.suggestions = append([]string(nil), suggestions...)
		entry.affects = affects
		entry.frequency++
		entry.touched = c.clock
		return
	}
	if len(c.entries) >= c.capacity {
		c.evict()
	}
	c.entries[key] = &cacheEntry{
		suggestions: append([]string(nil), suggestions...),
		affects:     affects,
		frequency:   1,
		touched:     c.clock,
	}
	c.log.Debug().Str("key", key).Int("suggestions", len(suggestions)).Msg("cache insert")
}

// RemoveByWord drops every entry that lists word or that word could join.
// It returns the number of entries removed.
func (c *Cache) RemoveByWord(word string) int {
	removed := 0
	for key, entry := range c.entries {
		if containsWord(entry.suggestions, word) || (entry.affects != nil && entry.affects(word)) {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		c.log.Debug().Str("word", word).Int("entries", removed).Msg("cache invalidated")
	}
	return removed
}

func (c *Cache) evict() {
	var victim string
	var found *cacheEntry
	for key, entry := range c.entries {
		if found == nil ||
			entry.frequency < found.frequency ||
			(entry.frequency == found.frequency && entry.touched < found.touched) {
			victim, found = key, entry
		}
	}
	if found == nil {
		return
	}
	delete(c.entries, victim)
	c.log.Debug().Str("key", victim).Int("frequency", found.frequency).Msg("cache evict")
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
