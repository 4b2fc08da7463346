// Package shuffle permutes word lists and shuffles word list files.
package shuffle

import (
	"math/rand"
	"time"
)

// Shuffler applies uniformly random permutations.
type Shuffler struct {
	rnd *rand.Rand
}

// New returns a Shuffler seeded with the current time.
func New() *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Shuffle permutes words in place with the Fisher-Yates algorithm.
func (s *Shuffler) Shuffle(words []string) {
	for i := len(words) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}
