package trie

import "sort"

type fuzzyMatch struct {
	word     string
	distance int
}

// fuzzySearch walks the trie carrying one Levenshtein row per node and
// prunes branches whose best cell already exceeds maxDistance.
func fuzzySearch(root *node, query []rune, maxDistance int) []string {
	first := make([]int, len(query)+1)
	for i := range first {
		first[i] = i
	}
	var matches []fuzzyMatch
	var buf []rune
	for _, r := range root.sortedChildren() {
		fuzzyWalk(root.children[r], r, query, first, append(buf, r), maxDistance, &matches)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})
	words := make([]string, len(matches))
	for i, m := range matches {
		words[i] = m.word
	}
	return words
}

func fuzzyWalk(n *node, r rune, query []rune, prev []int, buf []rune, maxDistance int, out *[]fuzzyMatch) {
	row := make([]int, len(prev))
	row[0] = prev[0] + 1
	best := row[0]
	for i := 1; i < len(row); i++ {
		cost := 1
		if query[i-1] == r {
			cost = 0
		}
		row[i] = min(row[i-1]+1, prev[i]+1, prev[i-1]+cost)
		best = min(best, row[i])
	}
	if last := row[len(row)-1]; n.end && last <= maxDistance {
		*out = append(*out, fuzzyMatch{word: string(buf), distance: last})
	}
	if best > maxDistance {
		return
	}
	for _, c := range n.sortedChildren() {
		fuzzyWalk(n.children[c], c, query, row, append(buf, c), maxDistance, out)
	}
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	for i := range prev {
		prev[i] = i
	}
	row := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min(row[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, row = row, prev
	}
	return prev[len(b)]
}
