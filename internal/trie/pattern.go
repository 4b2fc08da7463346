package trie

import "fmt"

// class matches one character position of a pattern.
type class struct {
	any     bool
	literal rune
	set     []rune
	negate  bool
}

func (c class) match(r rune) bool {
	switch {
	case c.any:
		return true
	case c.set != nil || c.negate:
		return containsRune(c.set, r) != c.negate
	default:
		return r == c.literal
	}
}

type pattern []class

func parsePattern(query string) (pattern, error) {
	runes := []rune(query)
	var pat pattern
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.':
			pat = append(pat, class{any: true})
		case '[':
			j := i + 1
			negate := false
			if j < len(runes) && runes[j] == '^' {
				negate = true
				j++
			}
			start := j
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				return nil, fmt.Errorf("%w %q: missing ] for [ at %d", ErrInvalidPattern, query, i)
			}
			set := append([]rune{}, runes[start:j]...)
			pat = append(pat, class{set: set, negate: negate})
			i = j
		default:
			pat = append(pat, class{literal: runes[i]})
		}
	}
	return pat, nil
}

func (p pattern) matches(word string) bool {
	runes := []rune(word)
	if len(runes) != len(p) {
		return false
	}
	for i, r := range runes {
		if !p[i].match(r) {
			return false
		}
	}
	return true
}

// candidates lists the children of n that c accepts. Inclusion sets keep
// the order written in the pattern; everything else is ascending.
func (c class) candidates(n *node) []rune {
	if c.set != nil && !c.negate {
		var out []rune
		for _, r := range c.set {
			if _, ok := n.children[r]; ok && !containsRune(out, r) {
				out = append(out, r)
			}
		}
		return out
	}
	if !c.any && !c.negate {
		if _, ok := n.children[c.literal]; ok {
			return []rune{c.literal}
		}
		return nil
	}
	var out []rune
	for _, r := range n.sortedChildren() {
		if c.match(r) {
			out = append(out, r)
		}
	}
	return out
}

func collectPattern(n *node, pat pattern, buf []rune, limit int, out *[]string) {
	if len(*out) >= limit {
		return
	}
	depth := len(buf)
	if depth == len(pat) {
		if n.end {
			*out = append(*out, string(buf))
		}
		return
	}
	for _, r := range pat[depth].candidates(n) {
		if len(*out) >= limit {
			return
		}
		collectPattern(n.children[r], pat, append(buf, r), limit, out)
	}
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}
