package match

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects how a query is matched against candidates.
type Mode int

const (
	// Fuzzy matches the query as a case insensitive ordered subsequence.
	Fuzzy Mode = iota
	// Prefix keeps candidates that start with the query, case insensitive.
	Prefix
)

// Result is one matching candidate together with its ranking keys.
type Result struct {
	Str   string
	Index int // position in the candidate slice passed to Match

	Span         int  // runes from first to last matched rune, inclusive
	BoundaryHits int  // matched runes that start a path segment
	AtStart      bool // match begins at the first rune

	// MatchedIndexes holds the byte offsets of the matched runes in Str,
	// ascending. Renderers use them to emphasize the match.
	MatchedIndexes []int

	runeLen int
}

// Match filters candidates against query and returns the survivors best
// first. The empty query matches everything equally and keeps the original
// candidate order.
func Match(query string, candidates []string, mode Mode) []Result {
	if query == "" {
		results := make([]Result, len(candidates))
		for i, c := range candidates {
			results[i] = Result{Str: c, Index: i}
		}
		return results
	}
	if mode == Prefix {
		return matchPrefix(query, candidates)
	}
	return matchFuzzy(query, candidates)
}

func matchPrefix(query string, candidates []string) []Result {
	q := strings.ToLower(query)
	qLen := utf8.RuneCountInString(q)

	var results []Result
	for i, cand := range candidates {
		if !strings.HasPrefix(strings.ToLower(cand), q) {
			continue
		}
		r := Result{
			Str:          cand,
			Index:        i,
			Span:         qLen,
			BoundaryHits: 1,
			AtStart:      true,
		}
		n := 0
		for off := range cand {
			if n == qLen {
				break
			}
			r.MatchedIndexes = append(r.MatchedIndexes, off)
			n++
		}
		results = append(results, r)
	}
	return results
}

func matchFuzzy(query string, candidates []string) []Result {
	q := []rune(strings.ToLower(query))

	var results []Result
	for i, cand := range candidates {
		c := explode(cand)
		positions, ok := bestPlacement(q, c)
		if !ok {
			continue
		}

		r := Result{
			Str:     cand,
			Index:   i,
			Span:    positions[len(positions)-1] - positions[0] + 1,
			AtStart: positions[0] == 0,
			runeLen: len(c.lower),
		}
		for _, p := range positions {
			if c.bound[p] {
				r.BoundaryHits++
			}
			r.MatchedIndexes = append(r.MatchedIndexes, c.offs[p])
		}
		results = append(results, r)
	}

	slices.SortStableFunc(results, compare)
	return results
}

// compare orders fuzzy results best first. Full ties keep original candidate
// order because the sort is stable and results are built in that order.
func compare(a, b Result) int {
	if a.Span != b.Span {
		return a.Span - b.Span
	}
	if a.BoundaryHits != b.BoundaryHits {
		return b.BoundaryHits - a.BoundaryHits
	}
	if a.AtStart != b.AtStart {
		if a.AtStart {
			return -1
		}
		return 1
	}
	return a.runeLen - b.runeLen
}

// runeInfo is a candidate decoded once: lowercased runes, their byte offsets
// and whether each rune starts a path segment.
type runeInfo struct {
	lower []rune
	offs  []int
	bound []bool
}

func explode(s string) runeInfo {
	n := utf8.RuneCountInString(s)
	c := runeInfo{
		lower: make([]rune, 0, n),
		offs:  make([]int, 0, n),
		bound: make([]bool, 0, n),
	}
	prev := rune(0)
	first := true
	for off, r := range s {
		c.lower = append(c.lower, unicode.ToLower(r))
		c.offs = append(c.offs, off)
		c.bound = append(c.bound, first || isSeparator(prev))
		prev = r
		first = false
	}
	return c
}

func isSeparator(r rune) bool {
	switch r {
	case '/', '-', '_', '.':
		return true
	}
	return false
}

const unset = -1

// cell is one chain state in bestPlacement: query rune k placed at candidate
// rune j, tracking the latest reachable window start, the segment starts
// collected along the chain and the previous rune's position for backtracking.
type cell struct {
	first  int
	hits   int
	parent int
}

func dominates(a, b cell) bool {
	return a.first > b.first || (a.first == b.first && a.hits > b.hits)
}

// bestPlacement finds where the query runes should sit in the candidate. Out
// of every valid subsequence placement it picks the one with the tightest
// window, then the most segment starts, then one starting at rune 0. Returns
// the matched rune indexes in ascending order, or ok=false when the query is
// not a subsequence of the candidate.
//
// One cell per (query rune, candidate rune) pair is enough: a later window
// start always wins on span, so each cell only keeps the latest reachable
// start and the most segment starts given that start.
func bestPlacement(query []rune, c runeInfo) (positions []int, ok bool) {
	m, n := len(query), len(c.lower)
	if m == 0 || m > n {
		return nil, false
	}

	state := make([]cell, m*n)
	for i := range state {
		state[i].first = unset
	}

	for j := 0; j < n; j++ {
		if c.lower[j] == query[0] {
			state[j] = cell{first: j, hits: segStart(c.bound[j]), parent: unset}
		}
	}

	for k := 1; k < m; k++ {
		row, prevRow := k*n, (k-1)*n
		best := unset
		for j := 0; j < n; j++ {
			if c.lower[j] == query[k] && best != unset {
				from := state[prevRow+best]
				state[row+j] = cell{
					first:  from.first,
					hits:   from.hits + segStart(c.bound[j]),
					parent: best,
				}
			}
			// Position j now becomes available to later placements.
			if cand := state[prevRow+j]; cand.first != unset {
				if best == unset || dominates(cand, state[prevRow+best]) {
					best = j
				}
			}
		}
	}

	// Pick the best chain end.
	end := unset
	var endSpan, endHits int
	var endAtStart bool
	for j := 0; j < n; j++ {
		s := state[(m-1)*n+j]
		if s.first == unset {
			continue
		}
		span := j - s.first + 1
		atStart := s.first == 0
		if end == unset ||
			span < endSpan ||
			(span == endSpan && s.hits > endHits) ||
			(span == endSpan && s.hits == endHits && atStart && !endAtStart) {
			end, endSpan, endHits, endAtStart = j, span, s.hits, atStart
		}
	}
	if end == unset {
		return nil, false
	}

	positions = make([]int, m)
	for k, j := m-1, end; k >= 0; k-- {
		positions[k] = j
		j = state[k*n+j].parent
	}
	return positions, true
}

func segStart(b bool) int {
	if b {
		return 1
	}
	return 0
}
