// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import (
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
)

// SuffixArray holds a text, its Manber-Myers suffix array, and the inverse
// permutation (RANK) computed by the doubling refiner.
type SuffixArray[S constraints.Ordered] struct {
	text []S
	sa   []int32
	rank []int32
	cfg  Config
}

// New builds a suffix array for text using the default Config.
func New[S constraints.Ordered](text []S) *SuffixArray[S] {
	return NewWithConfig(text, NewConfig())
}

// NewWithConfig builds a suffix array for text, honoring cfg's
// ContextWidth for the keyword-in-context scanner.
func NewWithConfig[S constraints.Ordered](text []S, cfg Config) *SuffixArray[S] {
	sa, rank, _ := build(text)
	return &SuffixArray[S]{text: text, sa: sa, rank: rank, cfg: cfg}
}

// build runs the three-stage construction: alphabet profiling, first-stage
// bucket sort, and doubling refinement.
func build[S constraints.Ordered](text []S) (sa, rank []int32, bh []bool) {
	sa, rank, bh = firstStageSort(text)
	return doublingRefine(sa, rank, bh)
}

// Len returns the length of the indexed text.
func (sa *SuffixArray[S]) Len() int {
	return len(sa.text)
}

// SuffixAtRank returns SA[r], the starting position in the text of the
// suffix holding rank r.
func (sa *SuffixArray[S]) SuffixAtRank(r int) (int, error) {
	if r < 0 || r >= len(sa.sa) {
		return 0, ErrOutOfRange
	}
	return int(sa.sa[r]), nil
}

// RankOfSuffix returns RANK[i], the rank of the suffix starting at text
// position i.
func (sa *SuffixArray[S]) RankOfSuffix(i int) (int, error) {
	if i < 0 || i >= len(sa.rank) {
		return 0, ErrOutOfRange
	}
	return int(sa.rank[i]), nil
}

// comparePrefix compares a suffix with a prefix lexicographically, treating
// a suffix shorter than prefix as though it were right-padded with a
// symbol smaller than every real symbol.
func comparePrefix[S constraints.Ordered](suf, prefix []S) int {
	minLen := len(suf)
	if minLen > len(prefix) {
		minLen = len(prefix)
	}
	for i := 0; i < minLen; i++ {
		if suf[i] < prefix[i] {
			return -1
		}
		if suf[i] > prefix[i] {
			return 1
		}
	}
	if len(suf) < len(prefix) {
		return -1
	}
	return 0
}

// LowerBound returns the smallest rank r such that the suffix at SA[r] is
// lexicographically greater than or equal to prefix, or N if no such rank
// exists. Every other ranked lookup in this file is built on top of it.
func (sa *SuffixArray[S]) LowerBound(prefix []S) int {
	return lowerBound(sa.text, sa.sa, prefix)
}

func lowerBound[S constraints.Ordered](text []S, sarr []int32, prefix []S) int {
	return sort.Search(len(sarr), func(i int) bool {
		return comparePrefix(text[sarr[i]:], prefix) >= 0
	})
}

// lookup finds suffixes starting with the given prefix.
func lookup[S constraints.Ordered](text []S, sarr []int32, prefix []S) []int32 {
	if len(prefix) == 0 {
		return sarr
	}
	if len(sarr) == 0 {
		return []int32{}
	}
	l := lowerBound(text, sarr, prefix)
	r := l + sort.Search(len(sarr)-l, func(i int) bool {
		return comparePrefix(text[sarr[l+i]:], prefix) > 0
	})
	return sarr[l:r]
}

// lookupTextOrder finds suffixes starting with the prefix, sorted by text
// position.
func lookupTextOrder[S constraints.Ordered](text []S, sarr []int32, prefix []S) []int32 {
	indices := lookup(text, sarr, prefix)
	cp := make([]int32, len(indices))
	copy(cp, indices)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	return cp
}

// Lookup finds suffixes starting with the given prefix.
func (sa *SuffixArray[S]) Lookup(prefix []S) []int32 {
	return lookup(sa.text, sa.sa, prefix)
}

// LookupTextOrder finds suffixes starting with the prefix, sorted by text
// position.
func (sa *SuffixArray[S]) LookupTextOrder(prefix []S) []int32 {
	return lookupTextOrder(sa.text, sa.sa, prefix)
}

// LookupSuffix finds the exact suffix in the text.
// For an empty suffix, returns Len() as it occurs at the end of the text.
// Otherwise, returns the starting index or -1 if not found.
func (sa *SuffixArray[S]) LookupSuffix(suffix []S) int {
	if len(suffix) == 0 {
		return len(sa.text)
	}
	if len(sa.sa) == 0 || len(suffix) > len(sa.text) {
		return -1
	}
	l := len(sa.text) - len(suffix)
	if slices.Compare(sa.text[l:], suffix) == 0 {
		return l
	}
	return -1
}

// LookupPrefix checks if the text starts with the given prefix.
// For an empty prefix, returns -1 as it precedes the first character.
// Returns 0 if matched, -2 otherwise.
func (sa *SuffixArray[S]) LookupPrefix(prefix []S) int {
	if len(prefix) == 0 {
		return -1
	}
	if len(sa.sa) == 0 || len(prefix) > len(sa.text) {
		return -2
	}
	if slices.Compare(sa.text[:len(prefix)], prefix) == 0 {
		return 0
	}
	return -2
}

// Locate performs a binary-search substring lookup and reports the text
// index of one occurrence of pattern (any index within the matched range is
// acceptable), or ErrNotFound if pattern does not occur in the text.
func (sa *SuffixArray[S]) Locate(pattern []S) (int, error) {
	if len(pattern) == 0 || len(sa.sa) == 0 {
		return 0, ErrNotFound
	}
	r := sa.LowerBound(pattern)
	if r >= len(sa.sa) {
		return 0, ErrNotFound
	}
	pos := int(sa.sa[r])
	if pos+len(pattern) > len(sa.text) || slices.Compare(sa.text[pos:pos+len(pattern)], pattern) != 0 {
		return 0, ErrNotFound
	}
	return pos, nil
}

// ContextWindow is one hit reported by KeywordInContext: the text position
// of the match and the window of surrounding text around it.
type ContextWindow[S constraints.Ordered] struct {
	Position int
	Window   []S
}

// KeywordInContext starts at LowerBound(pattern) and walks successive ranks
// while their suffix still has pattern as a prefix, emitting for each the
// text window padded by Config.ContextWidth symbols on either side.
func (sa *SuffixArray[S]) KeywordInContext(pattern []S) []ContextWindow[S] {
	if len(pattern) == 0 {
		return nil
	}
	c := sa.cfg.contextWidth()
	n := len(sa.text)

	var hits []ContextWindow[S]
	for r := sa.LowerBound(pattern); r < len(sa.sa); r++ {
		pos := int(sa.sa[r])
		if comparePrefix(sa.text[pos:], pattern) != 0 {
			break
		}

		lo := pos - c
		if lo < 0 {
			lo = 0
		}
		hi := pos + len(pattern) + c
		if hi > n {
			hi = n
		}
		hits = append(hits, ContextWindow[S]{Position: pos, Window: sa.text[lo:hi]})
	}
	return hits
}
