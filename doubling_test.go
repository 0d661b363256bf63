package suffixarr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// compareSuffix is a full, symmetric lexicographic comparison between two
// suffixes, unlike comparePrefix which treats its second argument as a
// search pattern and deliberately calls a suffix that merely starts with
// it "equal". Used only to verify sortedness independently of the
// production prefix-search comparator.
func compareSuffix(a, b []int32) int {
	minLen := len(a)
	if minLen > len(b) {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func checkInvariants(t *testing.T, text []int32, sa, rank []int32, bh []bool) {
	t.Helper()
	n := len(text)
	assert.Len(t, sa, n)
	assert.Len(t, rank, n)
	assert.Len(t, bh, n)

	// Permutation: every index 0..n-1 appears exactly once in sa.
	seen := make([]bool, n)
	for _, s := range sa {
		assert.False(t, seen[s], "duplicate entry in SA")
		seen[s] = true
	}

	// Inverse: RANK[SA[r]] == r for all ranks.
	for r, s := range sa {
		assert.Equal(t, int32(r), rank[s])
	}

	// Sortedness: suffixes appear in non-decreasing lexicographic order.
	for i := 1; i < n; i++ {
		assert.LessOrEqual(t, compareSuffix(text[sa[i-1]:], text[sa[i]:]), 0)
	}

	// After construction every bucket is a singleton, so every rank is a
	// bucket boundary.
	for r := range bh {
		assert.True(t, bh[r], "rank %d is not a bucket boundary", r)
	}

	// Cross-check against an independent sort.Slice-based ordering.
	want := makeSA(text)
	assert.Equal(t, want, sa)
}

func TestConstructionInvariants(t *testing.T) {
	tests := map[string]struct {
		input []int32
	}{
		"empty string":          {input: []int32{}},
		"single character":      {input: []int32{100}},
		"same characters":       {input: []int32("aaaaaaaaaaaaaaaaaaaaa")},
		"1 LMS-like run":        {input: []int32("aabab")},
		"2 LMS-like runs":       {input: []int32("aababab")},
		"banana":                {input: []int32("banana")},
		"mississippi":           {input: []int32("mississippi")},
		"abracadabra":           {input: []int32("abracadabra")},
		"repeated pattern":      {input: []int32{1, 2, 1, 2, 1, 2, 1, 2}},
		"reverse sorted":        {input: []int32{5, 4, 3, 2, 1}},
		"ACGTGCCTAGCCTACCGTGCC": {input: []int32("ACGTGCCTAGCCTACCGTGCC")},
		"min/max edges":         {input: []int32{0, 255}},
		"alternating pattern":   {input: []int32{3, 1, 3, 1, 3, 1}},
		"zero characters":       {input: []int32{0, 0, 0, 1, 1, 1}},
		"length 1":              {input: []int32{42}},
		"length 2 equal":        {input: []int32{7, 7}},
		"length 2 distinct":     {input: []int32{7, 3}},
		"length 3 all equal":    {input: []int32{9, 9, 9}},
		"long random string 8":  {input: genRandText_8_32(1000)},
		"long random string 32": {input: genRandText_32(1000)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sa, rank, bh := build(tc.input)
			checkInvariants(t, tc.input, sa, rank, bh)
		})
	}
}

func TestConstructionDeterminism(t *testing.T) {
	text := []int32("abracadabraabracadabra")
	sa1, rank1, bh1 := build(text)
	sa2, rank2, bh2 := build(text)
	assert.Equal(t, sa1, sa2)
	assert.Equal(t, rank1, rank2)
	assert.Equal(t, bh1, bh2)
}

func TestConstructionOverSymbolStrings(t *testing.T) {
	text := []string{"b", "a", "n", "a", "n", "a"}
	sa, rank, bh := build(text)
	assert.Len(t, sa, len(text))
	for r, s := range sa {
		assert.Equal(t, int32(r), rank[s])
	}
	assert.True(t, bh[0])
}
