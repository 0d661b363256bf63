// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// symbolFreq pairs a distinct symbol from the text with its occurrence
// count.
type symbolFreq[S constraints.Ordered] struct {
	sym   S
	count int32
}

// profileAlphabet takes a single pass over text and returns its distinct
// symbols in ascending order together with their occurrence counts. The sum
// of the counts always equals len(text).
func profileAlphabet[S constraints.Ordered](text []S) []symbolFreq[S] {
	counts := make(map[S]int32, len(text))
	for _, sym := range text {
		counts[sym]++
	}

	syms := make([]S, 0, len(counts))
	for sym := range counts {
		syms = append(syms, sym)
	}
	slices.Sort(syms)

	profile := make([]symbolFreq[S], len(syms))
	for i, sym := range syms {
		profile[i] = symbolFreq[S]{sym: sym, count: counts[sym]}
	}
	return profile
}

// baseOffsets returns, for each entry of an ascending alphabet profile, the
// base rank offset of that symbol: the cumulative count of strictly smaller
// symbols. base[i] is the offset reserved for profile[i].sym, and the
// symbol's bucket spans [base[i], base[i]+profile[i].count).
func baseOffsets[S constraints.Ordered](profile []symbolFreq[S]) []int32 {
	base := make([]int32, len(profile))
	var offset int32
	for i, p := range profile {
		base[i] = offset
		offset += p.count
	}
	return base
}

// symbolIndex finds the position of sym within an ascending alphabet
// profile using binary search. Undefined if sym does not occur in profile.
func symbolIndex[S constraints.Ordered](profile []symbolFreq[S], sym S) int {
	lo, hi := 0, len(profile)
	for lo < hi {
		mid := (lo + hi) / 2
		if profile[mid].sym < sym {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
