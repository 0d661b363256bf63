// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

// doublingRefine performs the Manber-Myers prefix-doubling refinement.
// Starting from the H=1 ordering left by firstStageSort, it repeatedly
// doubles the effective comparison length H until every bucket of bh is a
// singleton, mutating sa, rank and bh in place at every stage.
//
// RANK carries two meanings across the course of one stage: between
// stages it is the inverse of SA, but while a stage is running it
// temporarily holds the left boundary of each suffix's current H-bucket
// (seedBucketRanks below). Callers of this function only ever see it in
// the post-stage, inverse-permutation state.
func doublingRefine(sa, rank []int32, bh []bool) ([]int32, []int32, []bool) {
	n := int32(len(sa))
	if n == 0 {
		return sa, rank, bh
	}

	// b2h and count are scratch, meaningful only within a single stage.
	// next skips over H-bucket intervals instead of rescanning bh.
	b2h := make([]bool, n)
	count := make([]int32, n)
	next := make([]int32, n)

	boundaries := countBoundaries(bh)

	for h := int32(1); h < n && boundaries < n; h *= 2 {
		rebuildNext(bh, next, n)
		seedBucketRanks(sa, rank, count, next, n)

		// The suffix at N-H has no 2H-tail; it sorts smallest in its
		// H-bucket, so it is placed once before the bucket loop below
		// considers any suffix with a genuine tail.
		if d := n - h; d >= 0 {
			place(d, rank, count, b2h)
		}

		for l := int32(0); l < n; l = next[l] {
			r := next[l]

			for k := l; k < r; k++ {
				if s := sa[k] - h; s >= 0 {
					place(s, rank, count, b2h)
				}
			}
			for k := l; k < r; k++ {
				if s := sa[k] - h; s >= 0 && b2h[rank[s]] {
					prune(rank[s], bh, b2h, n)
				}
			}
		}

		// Rebuild SA from the now-distinct RANK values and merge the
		// newly discovered 2H-boundaries into BH.
		for i := int32(0); i < n; i++ {
			sa[rank[i]] = i
		}
		boundaries = 0
		for r := int32(0); r < n; r++ {
			if b2h[r] {
				bh[r] = true
				b2h[r] = false
			}
			if bh[r] {
				boundaries++
			}
		}
	}

	return sa, rank, bh
}

// rebuildNext scans bh left to right and, for every bucket boundary l,
// records in next[l] the index of the following boundary, or n past the
// last bucket.
func rebuildNext(bh []bool, next []int32, n int32) {
	last := int32(-1)
	for i := int32(0); i < n; i++ {
		if bh[i] {
			if last >= 0 {
				next[last] = i
			}
			last = i
		}
	}
	if last >= 0 {
		next[last] = n
	}
}

// seedBucketRanks walks every H-bucket [l, r) via next, overwrites
// rank[SA[k]] with the bucket's left boundary l for each k in the bucket,
// and resets count[l] so that placements into the bucket start at its
// first free slot.
func seedBucketRanks(sa, rank, count, next []int32, n int32) {
	for l := int32(0); l < n; l = next[l] {
		r := next[l]
		count[l] = 0
		for k := l; k < r; k++ {
			rank[sa[k]] = l
		}
	}
}

// place deposits suffix s at the next free slot of its own H-bucket
// (e = rank[s], currently the bucket's left boundary), advances that
// bucket's counter, and marks the slot as a newly discovered 2H-boundary.
func place(s int32, rank, count []int32, b2h []bool) {
	e := rank[s]
	pos := e + count[e]
	count[e]++
	rank[s] = pos
	b2h[pos] = true
}

// prune clears every B2H flag strictly right of pos up to (but excluding)
// the next position that is already a settled H-bucket boundary or not yet
// marked in B2H, leaving only the leftmost flag of the contiguous run pos
// belongs to. limit is computed once via rightLimit, not recomputed per
// index cleared; recomputing it from pos+1 after a flag has been cleared
// would stop at that cleared index and end the scan after one step.
func prune(pos int32, bh, b2h []bool, n int32) {
	limit := rightLimit(pos+1, bh, b2h, n)
	for f := pos + 1; f < limit; f++ {
		b2h[f] = false
	}
}

// rightLimit returns the smallest j >= x such that bh[j] is true or b2h[j]
// is false, or n if no such index exists before the end of the array.
func rightLimit(x int32, bh, b2h []bool, n int32) int32 {
	j := x
	for j < n && !bh[j] && b2h[j] {
		j++
	}
	return j
}

// countBoundaries counts how many positions are currently marked as
// H-bucket boundaries in bh.
func countBoundaries(bh []bool) int32 {
	var c int32
	for _, v := range bh {
		if v {
			c++
		}
	}
	return c
}
