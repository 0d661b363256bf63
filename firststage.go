// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import "golang.org/x/exp/constraints"

// sentinel marks an as-yet unfilled slot of SA during the first-stage sort.
const sentinel = int32(-1)

// firstStageSort populates sa, rank and bh so that every suffix starts out
// placed in the bucket of its first symbol (H=1), scanning text in text
// order so that ties are broken stably and left for the doubling refiner
// to resolve.
func firstStageSort[S constraints.Ordered](text []S) (sa, rank []int32, bh []bool) {
	n := int32(len(text))
	sa = make([]int32, n)
	for i := range sa {
		sa[i] = sentinel
	}
	rank = make([]int32, n)
	bh = make([]bool, n)
	if n == 0 {
		return sa, rank, bh
	}

	profile := profileAlphabet(text)
	base := baseOffsets(profile)
	cursor := make([]int32, len(profile))

	for i := int32(0); i < n; i++ {
		idx := symbolIndex(profile, text[i])
		b := base[idx]
		bh[b] = true

		slot := b + cursor[idx]
		cursor[idx]++
		sa[slot] = i
		rank[i] = slot
	}

	return sa, rank, bh
}
