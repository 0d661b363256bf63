// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import "unicode/utf8"

// sep is a special character used to separate strings in the generalized
// suffix array. It is chosen from the Unicode Private Use Area (PUA),
// U+E000, to avoid conflicts with actual text characters. The PUA trick
// only makes sense over a concrete rune-like alphabet, which is why GSA is
// not generic over the constraints.Ordered symbol type the single-text core
// uses.
const sep int32 = 0xE000

// index stores metadata (l, i) and buffer for a substring in the
// generalized suffix array.
type index struct {
	l, i int
	sa   []int32
}

// GSA represents a generalized suffix array over multiple texts,
// concatenated with sep-delimiters and indexed by the same doubling core
// used for a single text. It sits beside SuffixArray rather than inside
// it, since the separator trick only makes sense for a rune-like
// alphabet.
type GSA struct {
	src              [][]int32 // Original strings.
	text, sa, strIdx []int32   // Concatenated text, suffix array, and string indices.
	idx              []index   // Buffer and metadata for each substring.
	index            []Index   // Buffer for occurrence indices for lookup results.
}

// newGSA_32 builds a generalized suffix array for int32 strings.
func newGSA_32(src [][]int32, strNum int) *GSA {
	textSz := strNum + len(src) + 1
	buf := make([]int32, textSz*2+strNum)
	text := buf[:textSz]
	strIdx, idxBuf := buf[textSz:textSz*2], buf[textSz*2:]
	idx := make([]index, len(src))

	text[0] = sep
	var (
		l, r    int
		ll, pos int = 1, 1
	)
	for i := 0; i < len(src); i++ {
		for j := 0; j < len(src[i]); j++ {
			text[pos], strIdx[pos] = src[i][j], int32(i)
			pos++
		}
		r += len(src[i])
		curr := idx[i]
		curr.l, curr.sa = ll, idxBuf[l:r]
		idx[i], strIdx[pos], text[pos] = curr, int32(i), sep
		pos++
		ll += len(src[i]) + 1
		l = r
	}
	sa, _, _ := build(text)
	return &GSA{src, text, sa, strIdx, idx, make([]Index, len(src))}
}

// NewGSA creates a generalized suffix array from strings.
func NewGSA(src []string) *GSA {
	if len(src) == 0 {
		return nil
	}
	src32 := make([][]int32, len(src))
	var sz int
	for i := 0; i < len(src); i++ {
		sz += utf8.RuneCountInString(src[i])
		src32[i] = []int32(src[i])
	}
	return newGSA_32(src32, sz)
}

// NewGSA_32 creates a generalized suffix array from int32 slices.
func NewGSA_32(src [][]int32) *GSA {
	if len(src) == 0 {
		return nil
	}
	var sz int
	for i := 0; i < len(src); i++ {
		sz += len(src[i])
	}
	return newGSA_32(src, sz)
}

// fillIdx fills gsa.idx with indexes from sa according to substrings.
// Returns the number of strings with occurrences.
func (gsa *GSA) fillIdx(sa []int32) (sz int) {
	var prev int32
	for i := 0; i < len(sa); i++ {
		j := sa[i]
		if gsa.text[j] == sep {
			if int(j) == len(gsa.text)-1 {
				break
			}
			j++
		}
		if j == prev {
			continue
		}
		str := gsa.strIdx[j]
		curr := gsa.idx[str]
		if curr.i == 0 {
			sz++
		}
		curr.sa[curr.i] = j - int32(curr.l)
		curr.i++
		gsa.idx[str] = curr
		prev = j
	}
	return
}

// Index holds a string's occurrences in the generalized suffix array.
type Index struct {
	String     int32
	Occurences []int32
}

// makeIndex generates occurrence indices for strings.
func (gsa *GSA) makeIndex(sa []int32, sz int) []Index {
	index := gsa.index[:sz]
	var (
		k    int
		prev int32
	)
	for i := 0; i < len(sa); i++ {
		j := sa[i]
		if gsa.text[j] == sep {
			if int(j) == len(gsa.text)-1 {
				break
			}
			j++
		}
		if j == prev {
			continue
		}
		str := gsa.strIdx[j]
		idx := gsa.idx[str]
		if idx.i == 0 {
			continue
		}
		curr := Index{str, idx.sa[:idx.i]}
		gsa.idx[str].i = 0
		index[k] = curr
		k++
	}
	return index
}

// LookupTextOrder finds prefix occurrences in the generalized suffix array,
// sorted by text position.
func (gsa *GSA) LookupTextOrder(prefix []int32) []Index {
	res := lookupTextOrder(gsa.text, gsa.sa, prefix)
	sz := gsa.fillIdx(res)
	return gsa.makeIndex(res, sz)
}

// LookupSuffix finds suffix occurrences in the generalized suffix array,
// sorted by text position.
func (gsa *GSA) LookupSuffix(suf []int32) []Index {
	if len(suf) == 0 {
		for i := 0; i < len(gsa.src); i++ {
			l := len(gsa.idx[i].sa)
			gsa.idx[i].sa[0] = int32(l)
			gsa.index[i] = Index{int32(i), gsa.idx[i].sa[:1]}
		}
		return gsa.index
	}
	suf = append(suf, sep)
	res := lookupTextOrder(gsa.text, gsa.sa, suf)
	sz := gsa.fillIdx(res)
	return gsa.makeIndex(res, sz)
}

// LookupPrefix finds prefix occurrences in the generalized suffix array,
// sorted by text position.
func (gsa *GSA) LookupPrefix(suf []int32) []Index {
	if len(suf) == 0 {
		for i := 0; i < len(gsa.src); i++ {
			gsa.idx[i].sa[0] = -1
			gsa.index[i] = Index{int32(i), gsa.idx[i].sa[:1]}
		}
		return gsa.index
	}
	cp := make([]int32, len(suf)+1)
	cp[0] = sep
	copy(cp[1:], suf)
	res := lookupTextOrder(gsa.text, gsa.sa, cp)
	sz := gsa.fillIdx(res)
	return gsa.makeIndex(res, sz)
}
