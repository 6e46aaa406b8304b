// SPDX-License-Identifier: GPL-2.0-only

package zopfli

import (
	"math/bits"
	"unsafe"
)

// matchLength returns the number of leading bytes that agree between
// input[pos:pos+limit] and input[matchPos:matchPos+limit]. Bytes are
// compared eight at a time via an unaligned word load; this is an
// optimization only, never observable in the returned count.
func matchLength(input []byte, pos, matchPos, limit int) int {
	a := input[pos : pos+limit]
	b := input[matchPos : matchPos+limit]

	n := 0
	for n+8 <= limit {
		wa := *(*uint64)(unsafe.Pointer(&a[n]))
		wb := *(*uint64)(unsafe.Pointer(&b[n]))
		if wa != wb {
			return n + bits.TrailingZeros64(wa^wb)/8
		}
		n += 8
	}
	for n < limit && a[n] == b[n] {
		n++
	}
	return n
}

func zopfliMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// findLongestMatch walks the hash chains rooted at pos to find the longest
// back-reference within [minMatch,limit]. size is the total input length;
// limit is clamped internally to [minMatch,maxMatch] and to size-pos.
// blockStart is the input offset the match cache (block-local) is anchored
// to; pass a nil cache to search without memoization. When sublenOut is
// non-nil, sublenOut[k] receives the smallest distance at which a match of
// length >= k was observed, for every k in (initialBest,length]. A result
// answered from the cache leaves sublenOut unchanged.
func findLongestMatch(h *slidingHash, cache *matchCache, input []byte, pos, size, limit, blockStart int, sublenOut *[maxMatch + 1]uint16) (dist, length int) {
	if limit > maxMatch {
		limit = maxMatch
	}
	if limit < minMatch {
		limit = minMatch
	}
	if rem := size - pos; limit > rem {
		limit = rem
	}
	if limit < minMatch {
		return 0, 0
	}

	cachePos := pos - blockStart
	if cache != nil && cachePos >= 0 {
		if hit, cd, cl, newLimit := cache.tryGet(cachePos, limit, sublenOut != nil); hit {
			if cl > size-pos {
				cl = size - pos
			}
			return cd, cl
		} else if newLimit < limit {
			if newLimit < minMatch {
				cache.store(cachePos, maxMatch, sublenOut, 0, 0)
				return 0, 0
			}
			limit = newLimit
		}
	}

	if sublenOut != nil {
		for i := range sublenOut {
			sublenOut[i] = 0
		}
	}

	hpos := pos & windowMask
	bestLength := 0
	bestDist := 0

	// h.head[h.val] was just set to hpos itself by the update() call that
	// must precede every findLongestMatch call (lz77.go's tokenizer always
	// updates then searches), so starting the walk there would immediately
	// see pos as its own "previous" occurrence at distance 0. h.prev[hpos]
	// is the real previous occurrence the update linked in before
	// overwriting the bucket head; a self-reference there means none exists.
	chainCounter := maxChainHits
	cur := int(h.prev[hpos])
	if cur == hpos {
		chainCounter = 0
	}
	useSecondary := false

	for chainCounter > 0 {
		var candDist int
		if cur <= hpos {
			candDist = hpos - cur
		} else {
			candDist = hpos - cur + windowSize
		}
		if candDist <= 0 || candDist >= windowSize {
			break
		}
		candPos := pos - candDist
		if candPos < blockStart || candPos < 0 {
			break
		}

		if bestLength == 0 || (pos+bestLength < size && input[candPos+bestLength] == input[pos+bestLength]) {
			same := zopfliMin(int(h.same[hpos]), int(h.same[candPos&windowMask]))
			same = zopfliMin(same, limit)

			currentLength := same
			if currentLength < limit {
				currentLength = matchLength(input, pos, candPos, limit)
			}

			if currentLength > bestLength {
				if sublenOut != nil {
					for k := bestLength + 1; k <= currentLength; k++ {
						sublenOut[k] = uint16(candDist)
					}
				}
				bestDist = candDist
				bestLength = currentLength
				if bestLength >= limit {
					break
				}
			}
		}

		if !useSecondary && bestLength >= int(h.same[hpos]) && h.hval2[cur&windowMask] == h.val2 {
			useSecondary = true
		}

		var next uint16
		if useSecondary {
			next = h.prev2[cur&windowMask]
		} else {
			next = h.prev[cur&windowMask]
		}
		if int(next) == cur {
			break
		}
		cur = int(next)
		chainCounter--
	}

	if bestLength < minMatch {
		bestLength = 0
		bestDist = 0
	}

	if cache != nil && cachePos >= 0 {
		cache.store(cachePos, maxMatch, sublenOut, bestDist, bestLength)
	}

	return bestDist, bestLength
}
