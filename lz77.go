// SPDX-License-Identifier: GPL-2.0-only

package zopfli

// lengthScore is the lazy-matching comparison heuristic: it prefers longer
// matches but discounts length by how far away the match is, so a
// marginally longer but much farther match doesn't win. It only affects
// compression ratio, never correctness - any reasonable length-preferring
// score yields a valid DEFLATE stream.
func lengthScore(length, dist int) int {
	if length < minMatch {
		return 0
	}
	penalty := (dist - 1024) / 32
	if penalty < 0 {
		penalty = 0
	}
	return length*1024 - penalty
}

// lz77Greedy walks input[instart:inend] and appends one token per covered
// position to store, using lazy matching: a match found at position i is
// deferred by one position to see whether i+1 yields a strictly better one,
// matching the teacher's one-token-lookahead parse loop shape.
func lz77Greedy(h *slidingHash, cache *matchCache, input []byte, instart, inend int, store *lz77Store) {
	if instart == inend {
		return
	}

	windowStart := instart
	if instart > windowSize {
		windowStart = instart - windowSize
	}

	h.reset()
	h.warmup(input, windowStart, inend)
	for p := windowStart; p < instart; p++ {
		h.update(input, p, inend)
	}

	var sublen [maxMatch + 1]uint16

	prevLength := 0
	prevDist := 0
	matchAvailable := false

	i := instart
	for i < inend {
		h.update(input, i, inend)

		dist, leng := findLongestMatch(h, cache, input, i, inend, maxMatch, instart, &sublen)

		if matchAvailable {
			matchAvailable = false
			score := lengthScore(leng, dist)
			prevScore := lengthScore(prevLength, prevDist)

			if score > prevScore+1 {
				// The deferred match from i-1 loses to what's at i: emit
				// i-1 as a literal instead.
				store.storeLitLenDist(int(input[i-1]), 0, i-1)
				if leng >= minMatch && leng < maxMatch {
					prevLength = leng
					prevDist = dist
					matchAvailable = true
					i++
					continue
				}
				// leng >= maxMatch (can't improve by deferring further):
				// fall through and handle (leng,dist) at i directly below.
			} else {
				store.storeLitLenDist(prevLength, prevDist, i-1)
				for p := i + 1; p < i+prevLength-1 && p < inend; p++ {
					h.update(input, p, inend)
				}
				i += prevLength - 1
				continue
			}
		}

		switch {
		case leng >= minMatch && leng < maxMatch:
			prevLength = leng
			prevDist = dist
			matchAvailable = true
			i++

		case leng >= minMatch:
			store.storeLitLenDist(leng, dist, i)
			for k := 1; k < leng; k++ {
				if i+k >= inend {
					break
				}
				h.update(input, i+k, inend)
			}
			i += leng

		default:
			store.storeLitLenDist(int(input[i]), 0, i)
			i++
		}
	}

	if matchAvailable {
		store.storeLitLenDist(int(input[inend-1]), 0, inend-1)
	}
}
