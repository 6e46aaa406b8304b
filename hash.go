// SPDX-License-Identifier: GPL-2.0-only

package zopfli

// hashShift and hashMask control the rolling 3-byte hash: val is folded as
// ((val<<hashShift)^c)&hashMask.
const (
	hashShift = 5
	hashMask  = 32767
)

// slidingHash tracks, for every window position, a rolling 3-byte hash chain
// (head/prev/hashval) plus a secondary chain (head2/prev2/hashval2) keyed by
// the primary hash XORed with the low byte of a same-byte run length. same[p]
// holds the length of the run of bytes equal to input[p] starting at p,
// saturated to 65535. This lets find_longest_match skip through long runs
// via the secondary chain instead of walking every position of the primary
// chain one at a time.
//
// All chain links are window-relative slot indices (pos & windowMask), never
// pointers, following the flat-array convention used throughout this
// package.
type slidingHash struct {
	val  int32
	val2 int32

	head  [65536]int32
	prev  [windowSize]uint16
	same  [windowSize]uint16
	hval  [windowSize]int32
	head2 [65536]int32
	prev2 [windowSize]uint16
	hval2 [windowSize]int32
}

func newSlidingHash() *slidingHash {
	h := &slidingHash{}
	h.reset()
	return h
}

func (h *slidingHash) reset() {
	h.val = 0
	h.val2 = 0
	for i := range h.head {
		h.head[i] = -1
	}
	for i := range h.head2 {
		h.head2[i] = -1
	}
	for i := range h.hval {
		h.hval[i] = -1
		h.hval2[i] = -1
		h.prev[i] = 0
		h.prev2[i] = 0
		h.same[i] = 0
	}
}

func updateHashValue(val int32, c byte) int32 {
	return ((val << hashShift) ^ int32(c)) & hashMask
}

// warmup folds up to two initial bytes into val without writing chains. It
// must run once before the first update call.
func (h *slidingHash) warmup(input []byte, pos, end int) {
	if pos < end {
		h.val = updateHashValue(0, input[pos])
	}
	if pos+1 < end {
		h.val = updateHashValue(h.val, input[pos+1])
	}
}

// update folds input[pos+minMatch-1] into val, links the chain at pos's
// window slot, and recomputes the same-byte run and the secondary chain.
// update must be called on strictly consecutive positions.
func (h *slidingHash) update(input []byte, pos, end int) {
	hpos := pos & windowMask

	var c byte
	if pos+minMatch-1 < end {
		c = input[pos+minMatch-1]
	}
	h.val = updateHashValue(h.val, c)
	h.hval[hpos] = h.val

	if h.head[h.val] != -1 && h.hval[h.head[h.val]&windowMask] == h.val {
		h.prev[hpos] = uint16(h.head[h.val] & windowMask)
	} else {
		h.prev[hpos] = uint16(hpos)
	}
	h.head[h.val] = int32(hpos)

	same := uint16(0)
	if pos > 0 {
		prevSame := h.same[(pos-1)&windowMask]
		if prevSame > 1 {
			same = prevSame - 1
		}
	}
	for same < 0xFFFF && pos+int(same)+1 < end && input[pos] == input[pos+int(same)+1] {
		same++
	}
	h.same[hpos] = same

	h.val2 = (int32(same-minMatch) & 0xFF) ^ h.val
	h.hval2[hpos] = h.val2
	if h.head2[h.val2] != -1 && h.hval2[h.head2[h.val2]&windowMask] == h.val2 {
		h.prev2[hpos] = uint16(h.head2[h.val2] & windowMask)
	} else {
		h.prev2[hpos] = uint16(hpos)
	}
	h.head2[h.val2] = int32(hpos)
}
