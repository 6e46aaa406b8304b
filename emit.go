// SPDX-License-Identifier: GPL-2.0-only

package zopfli

// emitTokens writes the token range [lstart,lend) plus a trailing
// end-of-block symbol, under the given pre-built trees. Shared by the
// fixed and dynamic emitters, which differ only in which trees they pass.
func emitTokens(w *bitWriter, s *lz77Store, lstart, lend int, llLengths, llCodes, dLengths, dCodes []uint32) {
	for i := lstart; i < lend; i++ {
		litlen := int(s.litlens[i])
		dist := int(s.dists[i])

		if dist == 0 {
			w.addHuff(llCodes[litlen], llLengths[litlen])
			continue
		}

		ls := lengthSymbol(litlen)
		ds := distSymbol(dist)
		w.addHuff(llCodes[ls], llLengths[ls])
		w.addBitsLE(uint32(lengthExtraBitsValue(litlen)), lengthExtraBits(litlen))
		w.addHuff(dCodes[ds], dLengths[ds])
		w.addBitsLE(uint32(distExtraBitsValue(dist)), distExtraBits(dist))
	}
	w.addHuff(llCodes[256], llLengths[256])
}

func emitStoredBlock(w *bitWriter, input []byte, start, length int, final bool) {
	remaining := length
	off := start
	for {
		chunk := remaining
		if chunk > maxStoredBlock {
			chunk = maxStoredBlock
		}
		remaining -= chunk
		isLast := remaining == 0

		if isLast && final {
			w.addBit(1)
		} else {
			w.addBit(0)
		}
		w.addBit(0)
		w.addBit(0)
		w.byteAlign()

		w.addBitsLE(uint32(chunk), 16)
		w.addBitsLE(uint32(uint16(^uint16(chunk))), 16)
		for i := 0; i < chunk; i++ {
			w.addBitsLE(uint32(input[off+i]), 8)
		}

		off += chunk
		if isLast {
			break
		}
	}
}

func emitFixedBlock(w *bitWriter, s *lz77Store, lstart, lend int, final bool) {
	if final {
		w.addBit(1)
	} else {
		w.addBit(0)
	}
	w.addBit(1)
	w.addBit(0)
	emitTokens(w, s, lstart, lend, fixedLL, fixedLLCodes, fixedD, fixedDCodes)
}

// emitDynamicBlock writes the header bit, BTYPE, the code-length alphabet
// description, the RLE-encoded ll+d length sequence, and the token stream,
// per RFC 1951 §3.2.7.
func emitDynamicBlock(w *bitWriter, s *lz77Store, lstart, lend int, dl dynamicLengths, final bool) error {
	if final {
		w.addBit(1)
	} else {
		w.addBit(0)
	}
	w.addBit(0)
	w.addBit(1)

	numLLCodes := numUsedCodes(dl.llLengths, 257)
	numDCodes := numUsedCodes(dl.dLengths, 1)

	combined := make([]uint32, 0, numLLCodes+numDCodes)
	combined = append(combined, dl.llLengths[:numLLCodes]...)
	combined = append(combined, dl.dLengths[:numDCodes]...)

	rle := encodeCodeLengthsRLE(combined)

	clCounts := make([]int, numCL)
	for _, r := range rle {
		clCounts[r.sym]++
	}
	clTree, err := buildTree(clCounts, 7)
	if err != nil {
		return err
	}

	numCLCodes := numCL
	for numCLCodes > 4 && clTree.lengths[cLOrder[numCLCodes-1]] == 0 {
		numCLCodes--
	}

	w.addBitsLE(uint32(numLLCodes-257), 5)
	w.addBitsLE(uint32(numDCodes-1), 5)
	w.addBitsLE(uint32(numCLCodes-4), 4)

	for i := 0; i < numCLCodes; i++ {
		w.addBitsLE(uint32(clTree.lengths[cLOrder[i]]), 3)
	}

	for _, r := range rle {
		w.addHuff(clTree.codes[r.sym], clTree.lengths[r.sym])
		if r.bits > 0 {
			w.addBitsLE(uint32(r.extra), r.bits)
		}
	}

	emitTokens(w, s, lstart, lend, dl.llLengths, dl.llCodes, dl.dLengths, dl.dCodes)
	return nil
}
