// SPDX-License-Identifier: GPL-2.0-only

package zopfli

// bitWriter packs bits LSB-first within each output byte, the DEFLATE wire
// convention for everything except Huffman codes (which are bit-reversed).
type bitWriter struct {
	out []byte
	bp  uint // bit position within the last byte, 0..7
}

func newBitWriter() *bitWriter {
	return &bitWriter{}
}

func (w *bitWriter) addBit(b uint) {
	if w.bp == 0 {
		w.out = append(w.out, 0)
	}
	w.out[len(w.out)-1] |= byte((b & 1) << w.bp)
	w.bp = (w.bp + 1) & 7
}

// addBitsLE emits the n least significant bits of v, LSB first.
func (w *bitWriter) addBitsLE(v uint32, n int) {
	for i := 0; i < n; i++ {
		w.addBit(uint(v>>uint(i)) & 1)
	}
}

// addHuff emits a canonical Huffman code, whose bits are transmitted MSB
// first (the reverse of every other field in the bitstream).
func (w *bitWriter) addHuff(code uint32, length uint32) {
	for i := int(length) - 1; i >= 0; i-- {
		w.addBit(uint(code>>uint(i)) & 1)
	}
}

// byteAlign pads the current byte with zero bits so the next write starts
// on a byte boundary.
func (w *bitWriter) byteAlign() {
	for w.bp != 0 {
		w.addBit(0)
	}
}

func (w *bitWriter) bytes() []byte {
	return w.out
}

// bitLength returns the total number of bits written so far.
func (w *bitWriter) bitLength() int {
	if len(w.out) == 0 {
		return 0
	}
	return (len(w.out)-1)*8 + int(w.bp)
}

var cLOrder = [numCL]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// treeSet bundles a built Huffman tree (lengths + canonical codes) for one
// of the two dynamic-block alphabets.
type treeSet struct {
	lengths []uint32
	codes   []uint32
}

func buildTree(counts []int, maxbits int) (treeSet, error) {
	freq := make([]int, len(counts))
	copy(freq, counts)
	lengths, err := lengthLimitedCodeLengths(freq, maxbits)
	if err != nil {
		return treeSet{}, err
	}
	codes := lengthsToSymbols(lengths, maxbits)
	return treeSet{lengths: lengths, codes: codes}, nil
}

func numUsedCodes(lengths []uint32, minCount int) int {
	n := len(lengths)
	for n > minCount && lengths[n-1] == 0 {
		n--
	}
	return n
}

// rleSymbol is one code-length-alphabet token: a literal length value
// (sym<16) or a repeat instruction (sym in {16,17,18}) with its extra bits.
type rleSymbol struct {
	sym   int
	extra int
	bits  int
}

// encodeCodeLengthsRLE implements RFC 1951 §3.2.7's run-length encoding of
// a concatenated ll+distance code-length sequence using symbols 0-18.
func encodeCodeLengthsRLE(lengths []uint32) []rleSymbol {
	var out []rleSymbol
	n := len(lengths)
	i := 0
	for i < n {
		value := lengths[i]
		runEnd := i
		for runEnd < n && lengths[runEnd] == value {
			runEnd++
		}
		run := runEnd - i

		if value == 0 {
			for run > 0 {
				if run < 3 {
					out = append(out, rleSymbol{sym: 0})
					run--
					continue
				}
				chunk := run
				if chunk > 138 {
					chunk = 138
				}
				if chunk >= 11 {
					out = append(out, rleSymbol{sym: 18, extra: chunk - 11, bits: 7})
				} else {
					if chunk > 10 {
						chunk = 10
					}
					out = append(out, rleSymbol{sym: 17, extra: chunk - 3, bits: 3})
				}
				run -= chunk
			}
		} else {
			out = append(out, rleSymbol{sym: int(value)})
			run--
			for run > 0 {
				chunk := run
				if chunk > 6 {
					chunk = 6
				}
				if chunk < 3 {
					for k := 0; k < chunk; k++ {
						out = append(out, rleSymbol{sym: int(value)})
					}
					run -= chunk
					continue
				}
				out = append(out, rleSymbol{sym: 16, extra: chunk - 3, bits: 2})
				run -= chunk
			}
		}

		i = runEnd
	}
	return out
}
