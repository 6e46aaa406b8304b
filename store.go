// SPDX-License-Identifier: GPL-2.0-only

package zopfli

// lz77Store is the append-only LZ77 token stream produced by the greedy
// tokenizer. Literals and matches share the same parallel arrays: a token
// with dist==0 is a literal byte (litlen holds the byte value); a token with
// dist!=0 is a match (litlen holds the match length).
//
// llCounts/dCounts are cumulative histograms grown in chunks of numLL/numD
// tokens: chunk k's slice holds the running symbol counts for tokens
// [0, min(N,(k+1)*numLL)), so a histogram over any token range can be read
// in O(1) by subtracting two chunk snapshots instead of rescanning (see
// rangeHistogram in block.go).
type lz77Store struct {
	litlens []uint16
	dists   []uint16
	pos     []int
	llSym   []uint16
	dSym    []uint16

	llCounts [][numLL]int
	dCounts  [][numD]int
}

func newLZ77Store() *lz77Store {
	return &lz77Store{}
}

func (s *lz77Store) size() int {
	return len(s.litlens)
}

// storeLitLenDist appends one token at input position p. length is the raw
// literal byte or match length; dist is 0 for a literal.
func (s *lz77Store) storeLitLenDist(length, dist, p int) {
	n := s.size()

	if n%numLL == 0 {
		var base [numLL]int
		if n > 0 {
			base = s.llCounts[len(s.llCounts)-1]
		}
		s.llCounts = append(s.llCounts, base)
	}
	if n%numD == 0 {
		var base [numD]int
		if n > 0 {
			base = s.dCounts[len(s.dCounts)-1]
		}
		s.dCounts = append(s.dCounts, base)
	}

	s.litlens = append(s.litlens, uint16(length))
	s.dists = append(s.dists, uint16(dist))
	s.pos = append(s.pos, p)

	var ls, ds int
	if dist == 0 {
		ls = length
	} else {
		ls = lengthSymbol(length)
		ds = distSymbol(dist)
	}
	s.llSym = append(s.llSym, uint16(ls))
	s.dSym = append(s.dSym, uint16(ds))

	s.llCounts[len(s.llCounts)-1][ls]++
	if dist != 0 {
		s.dCounts[len(s.dCounts)-1][ds]++
	}
}
