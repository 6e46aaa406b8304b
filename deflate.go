// SPDX-License-Identifier: GPL-2.0-only

package zopfli

import "fmt"

// CompressFixed encodes input as a single DEFLATE final block using the
// fixed Huffman trees defined by RFC 1951 §3.2.6, skipping the
// stored/fixed/dynamic size comparison entirely.
func CompressFixed(input []byte, opts *Options) ([]byte, error) {
	opts = optionsOrDefault(opts)

	sess := getSession()
	defer putSession(sess)

	sess.store.litlens = sess.store.litlens[:0]
	sess.store.dists = sess.store.dists[:0]
	sess.store.pos = sess.store.pos[:0]
	sess.store.llSym = sess.store.llSym[:0]
	sess.store.dSym = sess.store.dSym[:0]
	sess.store.llCounts = sess.store.llCounts[:0]
	sess.store.dCounts = sess.store.dCounts[:0]

	lz77Greedy(sess.hash, nil, input, 0, len(input), sess.store)

	w := newBitWriter()
	emitFixedBlock(w, sess.store, 0, sess.store.size(), true)
	return w.bytes(), nil
}

// Compress encodes input as a single DEFLATE final block, letting the block
// sizer choose whichever of stored, fixed-Huffman, or dynamic-Huffman
// encoding produces the smallest output.
func Compress(input []byte, opts *Options) ([]byte, error) {
	opts = optionsOrDefault(opts)

	sess := getSession()
	defer putSession(sess)

	sess.store.litlens = sess.store.litlens[:0]
	sess.store.dists = sess.store.dists[:0]
	sess.store.pos = sess.store.pos[:0]
	sess.store.llSym = sess.store.llSym[:0]
	sess.store.dSym = sess.store.dSym[:0]
	sess.store.llCounts = sess.store.llCounts[:0]
	sess.store.dCounts = sess.store.dCounts[:0]

	cache := newMatchCache(len(input))
	lz77Greedy(sess.hash, cache, input, 0, len(input), sess.store)

	n := sess.store.size()
	btype, _, err := calculateBlockSizeAutoType(sess.store, 0, n)
	if err != nil {
		return nil, fmt.Errorf("zopfli: size block: %w", err)
	}

	w := newBitWriter()
	switch btype {
	case blockStored:
		emitStoredBlock(w, input, 0, len(input), true)
	case blockFixed:
		emitFixedBlock(w, sess.store, 0, n, true)
	case blockDynamic:
		dl, err := getDynamicLengths(sess.store, 0, n)
		if err != nil {
			return nil, fmt.Errorf("zopfli: build dynamic tree: %w", err)
		}
		if err := emitDynamicBlock(w, sess.store, 0, n, dl, true); err != nil {
			return nil, fmt.Errorf("zopfli: emit dynamic block: %w", err)
		}
	}

	return w.bytes(), nil
}
