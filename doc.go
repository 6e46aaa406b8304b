// SPDX-License-Identifier: GPL-2.0-only

/*
Package zopfli implements a DEFLATE (RFC 1951) encoder in the Zopfli
family. It provides the family's one-shot greedy path: a lazy-matching
LZ77 parse over long hash chains, emitted as a single block.

The package never decompresses; verify the bitstream with any
conforming DEFLATE decoder such as compress/flate.

# Compress

Options may be nil (DefaultOptions). Compress lets the block sizer pick
the cheapest of stored, fixed-Huffman, or dynamic-Huffman encoding for
the whole input:

	out, err := zopfli.Compress(data, nil)
	out, err := zopfli.Compress(data, &zopfli.Options{NumIterations: 20})

CompressFixed always emits a single fixed-Huffman block, skipping the
size comparison:

	out, err := zopfli.CompressFixed(data, nil)
*/
package zopfli
