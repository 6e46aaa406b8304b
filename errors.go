// SPDX-License-Identifier: GPL-2.0-only

package zopfli

import "errors"

// Sentinel errors returned by the Huffman builder and the top-level API.
var (
	// ErrTooManyBitsForAlphabet is returned when 2^maxbits is smaller than
	// the number of symbols with nonzero frequency, so no length-limited
	// prefix code can represent them.
	ErrTooManyBitsForAlphabet = errors.New("zopfli: maxbits too small for alphabet size")

	// ErrWeightOverflow is returned when a symbol frequency is too large to
	// sum safely across the boundary package-merge chain without overflowing
	// the uint32 node weight.
	ErrWeightOverflow = errors.New("zopfli: symbol weight too large for stable sort")

	// ErrOptionsRequired is returned by calculateBlockSize when it is given a
	// block type other than stored, fixed or dynamic. The exported entry
	// points treat nil Options as DefaultOptions and never return it.
	ErrOptionsRequired = errors.New("zopfli: options required")
)
