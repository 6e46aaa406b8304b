// SPDX-License-Identifier: GPL-2.0-only

package zopfli

// Core sizing constants shared across the pipeline.
const (
	numLL = 288 // literal/length alphabet size (0..255 literals, 256 end-of-block, 257..285 lengths)
	numD  = 32  // distance alphabet size
	numCL = 19  // code-length alphabet size used to transmit dynamic trees

	minMatch = 3
	maxMatch = 258

	windowSize = 32768
	windowMask = windowSize - 1

	maxChainHits = 8192
	cacheLength  = 8

	maxStoredBlock = 65535 // stored-block LEN field is 16 bits
)

const largeFloat = 1e30
