// SPDX-License-Identifier: GPL-2.0-only

package zopfli

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLengthLimitedCodeLengthsSingleSymbol(t *testing.T) {
	lengths, err := lengthLimitedCodeLengths([]int{10, 0, 0, 0}, 15)
	require.NoError(t, err)
	require.Equal(t, uint32(1), lengths[0])
	require.Equal(t, uint32(0), lengths[1])
	require.Equal(t, uint32(0), lengths[2])
	require.Equal(t, uint32(0), lengths[3])
}

func TestLengthLimitedCodeLengthsTwoSymbols(t *testing.T) {
	lengths, err := lengthLimitedCodeLengths([]int{3, 5}, 15)
	require.NoError(t, err)
	require.Equal(t, uint32(1), lengths[0])
	require.Equal(t, uint32(1), lengths[1])
}

func TestLengthLimitedCodeLengthsMonotone(t *testing.T) {
	freq := []int{5, 7, 10, 15}
	lengths, err := lengthLimitedCodeLengths(freq, 15)
	require.NoError(t, err)
	require.LessOrEqual(t, lengths[3], lengths[2])
	require.LessOrEqual(t, lengths[2], lengths[1])
	require.LessOrEqual(t, lengths[1], lengths[0])
	for _, l := range lengths {
		require.Greater(t, l, uint32(0))
	}
}

// TestLengthLimitedCodeLengthsKraft checks the Kraft inequality and the
// maxbits ceiling across a range of skewed and uniform histograms.
func TestLengthLimitedCodeLengthsKraft(t *testing.T) {
	histograms := [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1},
		{100, 1, 1, 1, 1, 1, 1, 1},
		{1, 2, 4, 8, 16, 32, 64, 128},
		{1000, 1, 1},
	}
	for _, freq := range histograms {
		maxbits := 7
		lengths, err := lengthLimitedCodeLengths(freq, maxbits)
		require.NoError(t, err)

		sum := 0.0
		maxLen := uint32(0)
		for i, f := range freq {
			if f == 0 {
				continue
			}
			require.Greater(t, lengths[i], uint32(0))
			if lengths[i] > maxLen {
				maxLen = lengths[i]
			}
			sum += math.Pow(2, -float64(lengths[i]))
		}
		require.LessOrEqual(t, int(maxLen), maxbits)
		require.LessOrEqual(t, sum, 1.0+1e-9)
	}
}

func TestLengthLimitedCodeLengthsTooManyBits(t *testing.T) {
	freq := make([]int, 10)
	for i := range freq {
		freq[i] = i + 1
	}
	_, err := lengthLimitedCodeLengths(freq, 1)
	require.ErrorIs(t, err, ErrTooManyBitsForAlphabet)
}

func TestLengthsToSymbolsPrefixFree(t *testing.T) {
	freq := []int{8, 1, 1, 2, 3, 5, 13, 21}
	lengths, err := lengthLimitedCodeLengths(freq, 15)
	require.NoError(t, err)
	codes := lengthsToSymbols(lengths, 15)

	type cw struct {
		code   uint32
		length uint32
	}
	var seen []cw
	for i, l := range lengths {
		if l == 0 {
			continue
		}
		for _, s := range seen {
			if s.length == l {
				require.NotEqual(t, s.code, codes[i], "duplicate code at length %d", l)
			}
		}
		seen = append(seen, cw{codes[i], l})
	}
}

func TestOptimizeHuffmanForRLEPreservesZeroRun(t *testing.T) {
	counts := make([]int, 20)
	counts[0] = 5
	optimizeHuffmanForRLE(counts)
	for i := 1; i < len(counts); i++ {
		require.Equal(t, 0, counts[i])
	}
}

func TestCalculateEntropyZeroForEmpty(t *testing.T) {
	bits := calculateEntropy([]int{0, 0, 0})
	require.Equal(t, []float64{0, 0, 0}, bits)
}
