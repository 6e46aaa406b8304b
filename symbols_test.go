// SPDX-License-Identifier: GPL-2.0-only

package zopfli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLengthSymbolBoundaries(t *testing.T) {
	cases := []struct {
		length    int
		wantSym   int
		wantExtra int
		wantValue int
	}{
		{3, 257, 0, 0},
		{10, 264, 0, 0},
		{11, 265, 1, 0},
		{18, 268, 1, 1},
		{258, 285, 0, 0},
	}
	for _, c := range cases {
		require.Equal(t, c.wantSym, lengthSymbol(c.length), "length %d symbol", c.length)
		require.Equal(t, c.wantExtra, lengthExtraBits(c.length), "length %d extra bits", c.length)
		require.Equal(t, c.wantValue, lengthExtraBitsValue(c.length), "length %d extra value", c.length)
	}
}

func TestDistSymbolBoundaries(t *testing.T) {
	cases := []struct {
		dist      int
		wantSym   int
		wantExtra int
	}{
		{1, 0, 0},
		{4, 3, 0},
		{5, 4, 1},
		{6, 4, 1},
		{7, 5, 1},
		{32768, 29, 13},
	}
	for _, c := range cases {
		require.Equal(t, c.wantSym, distSymbol(c.dist), "dist %d symbol", c.dist)
		require.Equal(t, c.wantExtra, distExtraBits(c.dist), "dist %d extra bits", c.dist)
	}
}

func TestDistSymbolBaseRoundTrip(t *testing.T) {
	for dist := 1; dist <= 32768; dist++ {
		sym := distSymbol(dist)
		base := distSymbolBase(sym)
		extra := distExtraBitsValue(dist)
		require.Equal(t, dist, base+extra, "dist %d: base %d + extra %d", dist, base, extra)
	}
}

func TestLengthSymbolRoundTrip(t *testing.T) {
	for length := minMatch; length <= maxMatch; length++ {
		sym := lengthSymbol(length)
		base := lengthCodeBase[sym-257]
		extra := lengthExtraBitsValue(length)
		require.Equal(t, length, base+extra, "length %d", length)
	}
}
