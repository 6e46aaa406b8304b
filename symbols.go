// SPDX-License-Identifier: GPL-2.0-only

package zopfli

import "math/bits"

// Length code table per RFC 1951 §3.2.5: 29 length codes (symbols 257..285),
// each covering a base length and a number of extra bits.
var lengthCodeBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10,
	11, 13, 15, 17,
	19, 23, 27, 31,
	35, 43, 51, 59,
	67, 83, 99, 115,
	131, 163, 195, 227,
	258,
}

var lengthCodeExtraBits = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1,
	2, 2, 2, 2,
	3, 3, 3, 3,
	4, 4, 4, 4,
	5, 5, 5, 5,
	0,
}

// Per-length lookup tables, indexed by length (valid range [minMatch,maxMatch]).
var (
	lengthSymbolTable     [maxMatch + 1]uint16
	lengthExtraBitsTable  [maxMatch + 1]uint8
	lengthExtraValueTable [maxMatch + 1]uint16
)

func init() {
	code := 0
	for length := minMatch; length <= maxMatch; length++ {
		for code+1 < len(lengthCodeBase) && lengthCodeBase[code+1] <= length {
			code++
		}
		lengthSymbolTable[length] = uint16(257 + code)
		lengthExtraBitsTable[length] = lengthCodeExtraBits[code]
		lengthExtraValueTable[length] = uint16(length - lengthCodeBase[code])
	}
}

// lengthSymbol maps a match length in [minMatch,maxMatch] to its DEFLATE
// literal/length symbol in [257,285].
func lengthSymbol(length int) int {
	return int(lengthSymbolTable[length])
}

// lengthExtraBits returns the number of extra bits following the length
// symbol for the given length.
func lengthExtraBits(length int) int {
	return int(lengthExtraBitsTable[length])
}

// lengthExtraBitsValue returns the extra-bits value (length minus the
// symbol's base length) for the given length.
func lengthExtraBitsValue(length int) int {
	return int(lengthExtraValueTable[length])
}

// distSymbol maps a match distance in [1,32768] to its DEFLATE distance
// symbol in [0,29], per RFC 1951 §3.2.5.
func distSymbol(dist int) int {
	if dist < 5 {
		return dist - 1
	}
	l := bits.Len32(uint32(dist-1)) - 1
	bit := (uint32(dist-1) >> uint(l-1)) & 1
	return 2*l + int(bit)
}

// distExtraBits returns the number of extra bits following the distance
// symbol for the given distance.
func distExtraBits(dist int) int {
	if dist < 5 {
		return 0
	}
	l := bits.Len32(uint32(dist-1)) - 1
	return l - 1
}

// distExtraBitsValue returns the extra-bits value for the given distance.
func distExtraBitsValue(dist int) int {
	if dist < 5 {
		return 0
	}
	base := distSymbolBase(distSymbol(dist))
	return dist - base
}

// distSymbolBase returns the smallest distance encoded by the given
// distance symbol.
func distSymbolBase(symbol int) int {
	if symbol < 4 {
		return symbol + 1
	}
	l := symbol / 2
	base := (1 << uint(l)) + 1
	if symbol%2 == 1 {
		base += 1 << uint(l-1)
	}
	return base
}

// distExtraBitsTable returns the extra-bit count for a distance symbol
// directly, rather than for a distance.
func distExtraBitsTable(symbol int) int {
	if symbol < 4 {
		return 0
	}
	return symbol/2 - 1
}
