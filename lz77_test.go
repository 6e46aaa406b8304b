// SPDX-License-Identifier: GPL-2.0-only

package zopfli

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func runGreedy(t *testing.T, input []byte) *lz77Store {
	t.Helper()
	h := newSlidingHash()
	cache := newMatchCache(len(input))
	store := newLZ77Store()
	lz77Greedy(h, cache, input, 0, len(input), store)
	return store
}

func TestLZ77TokenCoverage(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("aaaaaaaaaa"),
		[]byte("hello world"),
		[]byte("hello worldhello"),
		[]byte(repeat("abcabcabcabcabcabc", 20)),
	}
	for _, in := range inputs {
		store := runGreedy(t, in)
		covered := 0
		for i := 0; i < store.size(); i++ {
			if store.dists[i] == 0 {
				covered++
			} else {
				covered += int(store.litlens[i])
			}
		}
		require.Equal(t, len(in), covered, "input %q", in)
	}
}

// TestLZ77ProducesMatches guards against a tokenizer that silently falls
// back to an all-literal encoding: these inputs have an unmistakable
// repeat, per the spec's own concrete scenarios, so at least one dist>0
// token must appear.
func TestLZ77ProducesMatches(t *testing.T) {
	cases := map[string]string{
		"run":      "aaaaaaaaaa",
		"repeated": "hello worldhello",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			store := runGreedy(t, []byte(in))
			found := false
			for i := 0; i < store.size(); i++ {
				if store.dists[i] != 0 {
					found = true
					break
				}
			}
			require.True(t, found, "expected at least one match token for %q", in)
		})
	}
}

// TestLZ77RepeatedByteExactTokens pins down the tokenizer's output for the
// spec's literal "aaaaaaaaaa" scenario: a leading literal 'a' followed by
// one match of length 9 at distance 1.
func TestLZ77RepeatedByteExactTokens(t *testing.T) {
	store := runGreedy(t, []byte("aaaaaaaaaa"))
	require.Equal(t, 2, store.size())
	require.Equal(t, uint16(0), store.dists[0])
	require.Equal(t, uint16('a'), store.litlens[0])
	require.Equal(t, uint16(1), store.dists[1])
	require.Equal(t, uint16(9), store.litlens[1])
}

func TestLZ77MatchValidity(t *testing.T) {
	in := []byte(repeat("the quick brown fox jumps over the lazy dog. ", 30))
	store := runGreedy(t, in)

	for i := 0; i < store.size(); i++ {
		dist := int(store.dists[i])
		if dist == 0 {
			continue
		}
		length := int(store.litlens[i])
		pos := store.pos[i]

		require.GreaterOrEqual(t, length, minMatch)
		require.LessOrEqual(t, length, maxMatch)
		require.GreaterOrEqual(t, dist, 1)
		require.LessOrEqual(t, dist, pos)
		require.LessOrEqual(t, dist, windowSize)

		for k := 0; k < length; k++ {
			require.Equal(t, in[pos-dist+k], in[pos+k], "token at pos %d offset %d", pos, k)
		}
	}
}

func TestLZ77RandomDataNoPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	in := make([]byte, 5000)
	rng.Read(in)
	store := runGreedy(t, in)
	require.Greater(t, store.size(), 0)
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
