package symbol_test

import (
	"testing"

	"github.com/katalvlaran/matchstick/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCodec_RoundTrip verifies decode(encode(s)) == s for every Symbol.
func TestCodec_RoundTrip(t *testing.T) {
	for _, s := range symbol.All() {
		got, err := symbol.Decode(symbol.Encode(s))
		require.NoError(t, err, "canonical pattern of %q must decode", s)
		assert.Equal(t, s, got, "round trip must preserve %q", s)
	}
}

// TestCodec_PatternsAreDistinct verifies the 13 canonical patterns form
// a bijection: no two symbols share a pattern.
func TestCodec_PatternsAreDistinct(t *testing.T) {
	seen := make(map[symbol.Pattern]symbol.Symbol, 13)
	for _, s := range symbol.All() {
		p := symbol.Encode(s)
		prev, dup := seen[p]
		assert.False(t, dup, "%q and %q must not share a pattern", prev, s)
		seen[p] = s
	}
	assert.Len(t, seen, 13, "expected thirteen distinct canonical patterns")
}

// TestCodec_StickCounts pins the stick count of a few well-known glyphs.
func TestCodec_StickCounts(t *testing.T) {
	cases := map[symbol.Symbol]int{
		symbol.Zero:  6,
		symbol.One:   2,
		symbol.Seven: 3,
		symbol.Eight: 7,
		symbol.Minus: 1,
		symbol.Plus:  2,
		symbol.Equal: 2,
	}
	for s, want := range cases {
		assert.Equal(t, want, symbol.Encode(s).Count(), "stick count of %q", s)
	}
}

// TestDecode_UnknownPattern verifies non-canonical patterns are rejected.
func TestDecode_UnknownPattern(t *testing.T) {
	// A lone pipe renders no symbol.
	_, err := symbol.Decode(symbol.NewPattern(symbol.SegPipe))
	assert.ErrorIs(t, err, symbol.ErrUnknownPattern, "lone pipe must be unknown")

	// Nine canonical glyph minus its top is no glyph either.
	p := symbol.Encode(symbol.Nine).Without(symbol.SegTop)
	_, err = symbol.Decode(p)
	assert.ErrorIs(t, err, symbol.ErrUnknownPattern, "mutilated nine must be unknown")
}

// TestDecodeAny_Alternates verifies the handwritten variants of 1, 4 and 8
// decode under DecodeAny but stay unknown under strict Decode.
func TestDecodeAny_Alternates(t *testing.T) {
	altOne := symbol.NewPattern(symbol.SegUpperLeft, symbol.SegLowerLeft)
	altFour := symbol.NewPattern(symbol.SegUpperLeft, symbol.SegMiddleBeam, symbol.SegPipe)
	altEight := symbol.NewPattern(symbol.SegTop, symbol.SegUpperLeft, symbol.SegUpperRight,
		symbol.SegUpperBeam, symbol.SegMiddleBeam)

	cases := map[symbol.Pattern]symbol.Symbol{
		altOne:   symbol.One,
		altFour:  symbol.Four,
		altEight: symbol.Eight,
	}
	for p, want := range cases {
		_, err := symbol.Decode(p)
		assert.ErrorIs(t, err, symbol.ErrUnknownPattern, "alternate of %q must fail strict decode", want)

		got, err := symbol.DecodeAny(p)
		assert.NoError(t, err, "alternate of %q must pass DecodeAny", want)
		assert.Equal(t, want, got, "alternate must decode to %q", want)
	}
}

// TestFromRune covers the full alphabet and one rejection.
func TestFromRune(t *testing.T) {
	for _, s := range symbol.All() {
		got, err := symbol.FromRune(s.Rune())
		require.NoError(t, err, "rune %q must parse", s.Rune())
		assert.Equal(t, s, got)
	}

	_, err := symbol.FromRune('x')
	assert.ErrorIs(t, err, symbol.ErrUnknownRune, "unsupported rune must error")
}
