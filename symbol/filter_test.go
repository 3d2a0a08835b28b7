package symbol_test

import (
	"testing"

	"github.com/katalvlaran/matchstick/symbol"
	"github.com/stretchr/testify/assert"
)

// TestFilter_Digits verifies the digit class contains exactly 0..9.
func TestFilter_Digits(t *testing.T) {
	f := symbol.Digits()
	syms := f.Symbols()
	assert.Len(t, syms, 10, "ten digit symbols expected")
	for _, s := range syms {
		assert.True(t, s.IsDigit(), "%q must be a digit", s)
	}
	assert.False(t, f.Matches(symbol.Plus), "operators are not digits")
}

// TestFilter_Operators verifies the operator class is exactly {+, -, =}.
func TestFilter_Operators(t *testing.T) {
	f := symbol.Operators()
	assert.Equal(t, []symbol.Symbol{symbol.Plus, symbol.Minus, symbol.Equal}, f.Symbols())
	assert.True(t, f.Matches(symbol.Equal), "= counts as an operator")
	assert.False(t, f.Matches(symbol.Seven), "digits are not operators")
}

// TestFilter_Any verifies the unrestricted class covers the whole alphabet.
func TestFilter_Any(t *testing.T) {
	assert.Equal(t, symbol.All(), symbol.Any().Symbols(), "Any must cover the full alphabet")
}

// TestFilter_OneOf verifies explicit lists keep order and membership.
func TestFilter_OneOf(t *testing.T) {
	f := symbol.OneOf(symbol.Seven, symbol.One)
	assert.Equal(t, []symbol.Symbol{symbol.Seven, symbol.One}, f.Symbols())
	assert.True(t, f.Matches(symbol.One))
	assert.False(t, f.Matches(symbol.Two))
}

// TestFilter_OneOfEmpty verifies an empty list matches nothing.
func TestFilter_OneOfEmpty(t *testing.T) {
	f := symbol.OneOf()
	assert.Empty(t, f.Symbols(), "empty list resolves to no symbols")
	assert.False(t, f.Matches(symbol.Zero))
}
