// Package equation defines core types, options, and sentinel errors for
// matchstick equation layouts, validation, and truth evaluation.
package equation

import "errors"

// Sentinel errors for layout construction and decoding.
var (
	// ErrEmptyLayout indicates a layout with no slots.
	ErrEmptyLayout = errors.New("equation: layout must have at least one slot")
	// ErrUnsupportedRune indicates an input character outside the alphabet.
	ErrUnsupportedRune = errors.New("equation: unsupported character")
	// ErrUnknownSymbol indicates a slot whose pattern is no known glyph.
	ErrUnknownSymbol = errors.New("equation: slot decodes to no known symbol")
	// ErrMalformed indicates a symbol sequence that breaks the grammar.
	ErrMalformed = errors.New("equation: not of the form NUMBER OP NUMBER = NUMBER")
	// ErrLeadingZero indicates a multi-digit number starting with zero
	// while ForbidLeadingZeros is on.
	ErrLeadingZero = errors.New("equation: number has a leading zero")
	// ErrSlotRange indicates a slot index outside the layout.
	ErrSlotRange = errors.New("equation: slot index out of range")
)

// DecodeOptions configures Decode.
//
// Fields:
//   - AllowAlternateGlyphs — also accept the handwritten glyph variants
//     of 1, 4 and 8 (symbol.DecodeAny) when reading candidate slots.
//   - ForbidLeadingZeros   — reject numbers like "007". Off by default:
//     leading zeros are a rendering detail and do not change the value.
type DecodeOptions struct {
	AllowAlternateGlyphs bool
	ForbidLeadingZeros   bool
}

// DefaultDecodeOptions returns the default decode policy:
// canonical glyphs only, leading zeros permitted.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{}
}
