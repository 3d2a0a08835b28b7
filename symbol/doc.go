// Package symbol provides the matchstick alphabet: the closed set of
// Symbols (digits 0-9 and the operators +, -, =), the nine addressable
// Segment positions shared by every slot, the Pattern bit set over those
// segments, and the codec between Symbols and their canonical Patterns.
//
// What
//
//   - Segment: closed enumeration of the nine stick positions of a slot,
//     a superset of the classic seven-segment display (an extra upper
//     beam and a vertical pipe render = and +).
//   - Pattern: fixed-width bit set over Segment with membership, insert,
//     remove, cardinality, and listing operations.
//   - Symbol: one of 0..9, '+', '-', '='. Every Symbol has exactly one
//     canonical Pattern; Encode is total, Decode is exact-match only.
//   - Alternate glyphs: the digits 1, 4 and 8 have a second, handwritten
//     rendering each. DecodeAny recognizes them in addition to the
//     canonical thirteen; Encode never produces them.
//   - Filter: a symbol-class constraint (any, digits, operators, or an
//     explicit list) used to describe template slots.
//
// Why
//
//	The codec is the sole authority for "is this arrangement of sticks a
//	real symbol". Keeping geometry in a shared Segment enumeration lets
//	move enumeration stay symbol-agnostic: it moves bits, not digits.
//
// Determinism
//
//	All(), Digits() and Operators() list symbols in a fixed order
//	(0..9, +, -, =), so every consumer that expands symbol classes
//	enumerates candidates reproducibly.
//
// Errors
//
//   - ErrUnknownPattern  if a Pattern matches no known glyph.
//   - ErrUnknownRune     if a rune is outside the supported alphabet.
package symbol
