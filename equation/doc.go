// Package equation provides the Layout (an ordered sequence of mutable
// segment patterns), the grammar validator, and the truth evaluator for
// matchstick equations.
//
// What
//
//   - Layout: ordered slots, each owning one symbol.Pattern. Built from
//     symbols (New) or from an equation string (Parse). Tracks its total
//     stick count and deep-copies on Clone so candidates never interfere.
//   - Decode: turns a Layout into a validated Equation, or rejects it.
//     Validation is two-staged: every slot must decode to a known symbol,
//     and the symbol sequence must match the grammar
//     NUMBER OP NUMBER '=' NUMBER with OP one of '+' or '-'.
//   - Equation: the validated, immutable result. IsTrue reports whether
//     the equation holds under exact integer arithmetic.
//
// Why
//
//	Separating the mutable stick-level Layout from the validated
//	symbol-level Equation lets move enumeration operate purely on bit
//	sets while solving and generation reason about decoded equations.
//
// Leading zeros
//
//	By default a digit run may carry leading zeros ("007" reads as 7);
//	DecodeOptions.ForbidLeadingZeros switches the stricter policy on.
//
// Errors
//
//   - ErrEmptyLayout      on constructing a layout with no slots.
//   - ErrUnsupportedRune  on parsing a character outside the alphabet.
//   - ErrUnknownSymbol    when a slot pattern is no known glyph.
//   - ErrMalformed        when the symbol sequence breaks the grammar.
//   - ErrLeadingZero      under ForbidLeadingZeros only.
//   - ErrSlotRange        on out-of-range slot access.
package equation
