package equation

import (
	"strings"

	"github.com/katalvlaran/matchstick/symbol"
)

// Equation is a validated matchstick equation: a symbol sequence that
// matched the grammar NUMBER OP NUMBER '=' NUMBER, with its operands
// already parsed. Equations are immutable once produced by Decode.
type Equation struct {
	syms []symbol.Symbol
	a, b int64
	c    int64
	op   symbol.Symbol
}

// Symbols returns a copy of the decoded symbol sequence.
func (e Equation) Symbols() []symbol.Symbol {
	syms := make([]symbol.Symbol, len(e.syms))
	copy(syms, e.syms)

	return syms
}

// String renders the equation, e.g. "12-5=7".
// Two equations are the same riddle answer iff their strings are equal.
func (e Equation) String() string {
	var sb strings.Builder
	sb.Grow(len(e.syms))
	for _, s := range e.syms {
		sb.WriteRune(s.Rune())
	}

	return sb.String()
}

// Operator returns the operator symbol, symbol.Plus or symbol.Minus.
func (e Equation) Operator() symbol.Symbol {
	return e.op
}

// Operands returns the three parsed numbers of "a OP b = c".
func (e Equation) Operands() (a, b, c int64) {
	return e.a, e.b, e.c
}

// IsTrue reports whether the equation holds: a OP b == c under exact
// integer arithmetic. A validated Equation is always evaluable.
func (e Equation) IsTrue() bool {
	if e.op == symbol.Plus {
		return e.a+e.b == e.c
	}

	return e.a-e.b == e.c
}
