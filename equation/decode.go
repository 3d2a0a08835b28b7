package equation

import (
	"github.com/katalvlaran/matchstick/symbol"
)

// Decode validates a Layout and returns its Equation.
//
// Stage one decodes every slot through the segment codec; a slot whose
// pattern is no known glyph fails with ErrUnknownSymbol. Stage two checks
// the symbol sequence against the grammar
//
//	NUMBER OP NUMBER '=' NUMBER
//
// where NUMBER is one or more digits and OP is '+' or '-'; any other
// shape fails with ErrMalformed. Under opts.ForbidLeadingZeros a
// multi-digit NUMBER starting with 0 fails with ErrLeadingZero.
//
// Callers running a search treat every error here as an ordinary
// negative result, not a failure.
func Decode(l *Layout, opts DecodeOptions) (Equation, error) {
	if l == nil || len(l.slots) == 0 {
		return Equation{}, ErrEmptyLayout
	}

	lookup := symbol.Decode
	if opts.AllowAlternateGlyphs {
		lookup = symbol.DecodeAny
	}

	syms := make([]symbol.Symbol, len(l.slots))
	for i, p := range l.slots {
		s, err := lookup(p)
		if err != nil {
			return Equation{}, ErrUnknownSymbol
		}
		syms[i] = s
	}

	return parse(syms, opts)
}

// parse checks the grammar and extracts the operands.
func parse(syms []symbol.Symbol, opts DecodeOptions) (Equation, error) {
	pos := 0

	a, err := number(syms, &pos, opts)
	if err != nil {
		return Equation{}, err
	}

	if pos >= len(syms) || (syms[pos] != symbol.Plus && syms[pos] != symbol.Minus) {
		return Equation{}, ErrMalformed
	}
	op := syms[pos]
	pos++

	b, err := number(syms, &pos, opts)
	if err != nil {
		return Equation{}, err
	}

	if pos >= len(syms) || syms[pos] != symbol.Equal {
		return Equation{}, ErrMalformed
	}
	pos++

	c, err := number(syms, &pos, opts)
	if err != nil {
		return Equation{}, err
	}

	// trailing garbage, a second operator or '=' included
	if pos != len(syms) {
		return Equation{}, ErrMalformed
	}

	return Equation{syms: syms, a: a, b: b, c: c, op: op}, nil
}

// number consumes one digit run starting at *pos and returns its value.
// Values are bounded by the slot count, so int64 is always wide enough.
func number(syms []symbol.Symbol, pos *int, opts DecodeOptions) (int64, error) {
	start := *pos
	var v int64
	for *pos < len(syms) && syms[*pos].IsDigit() {
		v = v*10 + int64(syms[*pos].Digit())
		*pos++
	}
	if *pos == start {
		return 0, ErrMalformed
	}
	if opts.ForbidLeadingZeros && *pos-start > 1 && syms[start] == symbol.Zero {
		return 0, ErrLeadingZero
	}

	return v, nil
}
