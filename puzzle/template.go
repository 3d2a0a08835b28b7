package puzzle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matchstick/equation"
	"github.com/katalvlaran/matchstick/symbol"
)

// Template describes a riddle shape: one symbol-class constraint per
// slot. Templates are immutable inputs; Generate expands them into the
// full cartesian candidate set.
type Template []symbol.Filter

// ParseTemplate reads the textual template form: whitespace-separated
// tokens, one per slot, each either a class name ("digit", "op", "any")
// or a literal symbol character ("=", "7").
//
//	ParseTemplate("digit op digit = digit")
//
// Returns ErrEmptyTemplate for a blank string and ErrBadToken for
// anything outside the token alphabet.
func ParseTemplate(s string) (Template, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, ErrEmptyTemplate
	}

	tpl := make(Template, 0, len(fields))
	for _, tok := range fields {
		switch tok {
		case "digit":
			tpl = append(tpl, symbol.Digits())
		case "op":
			tpl = append(tpl, symbol.Operators())
		case "any":
			tpl = append(tpl, symbol.Any())
		default:
			r := []rune(tok)
			if len(r) != 1 {
				return nil, fmt.Errorf("%w: %q", ErrBadToken, tok)
			}
			sym, err := symbol.FromRune(r[0])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadToken, tok)
			}
			tpl = append(tpl, symbol.OneOf(sym))
		}
	}

	return tpl, nil
}

// Matches reports whether eq has exactly the template's length and every
// symbol satisfies its slot's class constraint.
func (t Template) Matches(eq equation.Equation) bool {
	syms := eq.Symbols()
	if len(syms) != len(t) {
		return false
	}
	for i, f := range t {
		if !f.Matches(syms[i]) {
			return false
		}
	}

	return true
}

// validate resolves every slot's class to its symbol choices.
// A slot resolving to zero symbols is a caller-input mistake.
func (t Template) validate() ([][]symbol.Symbol, error) {
	if len(t) == 0 {
		return nil, ErrEmptyTemplate
	}
	choices := make([][]symbol.Symbol, len(t))
	for i, f := range t {
		syms := f.Symbols()
		if len(syms) == 0 {
			return nil, fmt.Errorf("%w: slot %d", ErrEmptyFilter, i)
		}
		choices[i] = syms
	}

	return choices, nil
}

// candidates walks the full cross product of the per-slot choices in
// odometer order (last slot fastest) and hands each starting layout to
// fn together with its expansion index. Intentionally exhaustive:
// templates are expected to be small.
func (t Template) candidates(choices [][]symbol.Symbol, fn func(idx int, l *equation.Layout) error) error {
	counters := make([]int, len(choices))
	syms := make([]symbol.Symbol, len(choices))
	for idx := 0; ; idx++ {
		for i, c := range counters {
			syms[i] = choices[i][c]
		}
		l, err := equation.New(syms...)
		if err != nil {
			return err
		}
		if err = fn(idx, l); err != nil {
			return err
		}
		// advance the odometer
		i := len(counters) - 1
		for i >= 0 {
			counters[i]++
			if counters[i] < len(choices[i]) {
				break
			}
			counters[i] = 0
			i--
		}
		if i < 0 {
			return nil
		}
	}
}
