package symbol

// filterKind discriminates the Filter constructors.
type filterKind uint8

const (
	filterAny filterKind = iota
	filterDigits
	filterOperators
	filterList
)

// Filter is a symbol-class constraint for one equation slot: any symbol,
// digits only, operators only, or an explicit list. Filters are values;
// construct them with Any, Digits, Operators or OneOf.
type Filter struct {
	kind filterKind
	list []Symbol
}

// Any allows every Symbol.
func Any() Filter {
	return Filter{kind: filterAny}
}

// Digits allows the digit symbols 0..9.
func Digits() Filter {
	return Filter{kind: filterDigits}
}

// Operators allows the operator symbols '+', '-' and '='.
func Operators() Filter {
	return Filter{kind: filterOperators}
}

// OneOf allows exactly the listed symbols.
func OneOf(syms ...Symbol) Filter {
	list := make([]Symbol, len(syms))
	copy(list, syms)

	return Filter{kind: filterList, list: list}
}

// Matches reports whether s satisfies the filter.
func (f Filter) Matches(s Symbol) bool {
	switch f.kind {
	case filterAny:
		return true
	case filterDigits:
		return s.IsDigit()
	case filterOperators:
		return s.IsOperator()
	default:
		for _, allowed := range f.list {
			if allowed == s {
				return true
			}
		}

		return false
	}
}

// Symbols lists the allowed symbols in fixed enumeration order
// (explicit lists keep their given order).
func (f Filter) Symbols() []Symbol {
	if f.kind == filterList {
		list := make([]Symbol, len(f.list))
		copy(list, f.list)

		return list
	}

	var out []Symbol
	for _, s := range All() {
		if f.Matches(s) {
			out = append(out, s)
		}
	}

	return out
}
