package symbol

import "fmt"

// Symbol is one member of the closed matchstick alphabet:
// the digits 0..9 and the operators '+', '-', '='.
type Symbol uint8

const (
	// Zero through Nine are the decimal digits; Symbol(d) == digit d.
	Zero Symbol = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	// Plus is the addition operator.
	Plus
	// Minus is the subtraction operator.
	Minus
	// Equal is the equality sign.
	Equal

	symbolCount = int(Equal) + 1
)

// symbolRunes holds the textual rendering, indexed by Symbol.
var symbolRunes = [symbolCount]rune{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '-', '=',
}

// All lists every Symbol in fixed order: 0..9, +, -, =.
func All() []Symbol {
	all := make([]Symbol, symbolCount)
	for i := range all {
		all[i] = Symbol(i)
	}

	return all
}

// FromRune maps a character of the supported alphabet to its Symbol.
// Returns ErrUnknownRune for anything else.
func FromRune(r rune) (Symbol, error) {
	for i, sr := range symbolRunes {
		if sr == r {
			return Symbol(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownRune, r)
}

// Rune returns the textual rendering of s.
func (s Symbol) Rune() rune {
	if int(s) >= symbolCount {
		return '?'
	}

	return symbolRunes[s]
}

// String returns the textual rendering of s.
func (s Symbol) String() string {
	return string(s.Rune())
}

// IsDigit reports whether s is one of 0..9.
func (s Symbol) IsDigit() bool {
	return s <= Nine
}

// IsOperator reports whether s is '+', '-' or '='.
func (s Symbol) IsOperator() bool {
	return s == Plus || s == Minus || s == Equal
}

// Digit returns the numeric value of a digit symbol.
// The result is meaningless for operators; guard with IsDigit.
func (s Symbol) Digit() int {
	return int(s)
}
