package equation

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/matchstick/symbol"
)

// Layout is the full sequence of symbol slots of an equation, each slot
// holding one mutable segment pattern. A Layout carries no symbol-level
// meaning of its own; Decode gives it one, or rejects it.
type Layout struct {
	slots []symbol.Pattern
}

// New builds a Layout whose slots hold the canonical patterns of the
// given symbols. Returns ErrEmptyLayout for an empty symbol list.
func New(syms ...symbol.Symbol) (*Layout, error) {
	if len(syms) == 0 {
		return nil, ErrEmptyLayout
	}
	slots := make([]symbol.Pattern, len(syms))
	for i, s := range syms {
		slots[i] = symbol.Encode(s)
	}

	return &Layout{slots: slots}, nil
}

// Parse builds a Layout from an equation string such as "5+3=7".
// Whitespace is layout sugar and is skipped; every other rune must be
// in the supported alphabet or Parse fails with ErrUnsupportedRune.
func Parse(s string) (*Layout, error) {
	var slots []symbol.Pattern
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		sym, err := symbol.FromRune(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedRune, r)
		}
		slots = append(slots, symbol.Encode(sym))
	}
	if len(slots) == 0 {
		return nil, ErrEmptyLayout
	}

	return &Layout{slots: slots}, nil
}

// Len returns the number of slots.
func (l *Layout) Len() int {
	return len(l.slots)
}

// Pattern returns the pattern of slot i.
// Returns the zero Pattern and ErrSlotRange when i is out of range.
func (l *Layout) Pattern(i int) (symbol.Pattern, error) {
	if i < 0 || i >= len(l.slots) {
		return 0, fmt.Errorf("%w: %d", ErrSlotRange, i)
	}

	return l.slots[i], nil
}

// SetPattern replaces the pattern of slot i.
// Returns ErrSlotRange when i is out of range.
func (l *Layout) SetPattern(i int, p symbol.Pattern) error {
	if i < 0 || i >= len(l.slots) {
		return fmt.Errorf("%w: %d", ErrSlotRange, i)
	}
	l.slots[i] = p

	return nil
}

// StickCount returns the total number of sticks across all slots.
// Move enumeration conserves this total for every candidate it yields.
func (l *Layout) StickCount() int {
	var n int
	for _, p := range l.slots {
		n += p.Count()
	}

	return n
}

// Clone returns an independent deep copy of the layout.
func (l *Layout) Clone() *Layout {
	slots := make([]symbol.Pattern, len(l.slots))
	copy(slots, l.slots)

	return &Layout{slots: slots}
}

// String renders the layout slot by slot through the codec, accepting
// alternate glyphs; a slot holding no known glyph renders as '?'.
// Unlike Decode this never fails: it is a display aid, not a validator.
func (l *Layout) String() string {
	out := make([]rune, len(l.slots))
	for i, p := range l.slots {
		s, err := symbol.DecodeAny(p)
		if err != nil {
			out[i] = '?'

			continue
		}
		out[i] = s.Rune()
	}

	return string(out)
}

// Equal reports whether both layouts hold identical patterns slot by slot.
func (l *Layout) Equal(other *Layout) bool {
	if other == nil || len(l.slots) != len(other.slots) {
		return false
	}
	for i, p := range l.slots {
		if other.slots[i] != p {
			return false
		}
	}

	return true
}
