package symbol

// glyphs holds the canonical Pattern for every Symbol, indexed by Symbol.
// These thirteen patterns are fixed domain constants; Decode is an
// exact match against this table and nothing else.
var glyphs = [symbolCount]Pattern{
	Zero:  NewPattern(SegTop, SegUpperLeft, SegUpperRight, SegLowerLeft, SegLowerRight, SegBottom),
	One:   NewPattern(SegUpperRight, SegLowerRight),
	Two:   NewPattern(SegTop, SegUpperRight, SegMiddleBeam, SegLowerLeft, SegBottom),
	Three: NewPattern(SegTop, SegUpperRight, SegMiddleBeam, SegLowerRight, SegBottom),
	Four:  NewPattern(SegUpperLeft, SegUpperRight, SegMiddleBeam, SegLowerRight),
	Five:  NewPattern(SegTop, SegUpperLeft, SegMiddleBeam, SegLowerRight, SegBottom),
	Six:   NewPattern(SegTop, SegUpperLeft, SegMiddleBeam, SegLowerLeft, SegLowerRight, SegBottom),
	Seven: NewPattern(SegTop, SegUpperRight, SegLowerRight),
	Eight: NewPattern(SegTop, SegUpperLeft, SegUpperRight, SegMiddleBeam, SegLowerLeft, SegLowerRight, SegBottom),
	Nine:  NewPattern(SegTop, SegUpperLeft, SegUpperRight, SegMiddleBeam, SegLowerRight, SegBottom),
	Plus:  NewPattern(SegMiddleBeam, SegPipe),
	Minus: NewPattern(SegMiddleBeam),
	Equal: NewPattern(SegMiddleBeam, SegUpperBeam),
}

// alternates maps the non-canonical glyph variants to their Symbol:
// a left-bar one, an open handwritten four, and a stacked eight.
// DecodeAny accepts them; Encode never emits them.
var alternates = map[Pattern]Symbol{
	NewPattern(SegUpperLeft, SegLowerLeft):                                       One,
	NewPattern(SegUpperLeft, SegMiddleBeam, SegPipe):                             Four,
	NewPattern(SegTop, SegUpperLeft, SegUpperRight, SegUpperBeam, SegMiddleBeam): Eight,
}

// Encode returns the canonical Pattern of s. Total: every Symbol has
// exactly one canonical Pattern.
func Encode(s Symbol) Pattern {
	return glyphs[s]
}

// Decode maps a Pattern back to its Symbol by exact match against the
// thirteen canonical glyphs. Returns ErrUnknownPattern otherwise.
func Decode(p Pattern) (Symbol, error) {
	for s, g := range glyphs {
		if g == p {
			return Symbol(s), nil
		}
	}

	return 0, ErrUnknownPattern
}

// DecodeAny maps a Pattern to its Symbol, accepting the alternate glyph
// variants of 1, 4 and 8 in addition to the canonical thirteen.
func DecodeAny(p Pattern) (Symbol, error) {
	if s, err := Decode(p); err == nil {
		return s, nil
	}
	if s, ok := alternates[p]; ok {
		return s, nil
	}

	return 0, ErrUnknownPattern
}
