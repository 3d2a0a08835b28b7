// Package symbol defines core types and sentinel errors for the
// matchstick alphabet: Segment positions, Pattern bit sets, and Symbols.
package symbol

import (
	"errors"
	"math/bits"
)

// Sentinel errors for codec operations.
var (
	// ErrUnknownPattern indicates a Pattern that matches no known glyph.
	ErrUnknownPattern = errors.New("symbol: pattern matches no known symbol")
	// ErrUnknownRune indicates a rune outside the supported alphabet.
	ErrUnknownRune = errors.New("symbol: rune outside supported alphabet")
)

// Segment identifies one of the nine addressable stick positions of a
// slot. The geometry is uniform across slots: any slot can in principle
// render any symbol.
type Segment uint8

const (
	// SegTop is the horizontal stick at the top.
	SegTop Segment = iota
	// SegUpperLeft is the vertical stick on the upper left.
	SegUpperLeft
	// SegUpperRight is the vertical stick on the upper right.
	SegUpperRight
	// SegUpperBeam is the horizontal stick above the middle (second bar of =).
	SegUpperBeam
	// SegMiddleBeam is the horizontal stick in the middle.
	SegMiddleBeam
	// SegPipe is the short vertical stick crossing the middle (stem of +).
	SegPipe
	// SegLowerLeft is the vertical stick on the lower left.
	SegLowerLeft
	// SegLowerRight is the vertical stick on the lower right.
	SegLowerRight
	// SegBottom is the horizontal stick at the bottom.
	SegBottom

	// SegmentCount is the number of addressable segment positions per slot.
	SegmentCount = int(SegBottom) + 1
)

// segmentNames holds human-readable names, indexed by Segment.
var segmentNames = [SegmentCount]string{
	"top", "upper-left", "upper-right", "upper-beam", "middle-beam",
	"pipe", "lower-left", "lower-right", "bottom",
}

// String returns the segment's human-readable name.
func (s Segment) String() string {
	if int(s) >= SegmentCount {
		return "invalid"
	}

	return segmentNames[s]
}

// Pattern is a fixed-width bit set of occupied Segment positions.
// Its cardinality equals the number of sticks used by the occupying glyph.
// The zero Pattern is an empty slot.
type Pattern uint16

// NewPattern builds a Pattern from the given segments.
func NewPattern(segs ...Segment) Pattern {
	var p Pattern
	for _, s := range segs {
		p = p.With(s)
	}

	return p
}

// Has reports whether segment s is occupied.
func (p Pattern) Has(s Segment) bool {
	return p&(1<<s) != 0
}

// With returns a copy of p with segment s occupied.
func (p Pattern) With(s Segment) Pattern {
	return p | (1 << s)
}

// Without returns a copy of p with segment s vacated.
func (p Pattern) Without(s Segment) Pattern {
	return p &^ (1 << s)
}

// Count returns the number of occupied segments (sticks).
func (p Pattern) Count() int {
	return bits.OnesCount16(uint16(p))
}

// Segments lists the occupied segments in fixed Segment order.
func (p Pattern) Segments() []Segment {
	segs := make([]Segment, 0, p.Count())
	for s := SegTop; int(s) < SegmentCount; s++ {
		if p.Has(s) {
			segs = append(segs, s)
		}
	}

	return segs
}
