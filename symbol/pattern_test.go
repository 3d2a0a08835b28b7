package symbol_test

import (
	"testing"

	"github.com/katalvlaran/matchstick/symbol"
	"github.com/stretchr/testify/assert"
)

// TestPattern_EmptyIsZero verifies the zero Pattern has no sticks.
func TestPattern_EmptyIsZero(t *testing.T) {
	var p symbol.Pattern
	assert.Equal(t, 0, p.Count(), "zero pattern must hold no sticks")
	assert.Empty(t, p.Segments(), "zero pattern must list no segments")
}

// TestPattern_WithHasWithout exercises membership, insert and remove.
func TestPattern_WithHasWithout(t *testing.T) {
	p := symbol.NewPattern(symbol.SegTop, symbol.SegPipe)

	assert.True(t, p.Has(symbol.SegTop), "top must be set")
	assert.True(t, p.Has(symbol.SegPipe), "pipe must be set")
	assert.False(t, p.Has(symbol.SegBottom), "bottom must be clear")
	assert.Equal(t, 2, p.Count(), "two sticks expected")

	q := p.Without(symbol.SegTop)
	assert.False(t, q.Has(symbol.SegTop), "top must be removed")
	assert.Equal(t, 1, q.Count(), "one stick left after removal")
	assert.Equal(t, 2, p.Count(), "Without must not mutate the receiver")

	r := q.With(symbol.SegTop)
	assert.Equal(t, p, r, "re-adding the removed segment restores the pattern")
}

// TestPattern_WithIsIdempotent verifies setting a set bit changes nothing.
func TestPattern_WithIsIdempotent(t *testing.T) {
	p := symbol.NewPattern(symbol.SegMiddleBeam)
	assert.Equal(t, p, p.With(symbol.SegMiddleBeam), "With on a set segment is a no-op")
}

// TestPattern_SegmentsOrder verifies Segments lists in fixed enum order.
func TestPattern_SegmentsOrder(t *testing.T) {
	p := symbol.NewPattern(symbol.SegBottom, symbol.SegTop, symbol.SegPipe)
	want := []symbol.Segment{symbol.SegTop, symbol.SegPipe, symbol.SegBottom}
	assert.Equal(t, want, p.Segments(), "segments must come out in enum order")
}

// TestSegment_String spot-checks segment names.
func TestSegment_String(t *testing.T) {
	assert.Equal(t, "top", symbol.SegTop.String())
	assert.Equal(t, "middle-beam", symbol.SegMiddleBeam.String())
	assert.Equal(t, "bottom", symbol.SegBottom.String())
}
