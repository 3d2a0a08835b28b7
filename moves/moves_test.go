package moves_test

import (
	"testing"

	"github.com/katalvlaran/matchstick/equation"
	"github.com/katalvlaran/matchstick/moves"
	"github.com/katalvlaran/matchstick/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse builds a layout or fails the test.
func mustParse(t *testing.T, s string) *equation.Layout {
	t.Helper()
	l, err := equation.Parse(s)
	require.NoError(t, err, "parse %q", s)

	return l
}

// TestForEach_InvalidInput verifies nil layouts and bad counts error.
func TestForEach_InvalidInput(t *testing.T) {
	err := moves.ForEach(nil, 1, func(*equation.Layout) error { return nil })
	assert.ErrorIs(t, err, moves.ErrNilLayout)

	l := mustParse(t, "1+1=2")
	err = moves.ForEach(l, 0, func(*equation.Layout) error { return nil })
	assert.ErrorIs(t, err, moves.ErrMoveCount)

	_, err = moves.Count(l, -3)
	assert.ErrorIs(t, err, moves.ErrMoveCount)
}

// TestForEach_CandidateTotal verifies the C(O,k) × C(U,k) census for a
// known layout: "7-3=4" holds 15 sticks over 5×9 = 45 positions.
func TestForEach_CandidateTotal(t *testing.T) {
	l := mustParse(t, "7-3=4")
	require.Equal(t, 15, l.StickCount())

	want, err := moves.Count(l, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(15*30), want, "15 occupied × 30 unoccupied")

	var got uint64
	err = moves.ForEach(l, 1, func(*equation.Layout) error {
		got++

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, want, got, "enumeration must match the census")
}

// TestForEach_SticksConserved verifies every candidate keeps the source's
// stick total and never aliases the source.
func TestForEach_SticksConserved(t *testing.T) {
	l := mustParse(t, "5+3=7")
	total := l.StickCount()

	err := moves.ForEach(l, 2, func(cand *equation.Layout) error {
		assert.Equal(t, total, cand.StickCount(), "stick count must be conserved")
		assert.False(t, cand.Equal(l), "a candidate always differs from the source")

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, total, l.StickCount(), "source must be untouched")
}

// TestForEach_EmptyWhenCountTooLarge verifies k beyond the occupied or
// unoccupied supply yields an empty sequence, not an error.
func TestForEach_EmptyWhenCountTooLarge(t *testing.T) {
	// A single minus slot: 1 occupied, 8 unoccupied.
	l, err := equation.New(symbol.Minus)
	require.NoError(t, err)

	var calls int
	err = moves.ForEach(l, 2, func(*equation.Layout) error {
		calls++

		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls, "k=2 exceeds the single occupied position")

	n, err := moves.Count(l, 2)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestForEach_Stop verifies ErrStop ends the walk silently while other
// visitor errors propagate.
func TestForEach_Stop(t *testing.T) {
	l := mustParse(t, "1+1=2")

	var calls int
	err := moves.ForEach(l, 1, func(*equation.Layout) error {
		calls++

		return moves.ErrStop
	})
	require.NoError(t, err, "ErrStop must be swallowed")
	assert.Equal(t, 1, calls, "walk must end after the first candidate")

	boom := assert.AnError
	err = moves.ForEach(l, 1, func(*equation.Layout) error { return boom })
	assert.ErrorIs(t, err, boom, "visitor errors must propagate")
}

// TestForEach_Deterministic verifies two walks agree candidate by candidate.
func TestForEach_Deterministic(t *testing.T) {
	l := mustParse(t, "2-7=3")

	first, err := moves.All(l, 1)
	require.NoError(t, err)
	second, err := moves.All(l, 1)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]), "candidate %d must match across walks", i)
	}
}

// TestForEach_FindsKnownTransform verifies the classic single move:
// "7-3=4" can reach the layout of "1+3=4".
func TestForEach_FindsKnownTransform(t *testing.T) {
	l := mustParse(t, "7-3=4")
	target := mustParse(t, "1+3=4")

	var found bool
	err := moves.ForEach(l, 1, func(cand *equation.Layout) error {
		if cand.Equal(target) {
			found = true

			return moves.ErrStop
		}

		return nil
	})
	require.NoError(t, err)
	assert.True(t, found, "moving the seven's top stick onto the minus must appear")
}

// TestOccupied_Unoccupied verifies the position inventories partition the grid.
func TestOccupied_Unoccupied(t *testing.T) {
	l := mustParse(t, "8+8=0")

	occ := moves.Occupied(l)
	un := moves.Unoccupied(l)
	assert.Len(t, occ, l.StickCount())
	assert.Equal(t, l.Len()*symbol.SegmentCount, len(occ)+len(un), "inventories must partition all positions")
}
