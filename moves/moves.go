package moves

import (
	"errors"

	"github.com/katalvlaran/matchstick/equation"
	"github.com/katalvlaran/matchstick/symbol"
)

// Occupied lists every occupied stick position of l in slot-major,
// segment-minor order.
func Occupied(l *equation.Layout) []Position {
	return positions(l, true)
}

// Unoccupied lists every vacant stick position of l in slot-major,
// segment-minor order.
func Unoccupied(l *equation.Layout) []Position {
	return positions(l, false)
}

// positions scans the layout for positions in the requested state.
func positions(l *equation.Layout, occupied bool) []Position {
	var out []Position
	for slot := 0; slot < l.Len(); slot++ {
		p, _ := l.Pattern(slot)
		for seg := symbol.SegTop; int(seg) < symbol.SegmentCount; seg++ {
			if p.Has(seg) == occupied {
				out = append(out, Position{Slot: slot, Seg: seg})
			}
		}
	}

	return out
}

// Count returns the number of candidates ForEach would yield for l and k:
// C(O,k) × C(U,k) over O occupied and U unoccupied positions.
// Returns 0 (and no error) when k exceeds O or U.
func Count(l *equation.Layout, k int) (uint64, error) {
	if l == nil {
		return 0, ErrNilLayout
	}
	if k < 1 {
		return 0, ErrMoveCount
	}
	occupied := l.StickCount()
	unoccupied := l.Len()*symbol.SegmentCount - occupied

	return binomial(occupied, k) * binomial(unoccupied, k), nil
}

// binomial computes C(n,k); 0 when k > n.
func binomial(n, k int) uint64 {
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	var c uint64 = 1
	for i := 1; i <= k; i++ {
		c = c * uint64(n-k+i) / uint64(i)
	}

	return c
}

// ForEach calls visit for every layout reachable from l by removing
// sticks at k distinct occupied positions and adding sticks at k
// distinct unoccupied positions. Each candidate is an independent copy;
// l itself is never modified.
//
// visit may return ErrStop to end the walk early without error; any
// other error aborts the walk and is returned as-is.
func ForEach(l *equation.Layout, k int, visit func(*equation.Layout) error) error {
	if l == nil {
		return ErrNilLayout
	}
	if k < 1 {
		return ErrMoveCount
	}

	occupied := Occupied(l)
	unoccupied := Unoccupied(l)
	if k > len(occupied) || k > len(unoccupied) {
		return nil // nothing to move, empty sequence
	}

	removal := make([]Position, k)
	addition := make([]Position, k)
	err := combinations(len(occupied), k, func(ri []int) error {
		for i, idx := range ri {
			removal[i] = occupied[idx]
		}

		return combinations(len(unoccupied), k, func(ai []int) error {
			for i, idx := range ai {
				addition[i] = unoccupied[idx]
			}

			return visit(apply(l, removal, addition))
		})
	})
	if errors.Is(err, ErrStop) {
		return nil
	}

	return err
}

// All collects every candidate of ForEach into a slice.
func All(l *equation.Layout, k int) ([]*equation.Layout, error) {
	var out []*equation.Layout
	err := ForEach(l, k, func(cand *equation.Layout) error {
		out = append(out, cand)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// apply clones l, vacates the removal positions and occupies the
// addition positions. The two sets are disjoint by construction, so the
// clone's stick count equals the source's.
func apply(l *equation.Layout, removal, addition []Position) *equation.Layout {
	cand := l.Clone()
	for _, pos := range removal {
		p, _ := cand.Pattern(pos.Slot)
		_ = cand.SetPattern(pos.Slot, p.Without(pos.Seg))
	}
	for _, pos := range addition {
		p, _ := cand.Pattern(pos.Slot)
		_ = cand.SetPattern(pos.Slot, p.With(pos.Seg))
	}

	return cand
}

// combinations calls fn with every strictly increasing index k-tuple
// drawn from 0..n-1, in lexicographic order. The index slice is reused
// between calls; fn must not retain it.
func combinations(n, k int, fn func(idx []int) error) error {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if err := fn(idx); err != nil {
			return err
		}
		// advance to the next lexicographic combination
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
