package puzzle

import (
	"sort"
	"sync"

	"github.com/katalvlaran/matchstick/equation"
	"github.com/katalvlaran/matchstick/moves"
)

// Solve returns every valid, mathematically true equation reachable from
// start by relocating exactly k sticks, deduplicated by decoded symbol
// sequence and sorted by rendered string.
//
// Candidates that decode to no symbol, break the grammar, or are false
// are silently filtered; an empty result is success with zero solutions.
// Returns ErrNilLayout, ErrMoveCount or ErrOptionViolation for invalid
// input, and the context's error if a WithContext caller cancels.
func Solve(start *equation.Layout, k int, opts ...Option) ([]equation.Equation, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start == nil {
		return nil, ErrNilLayout
	}
	if k < 1 {
		return nil, ErrMoveCount
	}

	return solve(start, k, o)
}

// solve runs the enumerate → validate → evaluate pipeline with options
// already validated. Generate reuses it per candidate riddle.
func solve(start *equation.Layout, k int, o Options) ([]equation.Equation, error) {
	var hits []equation.Equation
	var err error
	if o.Workers > 1 {
		hits, err = solveParallel(start, k, o)
	} else {
		hits, err = solveSequential(start, k, o)
	}
	if err != nil {
		return nil, err
	}

	return dedupeSorted(hits), nil
}

// solveSequential walks all candidates on the calling goroutine.
func solveSequential(start *equation.Layout, k int, o Options) ([]equation.Equation, error) {
	var hits []equation.Equation
	err := moves.ForEach(start, k, func(cand *equation.Layout) error {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		if eq, ok := evaluate(cand, o); ok {
			hits = append(hits, eq)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return hits, nil
}

// solveParallel fans candidates out to o.Workers goroutines. Each worker
// accumulates locally; partitions are merged afterwards, so there is no
// shared mutable state beyond the channels.
func solveParallel(start *equation.Layout, k int, o Options) ([]equation.Equation, error) {
	jobs := make(chan *equation.Layout, o.Workers)
	parts := make([][]equation.Equation, o.Workers)

	var wg sync.WaitGroup
	for w := 0; w < o.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var local []equation.Equation
			for cand := range jobs {
				if eq, ok := evaluate(cand, o); ok {
					local = append(local, eq)
				}
			}
			parts[w] = local
		}(w)
	}

	err := moves.ForEach(start, k, func(cand *equation.Layout) error {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		case jobs <- cand:
			return nil
		}
	})
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, err
	}

	var hits []equation.Equation
	for _, part := range parts {
		hits = append(hits, part...)
	}

	return hits, nil
}

// evaluate applies the validator and the truth check to one candidate.
// Every negative outcome is an ordinary filtered result.
func evaluate(cand *equation.Layout, o Options) (equation.Equation, bool) {
	eq, err := equation.Decode(cand, o.Decode)
	if err != nil || !eq.IsTrue() {
		return equation.Equation{}, false
	}

	return eq, true
}

// dedupeSorted collapses equations with identical symbol sequences and
// orders the survivors by rendered string. Two different stick moves
// producing the same visible equation count once.
func dedupeSorted(hits []equation.Equation) []equation.Equation {
	seen := make(map[string]struct{}, len(hits))
	out := hits[:0]
	for _, eq := range hits {
		key := eq.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, eq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}
