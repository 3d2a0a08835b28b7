package puzzle

import (
	"sort"
	"sync"

	"github.com/katalvlaran/matchstick/equation"
	"github.com/katalvlaran/matchstick/symbol"
)

// Generate expands tpl into every concrete starting layout, solves each
// with the given move count, and returns a Puzzle for every candidate
// whose solution count equals wantSolutions (0 is a legal target: "find
// riddles with no solution"). Under WithSolutionTemplate every solution
// must additionally match that template.
//
// The candidate set is the full cross product of the per-slot symbol
// choices — intentionally exhaustive, templates are expected to be
// small. Results come back in template-expansion order regardless of
// worker count. Returns ErrEmptyTemplate, ErrEmptyFilter, ErrMoveCount,
// ErrSolutionCount or ErrOptionViolation for invalid input, and the
// context's error if a WithContext caller cancels the sweep.
func Generate(tpl Template, k, wantSolutions int, opts ...Option) ([]Puzzle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if k < 1 {
		return nil, ErrMoveCount
	}
	if wantSolutions < 0 {
		return nil, ErrSolutionCount
	}
	choices, err := tpl.validate()
	if err != nil {
		return nil, err
	}

	if o.Workers > 1 {
		return generateParallel(tpl, choices, k, wantSolutions, o)
	}

	return generateSequential(tpl, choices, k, wantSolutions, o)
}

// generateSequential sweeps the candidate set on the calling goroutine.
func generateSequential(tpl Template, choices [][]symbol.Symbol, k, want int, o Options) ([]Puzzle, error) {
	var out []Puzzle
	err := tpl.candidates(choices, func(_ int, cand *equation.Layout) error {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		if pz, keep, err := examine(cand, k, want, o); err != nil {
			return err
		} else if keep {
			out = append(out, pz)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// generateParallel sweeps candidates on a worker pool. Workers keep
// index-tagged local results; the merge sorts by expansion index so the
// output order matches the sequential sweep.
func generateParallel(tpl Template, choices [][]symbol.Symbol, k, want int, o Options) ([]Puzzle, error) {
	type job struct {
		idx  int
		cand *equation.Layout
	}
	type hit struct {
		idx int
		pz  Puzzle
	}

	jobs := make(chan job, o.Workers)
	parts := make([][]hit, o.Workers)
	errs := make([]error, o.Workers)

	// Workers solve candidates sequentially; the pool parallelism lives
	// at the candidate level, not inside each solve.
	inner := o
	inner.Workers = 1

	var wg sync.WaitGroup
	for w := 0; w < o.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var local []hit
			for j := range jobs {
				pz, keep, err := examine(j.cand, k, want, inner)
				if err != nil {
					errs[w] = err

					return
				}
				if keep {
					local = append(local, hit{idx: j.idx, pz: pz})
				}
			}
			parts[w] = local
		}(w)
	}

	prodErr := tpl.candidates(choices, func(idx int, cand *equation.Layout) error {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		case jobs <- job{idx: idx, cand: cand}:
			return nil
		}
	})
	close(jobs)
	wg.Wait()

	if prodErr != nil {
		return nil, prodErr
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var hits []hit
	for _, part := range parts {
		hits = append(hits, part...)
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].idx < hits[j].idx })

	out := make([]Puzzle, len(hits))
	for i, h := range hits {
		out[i] = h.pz
	}

	return out, nil
}

// examine solves one candidate riddle and decides whether it qualifies.
func examine(cand *equation.Layout, k, want int, o Options) (Puzzle, bool, error) {
	sols, err := solve(cand, k, o)
	if err != nil {
		return Puzzle{}, false, err
	}
	if len(sols) != want {
		return Puzzle{}, false, nil
	}
	if o.SolutionTemplate != nil {
		for _, eq := range sols {
			if !o.SolutionTemplate.Matches(eq) {
				return Puzzle{}, false, nil
			}
		}
	}

	return Puzzle{
		Riddle:    Riddle{Start: cand, Moves: k},
		Solutions: sols,
	}, true, nil
}
