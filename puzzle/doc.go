// Package puzzle composes the matchstick engine into its two top-level
// operations: Solve (find every true equation reachable from a starting
// equation) and Generate (search an equation template for riddles with a
// target number of solutions).
//
// What
//
//   - Solve drives moves.ForEach over a starting layout, validates each
//     candidate through equation.Decode, keeps the mathematically true
//     ones, and returns them deduplicated by symbol sequence and sorted
//     by rendered string.
//   - Template describes a riddle shape: one symbol.Filter per slot
//     (digit, op, any, or an explicit symbol). ParseTemplate reads the
//     textual token form ("digit op digit = digit").
//   - Generate expands a Template into its full cartesian candidate set,
//     solves every candidate, and keeps those whose solution count equals
//     the requested target — optionally requiring every solution to
//     match a second, solution-side Template.
//   - Riddle and Puzzle carry a generated starting equation and its
//     solution set back to the caller.
//
// Filtering vs. failure
//
//	Unknown symbols, malformed equations, false equations and wrong
//	solution counts are ordinary negative results folded into the
//	search. Only malformed input to the whole request — nil layout,
//	non-positive move count, bad template token, a slot class resolving
//	to zero symbols, negative solution target — is surfaced as an error,
//	before any search begins. An empty result set is success.
//
// Concurrency
//
//	Both operations are pure functions of their inputs. WithWorkers runs
//	candidate evaluation on a worker pool (each worker accumulates
//	locally, results are merged afterwards); WithContext installs a
//	cooperative early-exit signal. Results are identical and
//	deterministically ordered regardless of worker count.
//
// Usage
//
//	start, _ := equation.Parse("7-3=4")
//	sols, err := puzzle.Solve(start, 1)
//	// sols renders as ["1+3=4"]
//
//	tpl, _ := puzzle.ParseTemplate("digit op digit = digit")
//	riddles, err := puzzle.Generate(tpl, 1, 1, puzzle.WithWorkers(4))
//
// Errors
//
//   - ErrNilLayout        if the starting layout pointer is nil.
//   - ErrMoveCount        if the move count is not positive.
//   - ErrSolutionCount    if the desired solution count is negative.
//   - ErrEmptyTemplate    if a template has no slots.
//   - ErrEmptyFilter      if a template slot allows zero symbols.
//   - ErrBadToken         if a template token is not recognized.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - Context errors when the caller cancels a running search.
package puzzle
