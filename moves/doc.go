// Package moves enumerates every layout reachable from a source layout
// by relocating exactly k matchsticks.
//
// What
//
//   - Position: a (slot index, segment) pair addressing one stick
//     position anywhere in a layout. The enumerator is symbol-agnostic:
//     it moves bits across these positions and never inspects glyphs.
//   - ForEach: lazily yields every candidate obtained by vacating an
//     unordered set of k occupied positions and occupying an unordered
//     set of k unoccupied positions. The two choices are independent, so
//     a layout with O occupied and U unoccupied positions yields exactly
//     C(O,k) × C(U,k) candidates. Moves may cross slot boundaries: a
//     stick taken from one digit can land in another digit or operator.
//   - Count: the candidate total without enumerating.
//   - All: the eager slice form of ForEach.
//
// Why
//
//	The domain guarantees small bounded sizes (few slots, nine segments
//	per slot, small k), so exhaustive brute force is both intended and
//	cheap; no pruning may change the observable candidate set.
//
// Guarantees
//
//   - Stick conservation: every candidate's StickCount equals the
//     source's (k removed, k added).
//   - Isolation: every candidate is an independent deep copy; the
//     source layout is never mutated.
//   - Determinism: candidates come out in a fixed order derived from
//     position order (slot-major, segment-minor).
//   - Emptiness: k greater than O or U yields no candidates and no error.
//
// Early exit
//
//	The visitor may return ErrStop to end the walk without error; any
//	other error aborts the walk and propagates to the caller.
//
// Complexity
//
//	Time O(C(O,k) × C(U,k) × S) for S slots; memory O(S) per candidate.
//
// Errors
//
//   - ErrNilLayout  if the source layout is nil.
//   - ErrMoveCount  if k < 1.
package moves
