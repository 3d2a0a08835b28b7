// Package matchstick solves and generates matchstick riddles: equations
// rendered with matchstick digits and operators, where relocating a fixed
// number of sticks yields a new, mathematically true equation.
//
// 🚀 What is matchstick?
//
//	A pure-Go combinatorial engine that brings together:
//		• Segment codec: map symbols 0-9, +, -, = to stick-segment patterns
//		• Equation layouts: mutable per-slot patterns with stick accounting
//		• Move enumeration: every way to relocate k sticks across a layout
//		• Validation & truth: grammar check plus exact integer arithmetic
//		• Solver: all true equations reachable from a starting equation
//		• Generator: search equation templates for riddles with a target
//		  number of solutions
//
// ✨ Why choose matchstick?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always return identical result sets
//   - Pure Go – no cgo, no hidden deps
//   - Parallel-ready – opt-in worker pools with context cancellation
//
// Under the hood, everything is organized under four subpackages:
//
//	symbol/   — Symbol and Segment alphabets, Pattern bit sets, the codec
//	equation/ — Layout parsing, grammar validation, truth evaluation
//	moves/    — exhaustive k-stick move enumeration over a layout
//	puzzle/   — Solve (riddles) and Generate (riddle search) on top
//
// Quick ASCII example:
//
//	7 - 3 = 4   →   1 + 3 = 4
//
//	moving a single stick from the seven onto the minus turns a false
//	equation into a true one — the engine finds every such move.
//
// Dive into examples/ for runnable demos of both the solver and the
// riddle generator.
//
//	go get github.com/katalvlaran/matchstick
package matchstick
