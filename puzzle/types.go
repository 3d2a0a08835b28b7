// Package puzzle provides tunable options and error definitions for
// solving and generating matchstick riddles.
package puzzle

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/matchstick/equation"
)

// Sentinel errors for solving and generation.
var (
	// ErrNilLayout is returned if a nil starting layout is passed.
	ErrNilLayout = errors.New("puzzle: starting layout is nil")
	// ErrMoveCount is returned when the move count is not positive.
	ErrMoveCount = errors.New("puzzle: move count must be positive")
	// ErrSolutionCount is returned when the desired solution count is negative.
	ErrSolutionCount = errors.New("puzzle: desired solution count must be non-negative")
	// ErrEmptyTemplate is returned for a template with no slots.
	ErrEmptyTemplate = errors.New("puzzle: template must have at least one slot")
	// ErrEmptyFilter is returned when a template slot allows zero symbols.
	ErrEmptyFilter = errors.New("puzzle: template slot allows no symbols")
	// ErrBadToken is returned for an unrecognized template token.
	ErrBadToken = errors.New("puzzle: unrecognized template token")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("puzzle: invalid option supplied")
)

// Option configures Solve and Generate via functional arguments.
// An invalid Option (e.g. a non-positive worker count) is recorded
// internally and surfaced as ErrOptionViolation when the operation runs.
type Option func(*Options)

// Options holds parameters customizing a solve or generate run.
type Options struct {
	// Ctx allows cancellation of a long exhaustive search.
	Ctx context.Context

	// Workers is the number of goroutines evaluating candidates.
	// 1 (the default) runs fully sequentially.
	Workers int

	// Decode carries the candidate validation policy:
	// alternate glyph acceptance and the leading-zero rule.
	Decode equation.DecodeOptions

	// SolutionTemplate, when non-nil, additionally requires every
	// solution of a generated riddle to match it. Generate only.
	SolutionTemplate Template

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - sequential evaluation (Workers == 1)
//   - canonical glyphs only, leading zeros permitted
//   - no solution template.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		Decode:  equation.DefaultDecodeOptions(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers runs candidate evaluation on n parallel workers.
// n must be positive; n == 1 is the sequential default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithAlternateGlyphs accepts the handwritten glyph variants of 1, 4
// and 8 when validating candidates.
func WithAlternateGlyphs() Option {
	return func(o *Options) {
		o.Decode.AllowAlternateGlyphs = true
	}
}

// WithoutLeadingZeros rejects candidate numbers with leading zeros
// (e.g. "007"). The default permits them.
func WithoutLeadingZeros() Option {
	return func(o *Options) {
		o.Decode.ForbidLeadingZeros = true
	}
}

// WithSolutionTemplate requires every solution of a generated riddle to
// match t. Solve ignores this option.
func WithSolutionTemplate(t Template) Option {
	return func(o *Options) {
		o.SolutionTemplate = t
	}
}

// Riddle is a starting equation plus the number of sticks to move.
type Riddle struct {
	// Start is the riddle's starting layout.
	Start *equation.Layout
	// Moves is the exact number of sticks to relocate.
	Moves int
}

// Equation renders the starting layout, e.g. "2-7=3".
func (r Riddle) Equation() string {
	if r.Start == nil {
		return ""
	}

	return r.Start.String()
}

// Solve finds every true equation reachable from the riddle.
func (r Riddle) Solve(opts ...Option) ([]equation.Equation, error) {
	return Solve(r.Start, r.Moves, opts...)
}

// Puzzle pairs a generated Riddle with its full solution set.
// It is owned by the caller; the engine keeps no state across calls.
type Puzzle struct {
	Riddle    Riddle
	Solutions []equation.Equation
}
