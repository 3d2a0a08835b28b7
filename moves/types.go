// Package moves defines core types and sentinel errors for matchstick
// move enumeration.
package moves

import (
	"errors"

	"github.com/katalvlaran/matchstick/symbol"
)

// Sentinel errors for move enumeration.
var (
	// ErrNilLayout is returned if a nil layout pointer is passed.
	ErrNilLayout = errors.New("moves: layout is nil")
	// ErrMoveCount is returned when the move count is not positive.
	ErrMoveCount = errors.New("moves: move count must be positive")
	// ErrStop ends a ForEach walk early without surfacing an error.
	ErrStop = errors.New("moves: stop enumeration")
)

// Position addresses one stick position: segment Seg of slot Slot.
type Position struct {
	Slot int
	Seg  symbol.Segment
}
