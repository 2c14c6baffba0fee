// Package align: sentinel error set.
// Every message is prefixed with "align: ". Errors coming from a Scorer are
// wrapped with cell context and keep their own sentinel for errors.Is.

package align

import "errors"

var (
	// ErrNilScorer indicates a nil scoring.Scorer was passed in.
	ErrNilScorer = errors.New("align: scorer is nil")

	// ErrBadOptions indicates an Options value failed validation.
	ErrBadOptions = errors.New("align: invalid options")

	// ErrBadPenalty indicates a NaN or ±Inf gap penalty.
	ErrBadPenalty = errors.New("align: gap penalty must be finite")

	// ErrBadScore indicates a Scorer returned NaN or ±Inf for some pair.
	ErrBadScore = errors.New("align: scorer returned a non-finite score")

	// ErrTooLarge indicates the score grid would exceed Options.MaxCells.
	ErrTooLarge = errors.New("align: score grid exceeds MaxCells")

	// ErrNotFilled indicates Score or Backtrace was called before any fill.
	ErrNotFilled = errors.New("align: grid has not been filled")

	// ErrNoDirections indicates Backtrace after FillScores, which does not
	// record directions.
	ErrNoDirections = errors.New("align: direction matrix not populated; use Fill")

	// ErrOutOfRange indicates a grid or direction index outside valid bounds.
	ErrOutOfRange = errors.New("align: index out of range")
)
