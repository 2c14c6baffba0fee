package align

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pairwise/scoring"
)

// Engine owns two sequences together with their score grid and direction
// matrix. Typical use:
//
//	e, err := align.NewEngine(seq1, seq2, nil)
//	err = e.Fill(scorer, penalty)
//	res, err := e.Backtrace()
//
// An Engine is not safe for concurrent use.
type Engine struct {
	seq1, seq2 []rune
	grid       *grid
	dirs       *directionMatrix // nil until Fill; dropped by FillScores
	filled     bool
	traced     bool // last fill recorded directions
	opts       Options
	log        *slog.Logger
}

// NewEngine decodes both sequences into runes and allocates the
// (len1+1)×(len2+1) score grid. The direction matrix is allocated lazily by
// Fill, so FillScores never pays for it.
//
// Errors: ErrBadOptions, ErrTooLarge.
func NewEngine(seq1, seq2 string, opts *Options) (*Engine, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	s1, s2 := []rune(seq1), []rune(seq2)

	cells := CellCount(len(s1), len(s2))
	if o.MaxCells > 0 && cells > o.MaxCells {
		return nil, fmt.Errorf("%w: %d cells > %d", ErrTooLarge, cells, o.MaxCells)
	}

	return &Engine{
		seq1: s1,
		seq2: s2,
		grid: newGrid(len(s1)+1, len(s2)+1),
		opts: o,
		log:  o.Logger,
	}, nil
}

// Len1 returns the length of the first sequence in symbols.
func (e *Engine) Len1() int { return len(e.seq1) }

// Len2 returns the length of the second sequence in symbols.
func (e *Engine) Len2() int { return len(e.seq2) }

// Score returns the optimal global alignment score, grid[len1][len2].
func (e *Engine) Score() (float64, error) {
	if !e.filled {
		return 0, ErrNotFilled
	}

	return e.grid.at(len(e.seq1), len(e.seq2)), nil
}

// ScoreAt returns grid[i][j], the optimal score of seq1[:i] against seq2[:j].
// Valid ranges are 0 ≤ i ≤ len1 and 0 ≤ j ≤ len2.
func (e *Engine) ScoreAt(i, j int) (float64, error) {
	if !e.filled {
		return 0, ErrNotFilled
	}
	if i < 0 || i >= e.grid.rows || j < 0 || j >= e.grid.cols {
		return 0, fmt.Errorf("ScoreAt(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return e.grid.at(i, j), nil
}

// DirectionsAt returns the optimal moves out of interior grid cell (i, j),
// 1 ≤ i ≤ len1 and 1 ≤ j ≤ len2.
func (e *Engine) DirectionsAt(i, j int) (DirectionSet, error) {
	if !e.filled {
		return 0, ErrNotFilled
	}
	if !e.traced {
		return 0, ErrNoDirections
	}
	if i < 1 || i > len(e.seq1) || j < 1 || j > len(e.seq2) {
		return 0, fmt.Errorf("DirectionsAt(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return e.dirs.at(i-1, j-1), nil
}

// Fill runs the Needleman–Wunsch recurrence over the whole grid and records
// every optimal move per cell. Any error (including invalid arguments) leaves
// the engine unfilled, even if an earlier fill succeeded.
//
// Errors: ErrNilScorer, ErrBadPenalty, ErrBadScore, or the scorer's own error
// (e.g. scoring.ErrUnknownSymbol) wrapped with the failing cell.
func (e *Engine) Fill(scorer scoring.Scorer, penalty float64) error {
	if e.dirs == nil && len(e.seq1) > 0 && len(e.seq2) > 0 {
		e.dirs = newDirectionMatrix(len(e.seq1), len(e.seq2))
	}

	return e.fill(scorer, penalty, true)
}

// FillScores fills only the score grid. Ties are not recorded, so Backtrace
// afterwards fails with ErrNoDirections; Score and ScoreAt work as after Fill.
// Like Fill, a failure leaves the engine unfilled.
func (e *Engine) FillScores(scorer scoring.Scorer, penalty float64) error {
	e.dirs = nil

	return e.fill(scorer, penalty, false)
}
