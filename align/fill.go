package align

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/pairwise/scoring"
)

// Needleman–Wunsch fill, linear gap penalty.
//
// Algorithm Outline:
//  1. Let n = len(seq1), m = len(seq2). G is the (n+1)×(m+1) score grid.
//  2. Initialize:
//     G[0][0] = 0
//     G[i][0] = i·penalty for i=1..n
//     G[0][j] = j·penalty for j=1..m
//  3. For i = 1..n, j = 1..m:
//     diag = G[i-1][j-1] + score(seq1[i-1], seq2[j-1])
//     up   = G[i-1][j]   + penalty
//     left = G[i][j-1]   + penalty
//     G[i][j] = max(diag, up, left)
//     D[i-1][j-1] = every move whose value == G[i][j]
//  4. score = G[n][m].
//
// Ties are detected with exact float equality. The penalty is added as given;
// pass a negative value to penalize gaps.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)

// maxLoggedCells bounds the grids dumped to the debug log.
const maxLoggedCells = 256

// fill validates inputs, initializes the boundary and dispatches to the
// sequential or wavefront filler.
func (e *Engine) fill(scorer scoring.Scorer, penalty float64, withDirs bool) error {
	e.filled, e.traced = false, false
	if scorer == nil {
		return ErrNilScorer
	}
	if math.IsNaN(penalty) || math.IsInf(penalty, 0) {
		return fmt.Errorf("%w: %v", ErrBadPenalty, penalty)
	}

	n, m := len(e.seq1), len(e.seq2)
	workers := min(e.opts.Workers, m)
	e.log.Debug("align: fill start",
		"len1", n, "len2", m, "penalty", penalty, "directions", withDirs, "workers", max(workers, 1))

	e.grid.initBoundary(penalty)

	var err error
	if workers > 1 && n > 0 {
		err = e.fillWavefront(scorer, penalty, withDirs, workers)
	} else {
		err = e.fillColumns(scorer, penalty, withDirs, 1, n, 1, m)
	}
	if err != nil {
		return err
	}

	e.filled, e.traced = true, withDirs
	e.log.Debug("align: fill done", "score", e.grid.at(n, m))
	if len(e.grid.data) <= maxLoggedCells && e.log.Enabled(context.Background(), slog.LevelDebug) {
		e.log.Debug("align: score grid", "grid", e.grid.String())
	}

	return nil
}

// fillColumns computes rows [rowLo, rowHi] restricted to columns [colLo, colHi].
// Cells to the left of colLo and above rowLo must already be final.
func (e *Engine) fillColumns(scorer scoring.Scorer, penalty float64, withDirs bool, rowLo, rowHi, colLo, colHi int) error {
	for i := rowLo; i <= rowHi; i++ {
		if err := e.fillRowSpan(scorer, penalty, withDirs, i, colLo, colHi); err != nil {
			return err
		}
	}

	return nil
}

// fillRowSpan computes grid cells (i, colLo..colHi).
func (e *Engine) fillRowSpan(scorer scoring.Scorer, penalty float64, withDirs bool, i, colLo, colHi int) error {
	g := e.grid
	a := e.seq1[i-1]
	for j := colLo; j <= colHi; j++ {
		match, err := cellScore(scorer, a, e.seq2[j-1], i, j)
		if err != nil {
			return err
		}
		diag := g.at(i-1, j-1) + match
		up := g.at(i-1, j) + penalty
		left := g.at(i, j-1) + penalty

		best := max(diag, up, left)
		g.set(i, j, best)
		if !withDirs {
			continue
		}

		var ds DirectionSet
		if diag == best {
			ds = ds.Add(Diag)
		}
		if up == best {
			ds = ds.Add(Up)
		}
		if left == best {
			ds = ds.Add(Left)
		}
		e.dirs.set(i-1, j-1, ds)
	}

	return nil
}

// cellScore asks the scorer for (a, b) and rejects non-finite answers.
func cellScore(scorer scoring.Scorer, a, b rune, i, j int) (float64, error) {
	s, err := scorer.Score(a, b)
	if err != nil {
		return 0, fmt.Errorf("cell (%d,%d): %w", i, j, err)
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, fmt.Errorf("%w: score(%q,%q)=%v", ErrBadScore, a, b, s)
	}

	return s, nil
}
