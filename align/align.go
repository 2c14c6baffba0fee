package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pairwise/scoring"
)

// Align computes the optimal global alignment score of seq1 against seq2 and
// returns every co-optimal alignment (up to opts.MaxAlignments).
// It is NewEngine + Fill + Backtrace in one call. A nil opts means
// DefaultOptions().
//
// Example:
//
//	res, err := align.Align("GAATTC", "GATTA", scoring.Globalxx(), 0, nil)
//	for _, a := range res.Alignments {
//	  fmt.Println(a.Sequence1)
//	  fmt.Println(a.Sequence2)
//	}
func Align(seq1, seq2 string, scorer scoring.Scorer, penalty float64, opts *Options) (Result, error) {
	e, err := NewEngine(seq1, seq2, opts)
	if err != nil {
		return Result{}, err
	}
	if err = e.Fill(scorer, penalty); err != nil {
		return Result{}, err
	}

	return e.Backtrace()
}

// ScoreOnly returns the optimal global alignment score without recording
// directions or keeping the full grid: it rolls two rows of len(seq2)+1
// cells. The value equals Engine.Score after Fill on the same inputs.
//
// opts.MaxCells is not applied since no grid is allocated, and the fill is
// always sequential.
//
// Complexity: O(len1·len2) time, O(len2) memory.
func ScoreOnly(seq1, seq2 string, scorer scoring.Scorer, penalty float64, opts *Options) (float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if scorer == nil {
		return 0, ErrNilScorer
	}
	if math.IsNaN(penalty) || math.IsInf(penalty, 0) {
		return 0, fmt.Errorf("%w: %v", ErrBadPenalty, penalty)
	}

	s1, s2 := []rune(seq1), []rune(seq2)
	m := len(s2)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = float64(j) * penalty
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = float64(i) * penalty
		for j := 1; j <= m; j++ {
			match, err := cellScore(scorer, s1[i-1], s2[j-1], i, j)
			if err != nil {
				return 0, err
			}
			curr[j] = max(prev[j-1]+match, prev[j]+penalty, curr[j-1]+penalty)
		}
		prev, curr = curr, prev
	}

	o.Logger.Debug("align: score-only done", "len1", len(s1), "len2", m, "score", prev[m])

	return prev[m], nil
}
