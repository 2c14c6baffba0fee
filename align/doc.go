// Package align computes global (Needleman–Wunsch) alignments of two symbol
// sequences under a linear gap penalty, and enumerates every co-optimal
// alignment rather than a single arbitrary one.
//
// What does it do?
//
//	Given seq1, seq2, a scoring.Scorer and a gap penalty, align fills a
//	(len1+1)×(len2+1) score grid, records for every interior cell the full
//	set of moves (DIAG, UP, LEFT) that reach its optimum, and then walks
//	all of those moves back from the bottom-right corner.
//
// Key features:
//   - exact tie tracking: direction sets, not a single predecessor
//   - multi-path backtrace with a hard cap (DefaultMaxAlignments = 1000)
//     and an observable Truncated flag
//   - score-only mode on two rolling rows, O(len2) memory
//   - optional column-block wavefront fill across several goroutines
//   - size pre-validation through CellCount and Options.MaxCells
//
// Usage:
//
//	import (
//	  "github.com/katalvlaran/pairwise/align"
//	  "github.com/katalvlaran/pairwise/scoring"
//	)
//
//	res, err := align.Align("ACTGTC", "ACGTGTC", scoring.NewConst(1, -1), -5, nil)
//	// res.Score == 1
//	// res.Alignments[0].Sequence1 == "AC-TGTC"
//	// res.Alignments[0].Sequence2 == "ACGTGTC"
//
//	score, err := align.ScoreOnly("ACTGTC", "ACGTGTC", scoring.NewConst(1, -1), -5, nil)
//
// Performance:
//
//   - Time:   O(len1·len2) fill, plus O(k·(len1+len2)) for k alignments
//   - Memory: O(len1·len2) (Engine) or O(len2) (ScoreOnly)
//
// An Engine is not safe for concurrent use; run independent alignments on
// independent engines.
package align
