// Package pairwise is an in-memory toolkit for global pairwise sequence
// alignment: Needleman–Wunsch with a linear gap penalty, exact tie tracking
// and enumeration of every co-optimal alignment.
//
// What is in the box?
//
//	• scoring/ — pluggable symbol scorers: constant match/mismatch,
//	             substitution tables (also from YAML) and callbacks
//	• align/   — grid fill, multi-path backtrace, score-only mode and a
//	             column-block wavefront fill across goroutines
//	• cmd/pairwise — a small CLI over both packages
//
// Quick example:
//
//	res, _ := align.Align("ACTGTC", "ACGTGTC", scoring.NewConst(1, -1), -5, nil)
//
//	AC-TGTC
//	ACGTGTC
//	Alignment score: 1
//
// Ties are first-class: every cell keeps the full set of moves that reach
// its optimum, and the backtrace forks on each of them until the
// alignment cap (1000 by default) is reached.
//
//	go get github.com/katalvlaran/pairwise
package pairwise
