// Package scoring: sentinel error set.
// Constructors and Score MUST return these sentinels (optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.

package scoring

import "errors"

var (
	// ErrUnknownSymbol is returned by Table.Score when either symbol is absent
	// from the table alphabet. It aborts any alignment that hits it.
	ErrUnknownSymbol = errors.New("scoring: unknown symbol")

	// ErrEmptyAlphabet indicates a table was built without any symbols.
	ErrEmptyAlphabet = errors.New("scoring: alphabet must be non-empty")

	// ErrDuplicateSymbol indicates the same symbol appears twice in an alphabet.
	ErrDuplicateSymbol = errors.New("scoring: duplicate symbol in alphabet")

	// ErrNonSquare indicates the score matrix is not n×n for an alphabet of n symbols.
	ErrNonSquare = errors.New("scoring: score matrix must be square and match alphabet size")

	// ErrIndexRange indicates an alphabet index that points outside the matrix.
	ErrIndexRange = errors.New("scoring: alphabet index out of range")

	// ErrNaNInf indicates a NaN or ±Inf value in a score matrix.
	ErrNaNInf = errors.New("scoring: NaN or Inf in score matrix")

	// ErrNilFunc indicates a Func scorer with no callback.
	ErrNilFunc = errors.New("scoring: nil score function")
)
