package align

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultMaxAlignments bounds how many co-optimal alignments one backtrace
// may emit (the same bound Bio.pairwise2 uses).
const DefaultMaxAlignments = 1000

// GapSymbol marks a gap in an aligned sequence.
const GapSymbol = '-'

// Direction is a single backtrace move out of a grid cell.
type Direction uint8

const (
	// Left consumes one symbol of seq2 against a gap.
	Left Direction = 1 << iota
	// Up consumes one symbol of seq1 against a gap.
	Up
	// Diag consumes one symbol of each sequence.
	Diag
)

// String returns the move name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "LEFT"
	case Up:
		return "UP"
	case Diag:
		return "DIAG"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// DirectionSet holds every move that attains a cell's optimal score.
// Ties are first-class: two or three moves may be present at once.
type DirectionSet uint8

// NewDirectionSet returns the set containing ds.
func NewDirectionSet(ds ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range ds {
		s = s.Add(d)
	}

	return s
}

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool { return s&DirectionSet(d) != 0 }

// Add returns the set with d included.
func (s DirectionSet) Add(d Direction) DirectionSet { return s | DirectionSet(d) }

// Without returns the set with d removed.
func (s DirectionSet) Without(d Direction) DirectionSet { return s &^ DirectionSet(d) }

// Empty reports whether no move is present.
func (s DirectionSet) Empty() bool { return s&(DirectionSet(Left|Up|Diag)) == 0 }

// Len returns the number of moves in the set.
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range [...]Direction{Left, Up, Diag} {
		if s.Has(d) {
			n++
		}
	}

	return n
}

// primary picks the move the current backtrace path continues with:
// LEFT first, then UP, otherwise DIAG.
func (s DirectionSet) primary() Direction {
	switch {
	case s.Has(Left):
		return Left
	case s.Has(Up):
		return Up
	default:
		return Diag
	}
}

// String renders the set as e.g. "{LEFT|DIAG}".
func (s DirectionSet) String() string {
	parts := make([]string, 0, 3)
	for _, d := range [...]Direction{Left, Up, Diag} {
		if s.Has(d) {
			parts = append(parts, d.String())
		}
	}

	return "{" + strings.Join(parts, "|") + "}"
}

// Alignment is one global alignment of seq1 against seq2.
// Sequence1 and Sequence2 have equal length and use GapSymbol for gaps.
// Begin is always 0 and End is always len(seq1) in runes.
type Alignment struct {
	Sequence1 string
	Sequence2 string
	Score     float64
	Begin     int
	End       int
}

// Result is the outcome of one backtrace.
// Truncated is true when more co-optimal alignments existed than
// Options.MaxAlignments allowed; Alignments then holds exactly that many.
type Result struct {
	Alignments []Alignment
	Score      float64
	Truncated  bool
}

// Options configures an alignment run.
//
// Fields:
//   - MaxAlignments — cap on emitted alignments; 0 means DefaultMaxAlignments.
//   - MaxCells      — refuse to allocate a grid with more cells; 0 means no limit.
//     Use CellCount to check sizes up front.
//   - Workers       — goroutines used by the Engine fill; 0 or 1 fills
//     sequentially. ScoreOnly always runs sequentially.
//   - Logger        — receives debug traces and the truncation warning;
//     nil discards everything.
//
// Example:
//
//	opts := align.DefaultOptions()
//	opts.Workers = 4
//	res, err := align.Align(a, b, scorer, -1, &opts)
type Options struct {
	MaxAlignments int
	MaxCells      uint64
	Workers       int
	Logger        *slog.Logger
}

// DefaultOptions returns sequential fill, the default alignment cap, no size
// limit and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxAlignments: DefaultMaxAlignments,
		Workers:       1,
	}
}

// Validate reports ErrBadOptions for negative MaxAlignments or Workers.
func (o *Options) Validate() error {
	if o.MaxAlignments < 0 {
		return fmt.Errorf("%w: MaxAlignments=%d", ErrBadOptions, o.MaxAlignments)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: Workers=%d", ErrBadOptions, o.Workers)
	}

	return nil
}

// resolve copies opts (or defaults), fills zero values and validates.
func resolve(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	if o.MaxAlignments == 0 {
		o.MaxAlignments = DefaultMaxAlignments
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o, nil
}
