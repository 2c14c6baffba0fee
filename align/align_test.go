package align_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/pairwise/align"
	"github.com/katalvlaran/pairwise/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ungap removes every gap symbol from s.
func ungap(s string) string {
	return strings.ReplaceAll(s, string(align.GapSymbol), "")
}

// columnScore recomputes an alignment's score column by column.
func columnScore(t *testing.T, a align.Alignment, sc scoring.Scorer, penalty float64) float64 {
	t.Helper()
	r1, r2 := []rune(a.Sequence1), []rune(a.Sequence2)
	require.Len(t, r2, len(r1))
	total := 0.0
	for k := range r1 {
		if r1[k] == align.GapSymbol || r2[k] == align.GapSymbol {
			total += penalty
			continue
		}
		s, err := sc.Score(r1[k], r2[k])
		require.NoError(t, err)
		total += s
	}

	return total
}

// TestAlign_Golden reproduces the reference sample run.
func TestAlign_Golden(t *testing.T) {
	res, err := align.Align("ACTGTC", "ACGTGTC", scoring.NewConst(1, -1), -5, nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Score)
	assert.False(t, res.Truncated)
	require.Len(t, res.Alignments, 1)
	assert.Equal(t, align.Alignment{
		Sequence1: "AC-TGTC",
		Sequence2: "ACGTGTC",
		Score:     1,
		Begin:     0,
		End:       6,
	}, res.Alignments[0])
}

// TestAlign_Globalxx enumerates all co-optimal alignments in backtrace order.
func TestAlign_Globalxx(t *testing.T) {
	res, err := align.Align("GAATTC", "GATTA", scoring.Globalxx(), 0, nil)
	require.NoError(t, err)

	assert.Equal(t, 4.0, res.Score)
	got := make([][2]string, 0, len(res.Alignments))
	for _, a := range res.Alignments {
		got = append(got, [2]string{a.Sequence1, a.Sequence2})
	}
	assert.Equal(t, [][2]string{
		{"GAATTC-", "GA-TT-A"},
		{"GAATT-C", "GA-TTA-"},
		{"GAATTC-", "G-ATT-A"},
		{"GAATTC", "GA-TTA"},
		{"GAATT-C", "G-ATTA-"},
		{"GAATTC", "G-ATTA"},
	}, got)
}

// TestAlign_BothEmpty returns no alignments but still a zero score.
func TestAlign_BothEmpty(t *testing.T) {
	res, err := align.Align("", "", scoring.NewConst(1, -1), -1, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Alignments)
	assert.Equal(t, 0.0, res.Score)
	assert.False(t, res.Truncated)
}

// TestAlign_OneEmpty aligns against an empty sequence with all gaps.
func TestAlign_OneEmpty(t *testing.T) {
	p := -2.5
	res, err := align.Align("", "AC", scoring.NewConst(1, -1), p, nil)
	require.NoError(t, err)
	require.Len(t, res.Alignments, 1)
	assert.Equal(t, "--", res.Alignments[0].Sequence1)
	assert.Equal(t, "AC", res.Alignments[0].Sequence2)
	assert.Equal(t, 2*p, res.Alignments[0].Score)
	assert.Equal(t, 0, res.Alignments[0].End)

	res, err = align.Align("AC", "", scoring.NewConst(1, -1), p, nil)
	require.NoError(t, err)
	require.Len(t, res.Alignments, 1)
	assert.Equal(t, "AC", res.Alignments[0].Sequence1)
	assert.Equal(t, "--", res.Alignments[0].Sequence2)
	assert.Equal(t, 2, res.Alignments[0].End)
}

// TestAlign_Identity aligns a sequence with itself for several mismatch values.
func TestAlign_Identity(t *testing.T) {
	seq := "GATTACA"
	for _, mismatch := range []float64{-3, -1, 0} {
		res, err := align.Align(seq, seq, scoring.NewConst(2, mismatch), -1, nil)
		require.NoError(t, err)
		assert.Equal(t, float64(2*len(seq)), res.Score, "mismatch=%v", mismatch)

		found := false
		for _, a := range res.Alignments {
			if a.Sequence1 == seq && a.Sequence2 == seq {
				found = true
			}
		}
		assert.True(t, found, "ungapped self-alignment expected, mismatch=%v", mismatch)
	}
}

// TestAlign_ThreeWayTie checks that DIAG, UP and LEFT are all enumerated
// when they reach the same score at a 1×1 cell.
func TestAlign_ThreeWayTie(t *testing.T) {
	want := [][2]string{{"A-", "-B"}, {"-A", "B-"}, {"A", "B"}}

	cases := []struct {
		name    string
		scorer  scoring.Const
		penalty float64
	}{
		{"zero scores", scoring.NewConst(0, 0), 0},
		{"unit scores", scoring.NewConst(1, 1), 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := align.Align("A", "B", tc.scorer, tc.penalty, nil)
			require.NoError(t, err)
			require.Len(t, res.Alignments, 3)
			for k, a := range res.Alignments {
				assert.Equal(t, want[k][0], a.Sequence1)
				assert.Equal(t, want[k][1], a.Sequence2)
			}
		})
	}

	// Equal match/mismatch with a free gap makes DIAG strictly better at 1×1.
	res, err := align.Align("A", "B", scoring.NewConst(1, 1), 0, nil)
	require.NoError(t, err)
	assert.Len(t, res.Alignments, 1)
}

// TestAlign_AllTiesCount compares against the Delannoy number D(4,3) = 129,
// the number of lattice paths with unit, right and diagonal steps.
func TestAlign_AllTiesCount(t *testing.T) {
	res, err := align.Align("AAAA", "AAA", scoring.NewConst(0, 0), 0, nil)
	require.NoError(t, err)
	assert.Len(t, res.Alignments, 129)
	assert.False(t, res.Truncated)

	seen := make(map[[2]string]bool, len(res.Alignments))
	for _, a := range res.Alignments {
		key := [2]string{a.Sequence1, a.Sequence2}
		assert.False(t, seen[key], "duplicate alignment %v", key)
		seen[key] = true
	}
}

// TestAlign_Truncation hits the default cap on a tie-heavy input and checks
// the warning is logged.
func TestAlign_Truncation(t *testing.T) {
	var buf bytes.Buffer
	opts := align.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	seq := strings.Repeat("A", 15)
	res, err := align.Align(seq, seq, scoring.NewConst(0, 0), 0, &opts)
	require.NoError(t, err)
	assert.Len(t, res.Alignments, align.DefaultMaxAlignments)
	assert.True(t, res.Truncated)
	assert.Contains(t, buf.String(), "alignment cap reached")

	for _, a := range res.Alignments {
		assert.Equal(t, seq, ungap(a.Sequence1))
		assert.Equal(t, seq, ungap(a.Sequence2))
	}
}

// TestAlign_CustomCap keeps the first paths in pool order.
func TestAlign_CustomCap(t *testing.T) {
	opts := align.DefaultOptions()
	opts.MaxAlignments = 5

	res, err := align.Align("AAAA", "AAA", scoring.NewConst(0, 0), 0, &opts)
	require.NoError(t, err)
	require.Len(t, res.Alignments, 5)
	assert.True(t, res.Truncated)
	assert.Equal(t, "AAAA---", res.Alignments[0].Sequence1)
	assert.Equal(t, "----AAA", res.Alignments[0].Sequence2)
	assert.Equal(t, "AAA--A", res.Alignments[4].Sequence1)
	assert.Equal(t, "---AAA", res.Alignments[4].Sequence2)

	// A cap that is exactly met is not a truncation.
	opts.MaxAlignments = 3
	res, err = align.Align("A", "B", scoring.NewConst(0, 0), 0, &opts)
	require.NoError(t, err)
	assert.Len(t, res.Alignments, 3)
	assert.False(t, res.Truncated)
}

// TestAlign_RoundTrip checks ungapping, equal lengths, score consistency and
// ScoreOnly agreement over a batch of inputs.
func TestAlign_RoundTrip(t *testing.T) {
	table, err := scoring.NewTable("ACGT", [][]float64{
		{5, -4, -4, -4},
		{-4, 5, -4, -4},
		{-4, -4, 5, -4},
		{-4, -4, -4, 5},
	})
	require.NoError(t, err)
	transition := scoring.Func(func(a, b rune) float64 {
		switch {
		case a == b:
			return 2
		case strings.ContainsRune("AG", a) == strings.ContainsRune("AG", b):
			return -1
		default:
			return -2
		}
	})

	scorers := map[string]scoring.Scorer{
		"const":    scoring.NewConst(1, -1),
		"globalxx": scoring.Globalxx(),
		"table":    table,
		"func":     transition,
	}
	pairs := [][2]string{
		{"ACTGTC", "ACGTGTC"},
		{"GATTACA", "GCATGCT"},
		{"AAAA", "AA"},
		{"ACGT", "TGCA"},
		{"A", "ACGTACGT"},
		{"CCCC", ""},
		{"TTAGGC", "TAGC"},
	}
	for name, sc := range scorers {
		for _, penalty := range []float64{0, -1, -3} {
			for _, pr := range pairs {
				res, err := align.Align(pr[0], pr[1], sc, penalty, nil)
				require.NoError(t, err, "%s %v", name, pr)
				only, err := align.ScoreOnly(pr[0], pr[1], sc, penalty, nil)
				require.NoError(t, err)
				assert.Equal(t, only, res.Score, "%s %v p=%v", name, pr, penalty)

				require.NotEmpty(t, res.Alignments)
				for _, a := range res.Alignments {
					assert.Equal(t, len([]rune(a.Sequence1)), len([]rune(a.Sequence2)))
					assert.Equal(t, pr[0], ungap(a.Sequence1))
					assert.Equal(t, pr[1], ungap(a.Sequence2))
					assert.Equal(t, res.Score, a.Score)
					assert.Equal(t, 0, a.Begin)
					assert.Equal(t, len(pr[0]), a.End)
					assert.InDelta(t, res.Score, columnScore(t, a, sc, penalty), 1e-9)
				}
			}
		}
	}
}

// TestAlign_Runes treats multi-byte symbols as single positions.
func TestAlign_Runes(t *testing.T) {
	res, err := align.Align("héllo", "hello", scoring.NewConst(1, -1), -1, nil)
	require.NoError(t, err)
	require.Len(t, res.Alignments, 1)
	assert.Equal(t, 3.0, res.Score)
	assert.Equal(t, "héllo", res.Alignments[0].Sequence1)
	assert.Equal(t, 5, res.Alignments[0].End)
}

// TestAlign_UnknownSymbolAborts propagates the table lookup failure.
func TestAlign_UnknownSymbolAborts(t *testing.T) {
	table, err := scoring.NewTable("AC", [][]float64{{1, -1}, {-1, 1}})
	require.NoError(t, err)

	res, err := align.Align("ACX", "AC", table, -1, nil)
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
	assert.Empty(t, res.Alignments)

	_, err = align.ScoreOnly("AC", "AXC", table, -1, nil)
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
}

// TestAlign_InputErrors covers nil scorer, penalties and scorer output.
func TestAlign_InputErrors(t *testing.T) {
	_, err := align.Align("A", "A", nil, -1, nil)
	assert.ErrorIs(t, err, align.ErrNilScorer)
	_, err = align.ScoreOnly("A", "A", nil, -1, nil)
	assert.ErrorIs(t, err, align.ErrNilScorer)

	_, err = align.Align("A", "A", scoring.Globalxx(), math.NaN(), nil)
	assert.ErrorIs(t, err, align.ErrBadPenalty)
	_, err = align.ScoreOnly("A", "A", scoring.Globalxx(), math.Inf(-1), nil)
	assert.ErrorIs(t, err, align.ErrBadPenalty)

	nan := scoring.Func(func(a, b rune) float64 { return math.NaN() })
	_, err = align.Align("A", "A", nan, -1, nil)
	assert.ErrorIs(t, err, align.ErrBadScore)

	_, err = align.Align("A", "A", scoring.Globalxx(), 0, &align.Options{MaxAlignments: -1})
	assert.ErrorIs(t, err, align.ErrBadOptions)
	_, err = align.ScoreOnly("A", "A", scoring.Globalxx(), 0, &align.Options{Workers: -2})
	assert.ErrorIs(t, err, align.ErrBadOptions)
}

// TestAlign_MaxCells refuses oversized grids before allocating them.
func TestAlign_MaxCells(t *testing.T) {
	opts := align.DefaultOptions()
	opts.MaxCells = align.CellCount(3, 3)

	_, err := align.Align("AAA", "AAA", scoring.Globalxx(), 0, &opts)
	assert.NoError(t, err, "exactly MaxCells is allowed")

	_, err = align.Align("AAAA", "AAA", scoring.Globalxx(), 0, &opts)
	assert.ErrorIs(t, err, align.ErrTooLarge)

	// ScoreOnly keeps only two rows and ignores MaxCells.
	s, err := align.ScoreOnly("AAAA", "AAA", scoring.Globalxx(), 0, &opts)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s)
}

// TestScoreOnly_Empty returns the all-gap score for degenerate inputs.
func TestScoreOnly_Empty(t *testing.T) {
	s, err := align.ScoreOnly("", "", scoring.Globalxx(), -1, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)

	s, err = align.ScoreOnly("", "ACG", scoring.Globalxx(), -1, nil)
	require.NoError(t, err)
	assert.Equal(t, -3.0, s)

	s, err = align.ScoreOnly("ACGT", "", scoring.Globalxx(), -0.5, nil)
	require.NoError(t, err)
	assert.Equal(t, -2.0, s)
}
