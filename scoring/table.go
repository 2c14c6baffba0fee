package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Table scores a pair by looking both symbols up in an alphabet index and
// reading the corresponding cell of a square substitution matrix.
// The matrix is copied into a flat row-major buffer on construction, so later
// changes to the caller's slices do not affect the Table.
type Table struct {
	index map[rune]int // symbol → row/column
	n     int          // alphabet size
	data  []float64    // n*n scores, row-major
}

// NewTable builds a Table whose alphabet order is the rune order of alphabet:
// the i-th rune of alphabet indexes row i and column i of matrix.
//
// Errors: ErrEmptyAlphabet, ErrDuplicateSymbol, ErrNonSquare, ErrNaNInf.
// Complexity: O(n²).
func NewTable(alphabet string, matrix [][]float64) (*Table, error) {
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}
	index := make(map[rune]int)
	for _, r := range alphabet {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		index[r] = len(index)
	}
	if len(matrix) != len(index) {
		return nil, fmt.Errorf("%w: %d rows for %d symbols", ErrNonSquare, len(matrix), len(index))
	}

	return newTable(index, matrix)
}

// NewTableFromIndex builds a Table from an explicit symbol→index mapping.
// Several symbols may share an index (e.g. upper and lower case of one base).
//
// Errors: ErrEmptyAlphabet, ErrIndexRange, ErrNonSquare, ErrNaNInf.
func NewTableFromIndex(index map[rune]int, matrix [][]float64) (*Table, error) {
	if len(index) == 0 {
		return nil, ErrEmptyAlphabet
	}
	own := make(map[rune]int, len(index))
	for r, i := range index {
		if i < 0 || i >= len(matrix) {
			return nil, fmt.Errorf("%w: %q -> %d", ErrIndexRange, r, i)
		}
		own[r] = i
	}

	return newTable(own, matrix)
}

// newTable validates shape and values, then copies matrix into flat storage.
func newTable(index map[rune]int, matrix [][]float64) (*Table, error) {
	n := len(matrix)
	if n == 0 || n < maxIndex(index)+1 {
		return nil, ErrNonSquare
	}
	data := make([]float64, n*n)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: at (%d,%d)", ErrNaNInf, i, j)
			}
			data[i*n+j] = v
		}
	}

	return &Table{index: index, n: n, data: data}, nil
}

func maxIndex(index map[rune]int) int {
	m := -1
	for _, i := range index {
		if i > m {
			m = i
		}
	}

	return m
}

// Score implements Scorer. It fails with ErrUnknownSymbol if a or b is not in
// the alphabet.
// Complexity: O(1).
func (t *Table) Score(a, b rune) (float64, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, a)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, b)
	}

	return t.data[i*t.n+j], nil
}

// Size returns the number of rows (and columns) of the score matrix.
func (t *Table) Size() int {
	return t.n
}

// Alphabet returns the known symbols, sorted by index and then by rune.
func (t *Table) Alphabet() string {
	syms := make([]rune, 0, len(t.index))
	for r := range t.index {
		syms = append(syms, r)
	}
	sort.Slice(syms, func(x, y int) bool {
		ix, iy := t.index[syms[x]], t.index[syms[y]]
		if ix != iy {
			return ix < iy
		}

		return syms[x] < syms[y]
	})

	var sb strings.Builder
	for _, r := range syms {
		sb.WriteRune(r)
	}

	return sb.String()
}
