package align

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// CellCount returns the number of score-grid cells, (len1+1)·(len2+1), that
// aligning sequences of the given lengths (in symbols) needs. It saturates at
// math.MaxUint64 instead of overflowing. Compare it against a memory budget
// before calling NewEngine or Align.
// Complexity: O(1).
func CellCount(len1, len2 int) uint64 {
	if len1 < 0 || len2 < 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(len1)+1, uint64(len2)+1)
	if hi != 0 {
		return math.MaxUint64
	}

	return lo
}

// grid is a row-major table of float64 scores.
// rows = len1+1, cols = len2+1, data holds rows*cols elements.
type grid struct {
	rows, cols int
	data       []float64
}

// newGrid allocates a zeroed rows×cols grid.
// Complexity: O(rows*cols) time and memory.
func newGrid(rows, cols int) *grid {
	return &grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// at reads (i, j) without bounds checks; callers stay inside the grid.
func (g *grid) at(i, j int) float64 { return g.data[i*g.cols+j] }

// set writes (i, j) without bounds checks.
func (g *grid) set(i, j int, v float64) { g.data[i*g.cols+j] = v }

// initBoundary writes the all-gap prefixes: row 0 and column 0 hold k*penalty.
// Complexity: O(rows+cols).
func (g *grid) initBoundary(penalty float64) {
	g.set(0, 0, 0)
	for i := 1; i < g.rows; i++ {
		g.set(i, 0, float64(i)*penalty)
	}
	for j := 1; j < g.cols; j++ {
		g.set(0, j, float64(j)*penalty)
	}
}

// String renders one bracketed row per line, for debugging.
func (g *grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < g.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", g.at(i, j))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// directionMatrix stores one DirectionSet per interior cell.
// Entry (i, j) describes grid cell (i+1, j+1), i.e. the pair seq1[i], seq2[j].
type directionMatrix struct {
	rows, cols int
	data       []DirectionSet
}

func newDirectionMatrix(rows, cols int) *directionMatrix {
	return &directionMatrix{rows: rows, cols: cols, data: make([]DirectionSet, rows*cols)}
}

func (d *directionMatrix) at(i, j int) DirectionSet { return d.data[i*d.cols+j] }

func (d *directionMatrix) set(i, j int, s DirectionSet) { d.data[i*d.cols+j] = s }
