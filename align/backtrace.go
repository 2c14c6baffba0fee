package align

import "slices"

// path is one live branch of the backtrace.
// (i1, i2) index seq1/seq2 directly (0-based); -1 means that sequence is used
// up. pending holds the moves still to be taken from the current cell.
// frag1/frag2 are built backwards and reversed on completion.
type path struct {
	i1, i2       int
	pending      DirectionSet
	frag1, frag2 []rune
}

// done reports whether both sequences are fully consumed.
func (p *path) done() bool { return p.i1 < 0 && p.i2 < 0 }

// fork returns an independent copy of p that will continue with moves.
func (p *path) fork(moves DirectionSet) path {
	return path{
		i1:      p.i1,
		i2:      p.i2,
		pending: moves,
		frag1:   slices.Clone(p.frag1),
		frag2:   slices.Clone(p.frag2),
	}
}

// step applies one move and appends the emitted column.
func (p *path) step(d Direction, seq1, seq2 []rune) {
	switch d {
	case Left:
		p.frag1 = append(p.frag1, GapSymbol)
		p.frag2 = append(p.frag2, seq2[p.i2])
		p.i2--
	case Up:
		p.frag1 = append(p.frag1, seq1[p.i1])
		p.frag2 = append(p.frag2, GapSymbol)
		p.i1--
	default:
		p.frag1 = append(p.frag1, seq1[p.i1])
		p.frag2 = append(p.frag2, seq2[p.i2])
		p.i1--
		p.i2--
	}
}

// movesAt returns the optimal moves out of position (i1, i2).
// Once one sequence is exhausted the only way back to the origin is along
// the boundary: row 0 is all LEFT, column 0 is all UP.
func (e *Engine) movesAt(i1, i2 int) DirectionSet {
	switch {
	case i1 < 0:
		return NewDirectionSet(Left)
	case i2 < 0:
		return NewDirectionSet(Up)
	default:
		return e.dirs.at(i1, i2)
	}
}

// Backtrace enumerates the co-optimal alignments recorded by the last Fill.
//
// The pool starts with one path at the bottom-right cell. Paths are run to
// completion in pool order. At each cell the path takes LEFT if present,
// else UP, else DIAG; if other moves remain, a fork carrying them is appended
// to the pool. Once the pool holds Options.MaxAlignments paths no further
// forks are made and Result.Truncated is set.
//
// Two empty sequences yield an empty result.
//
// Errors: ErrNotFilled, ErrNoDirections.
// Complexity: O(k·(len1+len2)) for k emitted alignments.
func (e *Engine) Backtrace() (Result, error) {
	if !e.filled {
		return Result{}, ErrNotFilled
	}
	if !e.traced {
		return Result{}, ErrNoDirections
	}

	n, m := len(e.seq1), len(e.seq2)
	score := e.grid.at(n, m)
	res := Result{Score: score, Alignments: []Alignment{}}
	if n == 0 && m == 0 {
		return res, nil
	}

	limit := e.opts.MaxAlignments
	pool := make([]path, 1, min(limit, 64))
	pool[0] = path{
		i1:      n - 1,
		i2:      m - 1,
		pending: e.movesAt(n-1, m-1),
		frag1:   make([]rune, 0, n+m),
		frag2:   make([]rune, 0, n+m),
	}

	for k := 0; k < len(pool); k++ {
		p := pool[k]
		for !p.done() {
			mv := p.pending.primary()
			if rest := p.pending.Without(mv); !rest.Empty() {
				if len(pool) < limit {
					pool = append(pool, p.fork(rest))
				} else {
					res.Truncated = true
				}
			}
			p.step(mv, e.seq1, e.seq2)
			if !p.done() {
				p.pending = e.movesAt(p.i1, p.i2)
			}
		}
		pool[k] = path{} // release fragments early

		slices.Reverse(p.frag1)
		slices.Reverse(p.frag2)
		res.Alignments = append(res.Alignments, Alignment{
			Sequence1: string(p.frag1),
			Sequence2: string(p.frag2),
			Score:     score,
			Begin:     0,
			End:       n,
		})
	}

	if res.Truncated {
		e.log.Warn("align: alignment cap reached; result truncated",
			"limit", limit, "len1", n, "len2", m)
	}
	e.log.Debug("align: backtrace done", "alignments", len(res.Alignments), "truncated", res.Truncated)

	return res, nil
}
