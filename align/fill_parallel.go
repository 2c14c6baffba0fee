package align

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/pairwise/scoring"
)

// fillWavefront splits the interior columns into contiguous blocks, one per
// goroutine, and sweeps the rows as a wavefront.
//
// Dependencies: cell (i, j) needs (i-1, j-1), (i-1, j) and (i, j-1). Inside a
// block all three are produced by the same goroutine, except at the block's
// first column, where (i, lo-1) and (i-1, lo-1) belong to the block on the
// left. So block w may start row i once block w-1 has finished row i.
// ready[w] carries one token per finished row of block w-1; it is buffered to
// n so the left neighbour never blocks on send.
//
// Every block keeps passing tokens after a failure so no goroutine is left
// waiting; computation stops as soon as any block reports an error.
func (e *Engine) fillWavefront(scorer scoring.Scorer, penalty float64, withDirs bool, workers int) error {
	n := len(e.seq1)
	blocks := columnBlocks(len(e.seq2), workers)

	ready := make([]chan struct{}, len(blocks))
	for w := 1; w < len(blocks); w++ {
		ready[w] = make(chan struct{}, n)
	}
	errs := make([]error, len(blocks))
	var failed atomic.Bool

	var wg sync.WaitGroup
	for w, blk := range blocks {
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for i := 1; i <= n; i++ {
				if w > 0 {
					<-ready[w]
				}
				if !failed.Load() {
					if err := e.fillRowSpan(scorer, penalty, withDirs, i, lo, hi); err != nil {
						errs[w] = err
						failed.Store(true)
					}
				}
				if w+1 < len(blocks) {
					ready[w+1] <- struct{}{}
				}
			}
		}(w, blk[0], blk[1])
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// columnBlocks partitions columns 1..m into k contiguous [lo, hi] ranges whose
// sizes differ by at most one. k is clamped to [1, m].
func columnBlocks(m, k int) [][2]int {
	if m <= 0 {
		return nil
	}
	k = max(1, min(k, m))
	blocks := make([][2]int, 0, k)
	size, extra := m/k, m%k
	lo := 1
	for w := 0; w < k; w++ {
		width := size
		if w < extra {
			width++
		}
		blocks = append(blocks, [2]int{lo, lo + width - 1})
		lo += width
	}

	return blocks
}
