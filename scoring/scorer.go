package scoring

// Scorer produces the score of aligning symbol a (first sequence) against
// symbol b (second sequence).
//
// Implementations must be pure and safe to call from several goroutines at
// once; the parallel fill in package align relies on that.
type Scorer interface {
	Score(a, b rune) (float64, error)
}

// Const scores identical symbols with Match and all other pairs with Mismatch.
type Const struct {
	Match    float64
	Mismatch float64
}

// NewConst returns a Const scorer.
func NewConst(match, mismatch float64) Const {
	return Const{Match: match, Mismatch: mismatch}
}

// Globalxx returns the scorer of the classic "globalxx" preset:
// 1 for a match, 0 for a mismatch. Pair it with a zero gap penalty.
func Globalxx() Const {
	return Const{Match: 1, Mismatch: 0}
}

// Score implements Scorer. It never fails.
func (c Const) Score(a, b rune) (float64, error) {
	if a == b {
		return c.Match, nil
	}

	return c.Mismatch, nil
}

// Func adapts an ordinary function to the Scorer interface.
type Func func(a, b rune) float64

// Score implements Scorer by calling f(a, b).
func (f Func) Score(a, b rune) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}

	return f(a, b), nil
}
