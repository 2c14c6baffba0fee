// Package scoring supplies the pairwise symbol scores consumed by the
// alignment engine in github.com/katalvlaran/pairwise/align.
//
// What is a scorer?
//
//	A Scorer returns a real-valued score for an ordered pair of symbols.
//	It must be a pure function: the engine calls it once per grid cell,
//	in any order, and expects the same answer for the same pair.
//
// Variants:
//   - Const — one value for identical symbols, another for everything else
//   - Table — a square substitution matrix indexed through an alphabet
//   - Func  — any callback of the form func(a, b rune) float64
//
// Tables can also be read from YAML:
//
//	alphabet: ACGT
//	matrix:
//	  - [ 5, -4, -4, -4]
//	  - [-4,  5, -4, -4]
//	  - [-4, -4,  5, -4]
//	  - [-4, -4, -4,  5]
//
//	t, err := scoring.LoadTableFile("dnafull.yaml")
//
// All variants are interchangeable wherever a Scorer is accepted.
package scoring
