// Command pairwise aligns two sequences globally and prints every
// co-optimal alignment.
//
//	pairwise align ACTGTC ACGTGTC --match 1 --mismatch -1 --gap -5
//	pairwise align ACGT AGT --matrix dnafull.yaml --format json
//	pairwise globalxx GAATTC GATTA --score-only
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
