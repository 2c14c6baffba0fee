package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/pairwise/align"
)

func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be text or json", format)
	}
}

// cliAlignment is the JSON shape of one alignment.
type cliAlignment struct {
	Sequence1 string  `json:"sequence1"`
	Sequence2 string  `json:"sequence2"`
	Score     float64 `json:"score"`
	Begin     int     `json:"begin"`
	End       int     `json:"end"`
}

type cliResult struct {
	Score      float64        `json:"score"`
	Count      int            `json:"count"`
	Truncated  bool           `json:"truncated"`
	Alignments []cliAlignment `json:"alignments"`
}

func writeResult(w io.Writer, format string, res align.Result) error {
	if format == "json" {
		out := cliResult{
			Score:      res.Score,
			Count:      len(res.Alignments),
			Truncated:  res.Truncated,
			Alignments: make([]cliAlignment, 0, len(res.Alignments)),
		}
		for _, a := range res.Alignments {
			out.Alignments = append(out.Alignments, cliAlignment(a))
		}

		return writeJSON(w, out)
	}

	for _, a := range res.Alignments {
		fmt.Fprintln(w, a.Sequence1)
		fmt.Fprintln(w, a.Sequence2)
		fmt.Fprintln(w)
	}
	if res.Truncated {
		fmt.Fprintf(w, "Reached the limit of %d alignments; more co-optimal alignments exist.\n", len(res.Alignments))
	}
	_, err := fmt.Fprintf(w, "Alignment score: %g\n", res.Score)

	return err
}

func writeScore(w io.Writer, format string, score float64) error {
	if format == "json" {
		return writeJSON(w, map[string]float64{"score": score})
	}
	_, err := fmt.Fprintf(w, "%g\n", score)

	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
