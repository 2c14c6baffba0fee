package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/pairwise/align"
	"github.com/katalvlaran/pairwise/scoring"
	"github.com/spf13/cobra"
)

// flags shared by the alignment subcommands.
type runFlags struct {
	format    string
	verbose   bool
	max       int
	workers   int
	maxCells  uint64
	scoreOnly bool

	match    float64
	mismatch float64
	gap      float64
	matrix   string
}

func newRootCmd() *cobra.Command {
	f := &runFlags{}

	root := &cobra.Command{
		Use:           "pairwise",
		Short:         "Global (Needleman–Wunsch) alignment with full co-optimal enumeration",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFormat(f.format)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.format, "format", "text", "output format: text|json")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log debug traces to stderr")
	pf.IntVar(&f.max, "max", align.DefaultMaxAlignments, "maximum number of alignments to report")
	pf.IntVar(&f.workers, "workers", 1, "goroutines used to fill the score grid")
	pf.Uint64Var(&f.maxCells, "max-cells", 0, "refuse grids with more cells (0 = no limit)")
	pf.BoolVar(&f.scoreOnly, "score-only", false, "print only the optimal score")

	root.AddCommand(newAlignCmd(f), newGlobalxxCmd(f))

	return root
}

func newAlignCmd(f *runFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align SEQ1 SEQ2",
		Short: "Align two sequences with a constant or table scorer and a linear gap penalty",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scorer, err := f.scorer()
			if err != nil {
				return err
			}

			return run(cmd, f, args[0], args[1], scorer, f.gap)
		},
	}
	cmd.Flags().Float64Var(&f.match, "match", 1, "score of identical symbols")
	cmd.Flags().Float64Var(&f.mismatch, "mismatch", -1, "score of different symbols")
	cmd.Flags().Float64Var(&f.gap, "gap", -1, "penalty added per gap position (usually negative)")
	cmd.Flags().StringVar(&f.matrix, "matrix", "", "YAML substitution table; overrides --match/--mismatch")

	return cmd
}

func newGlobalxxCmd(f *runFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "globalxx SEQ1 SEQ2",
		Short: "Align with 1 per match, 0 per mismatch and no gap penalty",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0], args[1], scoring.Globalxx(), 0)
		},
	}
}

// scorer picks the table from --matrix, or a Const from --match/--mismatch.
func (f *runFlags) scorer() (scoring.Scorer, error) {
	if f.matrix == "" {
		return scoring.NewConst(f.match, f.mismatch), nil
	}
	t, err := scoring.LoadTableFile(f.matrix)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// options maps flags onto align.Options with a stderr logger.
func (f *runFlags) options(stderr io.Writer) align.Options {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	opts := align.DefaultOptions()
	opts.MaxAlignments = f.max
	opts.Workers = f.workers
	opts.MaxCells = f.maxCells
	opts.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return opts
}

func run(cmd *cobra.Command, f *runFlags, seq1, seq2 string, scorer scoring.Scorer, penalty float64) error {
	opts := f.options(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	if f.scoreOnly {
		score, err := align.ScoreOnly(seq1, seq2, scorer, penalty, &opts)
		if err != nil {
			return err
		}

		return writeScore(out, f.format, score)
	}

	res, err := align.Align(seq1, seq2, scorer, penalty, &opts)
	if err != nil {
		return err
	}

	return writeResult(out, f.format, res)
}
