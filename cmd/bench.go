// Doost!

package main

import (
	"fmt"
	"math/rand"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/alphazero/wahl/syslib/bench"
	"github.com/alphazero/wahl/syslib/bitmap"
	"github.com/alphazero/wahl/system/log"
)

type benchOp struct {
	name string
	fn   func(a, b *bitmap.Wahl) error
}

var benchOps = []benchOp{
	{"AND", func(a, b *bitmap.Wahl) error { _, e := a.And(b); return e }},
	{"OR ", func(a, b *bitmap.Wahl) error { _, e := a.Or(b); return e }},
	{"XOR", func(a, b *bitmap.Wahl) error { _, e := a.Xor(b); return e }},
	{"NOT", func(a, _ *bitmap.Wahl) error { a.Not(); return nil }},
}

func newBenchCmd(opts *options) *cobra.Command {
	var seed int64
	var reps int
	var sizes []uint
	var cmd = &cobra.Command{
		Use:   "bench",
		Short: "time bitwise ops on random bitmaps",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg = opts.cfg.BenchConfig
			var flags = cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("reps") && reps > 0 {
				cfg.Reps = reps
			}
			if flags.Changed("sizes") && len(sizes) > 0 {
				cfg.Sizes = sizes
			}
			return runBench(cmd, cfg.Seed, cfg.Reps, cfg.Sizes)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().IntVar(&reps, "reps", 0, "reps per op")
	cmd.Flags().UintSliceVar(&sizes, "sizes", nil, "operand bit lengths")
	return cmd
}

func runBench(cmd *cobra.Command, seed int64, reps int, sizes []uint) error {
	var ctx = cmd.Context()
	var out = cmd.OutOrStdout()
	var rnd = rand.New(rand.NewSource(seed))
	fmt.Fprintf(out, "bench wahl: sizes: %v - reps: %d - seed: %d\n", sizes, reps, seed)

	var tstamp = bench.NewTimestamp(out)
	for _, nbits := range sizes {
		w_0 := bitmap.NewRandomWahl(rnd, nbits)
		w_1 := bitmap.NewRandomWahl(rnd, nbits)
		log.Log("bench: %d bits - blocks (%d %d)", nbits, w_0.Len(), w_1.Len())
		tstamp.Mark(fmt.Sprintf("[%d bits] 2 NewRandomWahl", nbits))

		bar := progressbar.NewOptions(len(benchOps)*reps,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription(fmt.Sprintf("[%d bits]", nbits)),
			progressbar.OptionClearOnFinish(),
		)
		for _, op := range benchOps {
			for i := 0; i < reps; i++ {
				if ctx != nil && ctx.Err() != nil {
					return fmt.Errorf("bench: %w", ctx.Err())
				}
				if e := op.fn(w_0, w_1); e != nil {
					return e
				}
				logProgress(bar.Add(1))
			}
			tstamp.MarkN(fmt.Sprintf("[%d bits] %s", nbits, op.name), reps)
		}
		logProgress(bar.Finish())
	}
	return nil
}

// progress display errors do not fail the bench.
func logProgress(e error) {
	if e != nil {
		log.Log("bench: progress: %v", e)
	}
}
