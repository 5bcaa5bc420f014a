package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/tsunaou/polysi-go/render/dot"
	"github.com/tsunaou/polysi-go/render/plain"
	"github.com/tsunaou/polysi-go/sicheck"
)

func newVerifyCmd() *cobra.Command {
	var (
		format        string
		render        string
		coalesce      bool
		prune         bool
		stopThreshold float64
	)

	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Load a history and decide whether it satisfies Snapshot Isolation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("sicheck: build logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck
			log := logger.Sugar()

			ld, err := resolveLoader(format)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("sicheck: open %s: %w", args[0], err)
			}
			defer f.Close()

			h, err := ld.Load(f)
			if err != nil {
				log.Errorw("invalid history", "file", args[0], "format", format, "error", err)
				return fmt.Errorf("sicheck: load %s: %w", args[0], err)
			}
			log.Infow("history loaded", "file", args[0], "format", format, "transactions", h.Len())

			v, stats := sicheck.VerifyWithStats(h,
				sicheck.WithCoalescing(coalesce),
				sicheck.WithPruning(prune),
				sicheck.WithStopThreshold(stopThreshold),
			)
			log.Infow("verdict",
				"accept", v.Accept,
				"transactions", stats.Transactions,
				"constraints", stats.Constraints,
				"prune_rounds", stats.PruneRounds,
			)

			switch render {
			case "dot":
				fmt.Println(dot.String(v))
			default:
				fmt.Print(plain.Format(v))
			}

			if !v.Accept {
				// The witness is already rendered; exit non-zero without an
				// extra "error:" line duplicating it.
				os.Exit(1)
			}
			return nil
		},
	}

	// Built as a standalone pflag.FlagSet and merged in, rather than
	// populated directly off cmd.Flags(), so the flag definitions stay
	// reusable outside of a cobra.Command (e.g. from a future batch driver).
	fs := pflag.NewFlagSet("verify", pflag.ContinueOnError)
	fs.StringVar(&format, "format", "text", "history format: text, dbcop, or cobra")
	fs.StringVar(&render, "render", "plain", "witness rendering: plain or dot")
	fs.BoolVar(&coalesce, "coalesce", true, "coalesce constraints per transaction pair")
	fs.BoolVar(&prune, "prune", true, "run the pruning stage before the SAT solver")
	fs.Float64Var(&stopThreshold, "stop-threshold", 0.01, "pruner round stop fraction")
	cmd.Flags().AddFlagSet(fs)

	return cmd
}
