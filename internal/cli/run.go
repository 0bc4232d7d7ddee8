package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pavanmanishd/contiguous/internal/bench"
	"github.com/pavanmanishd/contiguous/internal/config"
)

// runOptions are the run flags; zero values leave the config untouched.
type runOptions struct {
	out  string
	runs int
	seed uint64
	ops  []string
}

func (o runOptions) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	if o.out != "" {
		cfg.Output = o.out
	}
	if cmd.Flags().Changed("runs") {
		cfg.Runs = o.runs
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = o.seed
	}
	if len(o.ops) > 0 {
		cfg.Operations = o.ops
	}
	return cfg
}

func runCmd(g *globals) *cobra.Command {
	var opts runOptions

	c := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark and write the results as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			cfg = opts.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := g.logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			sink, err := bench.CreateCSV(cfg.Output)
			if err != nil {
				return err
			}
			defer func() { err = multierr.Append(err, sink.Close()) }()

			sum, err := bench.NewRunner(cfg, sink, logger).Run(cmd.Context())
			if err != nil {
				return err
			}

			logger.Info("results written", zap.String("path", cfg.Output), zap.Int("records", sum.Records))
			fmt.Fprintf(cmd.OutOrStdout(), "Done. %d results in %s\n", sum.Records, cfg.Output)
			return nil
		},
	}

	c.Flags().StringVarP(&opts.out, "out", "o", "", "CSV output path (default from config: results.csv)")
	c.Flags().IntVarP(&opts.runs, "runs", "r", 0, "Number of runs per size")
	c.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for the random workloads")
	c.Flags().StringSliceVar(&opts.ops, "ops", nil, "Only run these operations (comma separated)")
	return c
}
