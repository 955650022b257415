package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mces/bench"
)

func newBenchCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the solver benchmark grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

			cfg, err := bench.LoadConfig(configPath)
			if err != nil {
				return err
			}
			inv, err := bench.NewProcessInvoker(cfg.Bin)
			if err != nil {
				return err
			}

			sum, err := bench.NewRunner(cfg, log, inv).Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"run %s: %d rows (%d ok, %d timeouts, %d errors) in %s\n",
				sum.RunID, sum.Rows, sum.OK, sum.Timeouts, sum.Errors, sum.Elapsed)

			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config path (optional)")

	return cmd
}
