package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mces/bench"
	"github.com/katalvlaran/mces/core"
	"github.com/katalvlaran/mces/mces"
)

// newSolveCmd reads one pattern/target pair as JSON on stdin and writes the
// result as JSON on stdout. This is the child process the benchmark driver
// kills on timeout, so stdout carries nothing but the result document.
func newSolveCmd() *cobra.Command {
	var (
		algorithm   string
		seed        int64
		timeLimitMS int64
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one pair read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := mces.ParseAlgorithm(algorithm)
			if err != nil {
				return fmt.Errorf("--algorithm %q: %w", algorithm, err)
			}

			var pair bench.PairDoc
			if err = json.NewDecoder(cmd.InOrStdin()).Decode(&pair); err != nil {
				return fmt.Errorf("decode pair: %w", err)
			}
			g1, err := core.FromDoc(pair.Graph1)
			if err != nil {
				return fmt.Errorf("graph1: %w", err)
			}
			g2, err := core.FromDoc(pair.Graph2)
			if err != nil {
				return fmt.Errorf("graph2: %w", err)
			}

			opts := mces.DefaultOptions(algo)
			opts.Seed = seed
			opts.TimeLimit = time.Duration(timeLimitMS) * time.Millisecond

			res, err := mces.Solve(g1, g2, opts)
			if err != nil {
				return err
			}

			return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "solver identifier (required)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for the stochastic solver")
	cmd.Flags().Int64Var(&timeLimitMS, "time-limit-ms", 0, "soft deadline for the ILP solver")
	_ = cmd.MarkFlagRequired("algorithm")

	return cmd
}
