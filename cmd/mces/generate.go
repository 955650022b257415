package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mces/generate"
)

func newGenerateCmd() *cobra.Command {
	var (
		nodes int
		edges int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random connected graph as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			g, err := generate.Connected(nodes, edges, seed)
			if err != nil {
				return err
			}

			return json.NewEncoder(cmd.OutOrStdout()).Encode(g.Doc())
		},
	}
	cmd.Flags().IntVar(&nodes, "nodes", 6, "vertex count")
	cmd.Flags().IntVar(&edges, "edges", 8, "edge count")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 draws from the clock)")

	return cmd
}
