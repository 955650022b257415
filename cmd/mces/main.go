// Command mces is the suite binary: an HTTP API server, a one-shot solver
// (also the isolation vehicle for the benchmark driver), a graph generator,
// and the benchmark runner itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mces",
		Short:         "Maximum common edge subgraph toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newSolveCmd(), newGenerateCmd(), newBenchCmd())

	return root
}
