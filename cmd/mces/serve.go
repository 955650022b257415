package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mces/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr   string
		origin string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

			return server.New(server.Config{Addr: addr, AllowOrigin: origin}, log).Run()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&origin, "allow-origin", "*", "CORS origin")

	return cmd
}
