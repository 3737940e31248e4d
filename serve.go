package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"card-garden/telemetry"
)

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve flower previews and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootFlags.configPath, rootFlags.verbose)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Preview.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}

func serve(ctx context.Context, a *app, addr string) error {
	return telemetry.Serve(ctx, addr, a.previewHandler(), a.log)
}
