package main

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	serve      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "card-garden",
		Short:         "Seven flip cards, each hiding a flower and a kind word",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flags.serve, "serve", false, "Also run the preview and metrics server (preview.enabled)")

	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newKindsCmd())
	cmd.AddCommand(newServeCmd(flags))

	return cmd
}

func runWindow(ctx context.Context, flags *rootFlags) error {
	a, err := newApp(flags.configPath, flags.verbose)
	if err != nil {
		return err
	}
	o, err := a.newSession(newEbitenAudio(a.cfg.Audio.SampleRate))
	if err != nil {
		return fmt.Errorf("build session: %w", err)
	}
	defer func() {
		if err := o.Close(); err != nil {
			a.log.Error(err, "close session")
		}
		a.closeStore()
	}()

	if flags.serve || a.cfg.Preview.Enabled {
		stop := a.startPreview(ctx, a.cfg.Preview.Addr)
		defer stop()
	}

	face := LoadUIFont(FontPath, FontSize, a.log)
	w := a.cfg.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	a.log.WithFields(map[string]any{"theme": string(o.Context().Theme), "audio": o.Context().AudioOn}).Info("starting")
	return ebiten.RunGame(NewGame(o, face, a.log))
}
