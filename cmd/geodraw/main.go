package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"geodraw/internal/config"
	"geodraw/internal/logging"
	"geodraw/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		printOut bool
	)
	cmd := &cobra.Command{
		Use:          "geodraw [file]",
		Short:        "Draw circles on a terminal map",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			var logOut io.Writer = io.Discard
			if cfg.Log.File != "" {
				f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			logger := logging.Setup(cfg.Log.Level, cfg.Log.Format, logOut)

			opts := []tui.Option{
				tui.WithUnits(cfg.Editor.DistanceUnits()),
				tui.WithLogger(logger),
				tui.WithBounds(cfg.Map.Bounds()),
			}
			path := cfg.Editor.Data
			if len(args) > 0 {
				path = args[0]
			}
			var m tea.Model
			if path != "" {
				m = tui.NewWithPath(path, opts...)
			} else {
				m = tui.New(opts...)
			}

			logger.Info("starting", "data", path, "units", cfg.Editor.Units)
			final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
			if err != nil {
				return err
			}
			if !printOut {
				return nil
			}
			fm, ok := final.(tui.Model)
			if !ok {
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(fm.Collection())
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default ./config.yaml)")
	cmd.Flags().BoolVar(&printOut, "print", false, "write the edited features as GeoJSON to stdout on exit")
	return cmd
}
