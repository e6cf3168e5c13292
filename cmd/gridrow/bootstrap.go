package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/gridrow"
	"pkt.systems/pslog"
)

// NewBootstrapCommand builds the bootstrap command.
func NewBootstrapCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Write the default gridrow config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := pslog.Ctx(cmd.Context()).With("component", "bootstrap")
			cfg := gridrow.DefaultConfig()
			if cmd.Flags().Changed("width") {
				width, err := cmd.Flags().GetInt("width")
				if err != nil {
					return err
				}
				cfg.Row.Width = width
			}
			written, err := gridrow.Bootstrap(cmd.Context(), cfg, path, logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), written)
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", gridrow.DefaultConfigPath(), "config file to write")

	return cmd
}
