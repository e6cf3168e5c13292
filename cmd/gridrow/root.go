package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/gridrow"
)

// NewRootCommand builds the root CLI command.
func NewRootCommand(loader *gridrow.Loader) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "gridrow",
		Short:         "Lay out, inspect and encode terminal grid rows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.Int("width", gridrow.DefaultRowWidth, "row width in columns")
	flags.String("log-file", "", "write logs to this file instead of stderr")

	cmd.AddCommand(NewRenderCommand(loader))
	cmd.AddCommand(NewInspectCommand(loader))
	cmd.AddCommand(NewEncodeCommand(loader))
	cmd.AddCommand(NewBootstrapCommand())

	return cmd
}

// loadConfig loads the configuration and applies the persistent flags that
// were set on the command line.
func loadConfig(cmd *cobra.Command, loader *gridrow.Loader) (gridrow.Config, error) {
	cfg, err := loader.Load()
	if err != nil {
		return gridrow.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		width, err := flags.GetInt("width")
		if err != nil {
			return gridrow.Config{}, err
		}
		cfg.Row.Width = width
	}
	if flags.Changed("log-file") {
		path, err := flags.GetString("log-file")
		if err != nil {
			return gridrow.Config{}, err
		}
		cfg.Log.File = path
	}
	return cfg, cfg.Validate()
}

// inputText joins args, or reads stdin when there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
