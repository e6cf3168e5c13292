package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/gridrow"
)

// NewRenderCommand builds the render command.
func NewRenderCommand(loader *gridrow.Loader) *cobra.Command {
	var rows int
	var fullScreen bool
	var fit bool

	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Lay text out on a screen buffer and print it with ANSI renditions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, loader)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rows") {
				cfg.Screen.Rows = rows
			}
			if fit && !cmd.Flags().Changed("width") {
				fd := int(os.Stdout.Fd())
				if term.IsTerminal(fd) {
					if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
						cfg.Row.Width = cols
					}
				}
			}

			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			logger, closer, err := openLogger(cmd.Context(), cfg.Log.File)
			if err != nil {
				return err
			}
			defer func() {
				_ = closer.Close()
			}()
			logger = logger.With("component", "render")
			logger.Debug("render", "width", cfg.Row.Width, "rows", cfg.Screen.Rows, "full_screen", fullScreen)

			return gridrow.Render(cmd.Context(), cmd.OutOrStdout(), gridrow.RenderOptions{
				Config:     cfg,
				Text:       text,
				FullScreen: fullScreen,
				Logger:     logger,
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&rows, "rows", gridrow.DefaultScreenRows, "screen rows")
	flags.BoolVar(&fullScreen, "full-screen", false, "redraw the whole screen with cursor addressing")
	flags.BoolVar(&fit, "fit", false, "use the terminal width when stdout is a terminal")

	return cmd
}
