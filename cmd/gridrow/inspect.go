package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/gridrow"
	"pkt.systems/prettyx"
)

// NewInspectCommand builds the inspect command.
func NewInspectCommand(loader *gridrow.Loader) *cobra.Command {
	var encoded string
	var id int

	cmd := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Print the JSON view of a row built from text or decoded from hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			var r *gridrow.Row
			if cmd.Flags().Changed("hex") {
				data, err := hex.DecodeString(strings.TrimSpace(encoded))
				if err != nil {
					return fmt.Errorf("decode hex: %w", err)
				}
				r, err = gridrow.DecodeRow(data)
				if err != nil {
					return err
				}
			} else {
				cfg, err := loadConfig(cmd, loader)
				if err != nil {
					return err
				}
				text, err := inputText(cmd, args)
				if err != nil {
					return err
				}
				r, err = gridrow.RowFromText(cfg, id, strings.TrimRight(text, "\r\n"))
				if err != nil {
					return err
				}
			}

			data, err := json.Marshal(gridrow.DumpRow(r))
			if err != nil {
				return err
			}
			return prettyx.PrettyTo(cmd.OutOrStdout(), data, prettyx.DefaultOptions)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&encoded, "hex", "", "hex encoded row, as printed by encode")
	flags.IntVar(&id, "id", 0, "row id")

	return cmd
}
