package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/gridrow"
	"pkt.systems/pslog"
)

// NewEncodeCommand builds the encode command.
func NewEncodeCommand(loader *gridrow.Loader) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Print the hex encoded wire form of a row built from text",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, loader)
			if err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			r, err := gridrow.RowFromText(cfg, id, strings.TrimRight(text, "\r\n"))
			if err != nil {
				return err
			}
			data := gridrow.EncodeRow(r)
			pslog.Ctx(cmd.Context()).With("component", "encode").Debug("encoded row", "width", r.Width(), "bytes", len(data))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return err
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "row id")

	return cmd
}
