package config

import "pkt.systems/gridrow/internal/row"

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return Config{
		Row: RowConfig{
			Width:    DefaultRowWidth,
			MaxWidth: row.MaxWidth,
			Fill: FillConfig{
				FG: DefaultFillColor,
				BG: DefaultFillColor,
			},
		},
		Screen: ScreenConfig{
			Rows: DefaultScreenRows,
		},
		Log: LogConfig{
			File: "",
		},
	}
}
