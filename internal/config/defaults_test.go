package config

import "testing"

func TestDefaultConfigUsesConstants(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Row.Width != DefaultRowWidth {
		t.Fatalf("Row.Width = %d, want %d", cfg.Row.Width, DefaultRowWidth)
	}
	if cfg.Row.Fill.FG != DefaultFillColor || cfg.Row.Fill.BG != DefaultFillColor {
		t.Fatalf("Row.Fill = %+v, want %q colors", cfg.Row.Fill, DefaultFillColor)
	}
	if len(cfg.Row.Fill.Mode) != 0 {
		t.Fatalf("Row.Fill.Mode = %v, want none", cfg.Row.Fill.Mode)
	}
	if cfg.Screen.Rows != DefaultScreenRows {
		t.Fatalf("Screen.Rows = %d, want %d", cfg.Screen.Rows, DefaultScreenRows)
	}
	if cfg.Log.File != "" {
		t.Fatalf("Log.File = %q, want stderr", cfg.Log.File)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
