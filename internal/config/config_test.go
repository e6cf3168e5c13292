package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pkt.systems/gridrow/internal/row"
	"pkt.systems/gridrow/internal/terminal"
)

func TestLoaderReadsConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`row:
  width: 132
  fill:
    mode: [bold, underline]
    fg: "#ff8000"
    bg: "4"
screen:
  rows: 50
log:
  file: /tmp/gridrow.log
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := NewLoader()
	loader.SetConfigFile(path)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Row.Width != 132 || cfg.Screen.Rows != 50 || cfg.Log.File != "/tmp/gridrow.log" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	attr, err := cfg.Row.Fill.Attr()
	if err != nil {
		t.Fatalf("Attr: %v", err)
	}
	want := terminal.Attr{
		Mode: terminal.ModeBold | terminal.ModeUnderline,
		FG:   terminal.RGB(0xff, 0x80, 0x00),
		BG:   terminal.Indexed(4),
	}
	if attr != want {
		t.Fatalf("Attr() = %v, want %v", attr, want)
	}
}

func TestLoaderEnvOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	t.Setenv("GRIDROW_ROW_WIDTH", "40")
	t.Setenv("GRIDROW_SCREEN_ROWS", "10")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Row.Width != 40 || cfg.Screen.Rows != 10 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Row.Fill.FG != DefaultFillColor {
		t.Fatalf("Fill.FG = %q, want default", cfg.Row.Fill.FG)
	}
}

func TestLoaderRejectsInvalidWidth(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GRIDROW_ROW_WIDTH", "0")

	if _, err := NewLoader().Load(); !errors.Is(err, row.ErrInvalidWidth) {
		t.Fatalf("Load err = %v, want ErrInvalidWidth", err)
	}
}

func TestValidateWidthAboveMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Row.MaxWidth = 100
	cfg.Row.Width = 101
	if err := cfg.Validate(); !errors.Is(err, row.ErrInvalidWidth) {
		t.Fatalf("Validate err = %v, want ErrInvalidWidth", err)
	}
	cfg.Row.Width = 100
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"", terminal.ColorDefault, true},
		{"Default", terminal.ColorDefault, true},
		{"1", terminal.Indexed(1), true},
		{"255", terminal.Indexed(255), true},
		{"#010203", terminal.RGB(1, 2, 3), true},
		{"256", 0, false},
		{"#12345", 0, false},
		{"#zzzzzz", 0, false},
		{"red", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("ParseColor(%q) = %#x, %v; want %#x", tc.in, got, err, tc.want)
			}
			continue
		}
		if err == nil {
			t.Fatalf("ParseColor(%q) accepted invalid color", tc.in)
		}
	}
}

func TestFillAttrRejectsUnknownMode(t *testing.T) {
	f := FillConfig{Mode: []string{"sparkle"}}
	if _, err := f.Attr(); err == nil {
		t.Fatalf("expected unknown mode error")
	}
}
