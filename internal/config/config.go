package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"pkt.systems/gridrow/internal/row"
	"pkt.systems/gridrow/internal/terminal"
)

// Config is the root configuration for gridrow.
type Config struct {
	Row    RowConfig    `mapstructure:"row" yaml:"row"`
	Screen ScreenConfig `mapstructure:"screen" yaml:"screen"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// RowConfig configures new rows.
type RowConfig struct {
	Width    int        `mapstructure:"width" yaml:"width"`
	MaxWidth int        `mapstructure:"max_width" yaml:"max_width"`
	Fill     FillConfig `mapstructure:"fill" yaml:"fill"`
}

// FillConfig describes the attribute blank rows are filled with. Colors are
// "default", a palette index such as "4", or "#rrggbb".
type FillConfig struct {
	Mode []string `mapstructure:"mode" yaml:"mode,omitempty"`
	FG   string   `mapstructure:"fg" yaml:"fg"`
	BG   string   `mapstructure:"bg" yaml:"bg"`
}

// ScreenConfig configures screen buffers.
type ScreenConfig struct {
	Rows int `mapstructure:"rows" yaml:"rows"`
}

// LogConfig configures log output. An empty file logs to stderr.
type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Validate checks the configuration for values rows cannot hold.
func (c Config) Validate() error {
	if c.Row.MaxWidth <= 0 || c.Row.MaxWidth > row.MaxWidth {
		return fmt.Errorf("row.max_width %d: %w", c.Row.MaxWidth, row.ErrInvalidWidth)
	}
	if c.Row.Width <= 0 || c.Row.Width > c.Row.MaxWidth {
		return fmt.Errorf("row.width %d: %w", c.Row.Width, row.ErrInvalidWidth)
	}
	if c.Screen.Rows <= 0 {
		return fmt.Errorf("screen.rows must be positive, got %d", c.Screen.Rows)
	}
	if _, err := c.Row.Fill.Attr(); err != nil {
		return err
	}
	return nil
}

// Attr returns the terminal attribute described by f.
func (f FillConfig) Attr() (terminal.Attr, error) {
	var attr terminal.Attr
	for _, name := range f.Mode {
		mode, err := ParseMode(name)
		if err != nil {
			return terminal.Attr{}, err
		}
		attr.Mode |= mode
	}
	fg, err := ParseColor(f.FG)
	if err != nil {
		return terminal.Attr{}, fmt.Errorf("row.fill.fg: %w", err)
	}
	bg, err := ParseColor(f.BG)
	if err != nil {
		return terminal.Attr{}, fmt.Errorf("row.fill.bg: %w", err)
	}
	attr.FG = fg
	attr.BG = bg
	return attr, nil
}

// ParseMode maps a rendition name to its mode flag.
func ParseMode(name string) (int16, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bold":
		return terminal.ModeBold, nil
	case "faint":
		return terminal.ModeFaint, nil
	case "italic":
		return terminal.ModeItalic, nil
	case "underline":
		return terminal.ModeUnderline, nil
	case "blink":
		return terminal.ModeBlink, nil
	case "inverse":
		return terminal.ModeInverse, nil
	case "hidden":
		return terminal.ModeHidden, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", name)
	}
}

// ParseColor parses "default", a palette index 0-255 or "#rrggbb".
func ParseColor(s string) (uint32, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "default":
		return terminal.ColorDefault, nil
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return 0, fmt.Errorf("invalid color %q", s)
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return terminal.ColorTrue | uint32(v), nil
	default:
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return terminal.Indexed(uint8(n)), nil
	}
}

// Loader wraps Viper configuration loading for gridrow.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with standard defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("GRIDROW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/gridrow")
	v.AddConfigPath("$HOME/" + DefaultConfigDirName)

	def := DefaultConfig()
	v.SetDefault("row.width", def.Row.Width)
	v.SetDefault("row.max_width", def.Row.MaxWidth)
	v.SetDefault("row.fill.mode", def.Row.Fill.Mode)
	v.SetDefault("row.fill.fg", def.Row.Fill.FG)
	v.SetDefault("row.fill.bg", def.Row.Fill.BG)
	v.SetDefault("screen.rows", def.Screen.Rows)
	v.SetDefault("log.file", def.Log.File)

	return &Loader{v: v}
}

// Viper exposes the underlying Viper instance for flag binding and defaults.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ReadInConfig reads configuration from file if available.
func (l *Loader) ReadInConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration, unmarshals it into a Config struct and
// validates it.
func (l *Loader) Load() (Config, error) {
	if err := l.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
