package gridrow

import "pkt.systems/gridrow/internal/config"

// Config mirrors the gridrow configuration.
type Config = config.Config

// RowConfig configures new rows.
type RowConfig = config.RowConfig

// FillConfig describes the blank fill attribute.
type FillConfig = config.FillConfig

// ScreenConfig configures screen buffers.
type ScreenConfig = config.ScreenConfig

// LogConfig configures log output.
type LogConfig = config.LogConfig

// Loader wraps configuration loading via Viper.
type Loader = config.Loader

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = config.DefaultConfigDirName
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = config.DefaultConfigFileName
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = config.DefaultLogFileName

	// DefaultRowWidth is the default row width in columns.
	DefaultRowWidth = config.DefaultRowWidth
	// DefaultScreenRows is the default screen height.
	DefaultScreenRows = config.DefaultScreenRows
	// DefaultFillColor is the default fill color.
	DefaultFillColor = config.DefaultFillColor
)

// NewLoader returns a config loader with defaults wired.
func NewLoader() *config.Loader {
	return config.NewLoader()
}

// DefaultConfig returns default gridrow configuration.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	return config.DefaultConfigDir()
}

// DefaultConfigPath returns the default config path.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultLogPath returns the default log path.
func DefaultLogPath() string {
	return config.DefaultLogPath()
}
