package config

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = ".gridrow"
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = "config.yaml"
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = "gridrow.log"

	// DefaultRowWidth is the default row width in columns.
	DefaultRowWidth = 80
	// DefaultScreenRows is the default number of rows in a screen buffer.
	DefaultScreenRows = 24
	// DefaultFillColor is the default fill foreground and background color.
	DefaultFillColor = "default"
)
