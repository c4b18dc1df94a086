// Package config provides configuration management for gedtree.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use the GEDTREE_ prefix with underscores for nesting:
//
//	GEDTREE_PARSER_HEADER_PREVIEW_SIZE=2048
//	GEDTREE_TRAVERSAL_MAX_DEPTH=50
//	GEDTREE_LOG_LEVEL=debug
package config

// Config represents the complete gedtree configuration.
type Config struct {
	// Parser contains byte-level decoding and assembly settings.
	Parser ParserConfig `mapstructure:"parser" yaml:"parser"`

	// Traversal contains limits for recursive graph walks.
	Traversal TraversalConfig `mapstructure:"traversal" yaml:"traversal"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories
	// reside. It is set by the CLI during init; there is no default.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// ParserConfig contains settings for the GEDCOM byte decoder and
// record assembler.
type ParserConfig struct {
	// HeaderPreviewSize is how many leading bytes are decoded as
	// ASCII when searching for the "1 CHAR <encoding>" header line.
	HeaderPreviewSize int `mapstructure:"header_preview_size" yaml:"header_preview_size"`

	// AnselScanLimit bounds how many leading bytes are scanned for
	// combining-mark bytes when deciding whether a file declared as
	// ANSEL really is ANSEL.
	AnselScanLimit int `mapstructure:"ansel_scan_limit" yaml:"ansel_scan_limit"`
}

// TraversalConfig contains limits for recursive relationship queries.
type TraversalConfig struct {
	// MaxDepth bounds ancestor/descendant walks in generations. The
	// visited-set cycle guard is always active in addition to this.
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (at the default place), STDERR
	// or STDOUT.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Parser: ParserConfig{
			HeaderPreviewSize: 1024,
			AnselScanLimit:    4096,
		},
		Traversal: TraversalConfig{
			MaxDepth: 100,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
	}

	return res
}
