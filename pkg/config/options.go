package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptParserHeaderPreviewSize sets how many leading bytes are scanned
// for the "1 CHAR" header line during encoding detection.
func OptParserHeaderPreviewSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Header Preview Size", i) {
			c.Parser.HeaderPreviewSize = i
		}
	}
}

// OptParserAnselScanLimit sets the bound for the ANSEL detection
// heuristic scan.
func OptParserAnselScanLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("ANSEL Scan Limit", i) {
			c.Parser.AnselScanLimit = i
		}
	}
}

// OptTraversalMaxDepth sets the generation bound for recursive
// ancestor and descendant walks.
func OptTraversalMaxDepth(i int) Option {
	return func(c *Config) {
		if isValidInt("Traversal Max Depth", i) {
			c.Traversal.MaxDepth = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log
// locations. Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
