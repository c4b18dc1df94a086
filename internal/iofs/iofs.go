// Package iofs prepares the application's directories and default
// configuration file on disk.
package iofs

import (
	"fmt"
	"os"

	"github.com/gedtk/gedtree/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# gedtree configuration.
#
# Every value below can also be set with a GEDTREE_* environment
# variable or overridden with a CLI flag. Flags win over environment
# variables, which win over this file.

`

// EnsureDirs creates the config, cache and log directories when they
// do not exist yet.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes a documented default config.yaml when none
// exists. Existing files are never overwritten.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	data, err := DefaultConfigYAML()
	if err != nil {
		return CopyFileError(configPath, err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// DefaultConfigYAML renders the default configuration as documented
// YAML, using yaml.Marshal so the file always round-trips with the
// Config struct.
func DefaultConfigYAML() ([]byte, error) {
	body, err := yaml.Marshal(config.New())
	if err != nil {
		return nil, fmt.Errorf("failed to render default config: %w", err)
	}
	return append([]byte(configHeader), body...), nil
}
