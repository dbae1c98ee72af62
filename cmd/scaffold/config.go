// Config loading for the scaffold CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/scaffold/internal/paths"
	"github.com/mesh-intelligence/scaffold/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyLogLevel   = "log_level"
	cfgKeyNoteAccess = "note_access"
)

// cliConfig holds the settings read from config.yaml.
type cliConfig struct {
	// LogLevel is the zerolog level name for CLI output.
	LogLevel string

	// NoteAccess is the access level applied to demo notes created
	// without an explicit one.
	NoteAccess string
}

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Scaffold CLI configuration

# Log level for CLI diagnostics (debug, info, warn, error)
log_level: info

# Access level applied to notes created without one
note_access: public
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run; a missing config.yaml is not an error.
func loadConfig(configDirFlag string) (*cliConfig, error) {
	configDir, err := paths.ResolveConfigDir(configDirFlag)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyNoteAccess, types.DefaultNoteAccess)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &cliConfig{
		LogLevel:   v.GetString(cfgKeyLogLevel),
		NoteAccess: v.GetString(cfgKeyNoteAccess),
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
