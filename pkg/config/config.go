// Package config loads docstow configuration by layering, in
// ascending precedence: embedded defaults, the user config file
// ($XDG_CONFIG_HOME/docstow/config.toml), and DOCSTOW_* environment
// variables.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed default.toml
var defaultConfig []byte

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "DOCSTOW_"

// ConfigFileName is the user config file name under the XDG config dir
const ConfigFileName = "config.toml"

// Config is the resolved docstow configuration
type Config struct {
	// Verbosity is the default log verbosity (0 warn .. 3 trace)
	Verbosity int `koanf:"verbosity" toml:"verbosity"`

	Documents DirConfig `koanf:"documents" toml:"documents"`
	Cache     DirConfig `koanf:"cache" toml:"cache"`
	Cloud     DirConfig `koanf:"cloud" toml:"cloud"`
}

// DirConfig overrides the resolution of a single well-known directory.
// An empty Dir means "resolve from the host environment".
type DirConfig struct {
	Dir string `koanf:"dir" toml:"dir"`
}

// DefaultPath returns the default user config file path
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "docstow", ConfigFileName)
}

// Load builds the configuration. An empty path means the default
// user config file location; a missing config file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. User config file, if present
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Environment variables: DOCSTOW_DOCUMENTS_DIR -> documents.dir
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// rawBytesProvider adapts an in-memory byte slice to koanf.Provider
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("rawBytesProvider does not support Read()")
}
