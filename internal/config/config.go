package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Pip     PipConfig     `mapstructure:"pip"`
	Paths   PathsConfig   `mapstructure:"paths"`
	Sources SourcesConfig `mapstructure:"sources"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PipConfig contains pip invocation configuration
type PipConfig struct {
	// Executable overrides pip binary resolution when non-empty
	Executable string `mapstructure:"executable"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	DataDir     string `mapstructure:"data_dir"`
	HistoryDB   string `mapstructure:"history_db"`
	LogFile     string `mapstructure:"log_file"`
	SourcesFile string `mapstructure:"sources_file"`
}

// SourcesConfig contains mirror source configuration
type SourcesConfig struct {
	// Default selects the initially chosen source by name; empty means
	// the first registry entry
	Default string `mapstructure:"default"`
	// Extra holds additional name/url pairs appended after the built-ins
	Extra []SourceEntry `mapstructure:"extra"`
}

// SourceEntry is one configured mirror source
type SourceEntry struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	// Set config name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	// Add config paths
	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".config", "pipctl"))
	}
	viper.AddConfigPath(".")

	// Set defaults
	setDefaults()

	// Environment variable overrides
	viper.SetEnvPrefix("PIPCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Expand paths
	cfg.Paths.DataDir = expandPath(cfg.Paths.DataDir)
	cfg.Paths.HistoryDB = expandPath(cfg.Paths.HistoryDB)
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)
	cfg.Paths.SourcesFile = expandPath(cfg.Paths.SourcesFile)

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}

	viper.SetDefault("pip.executable", "")

	viper.SetDefault("paths.data_dir", filepath.Join(homeDir, ".local", "share", "pipctl"))
	viper.SetDefault("paths.history_db", filepath.Join(homeDir, ".local", "share", "pipctl", "history.db"))
	viper.SetDefault("paths.log_file", filepath.Join(homeDir, ".local", "share", "pipctl", "pipctl.log"))
	viper.SetDefault("paths.sources_file", filepath.Join(homeDir, ".config", "pipctl", "sources"))

	viper.SetDefault("sources.default", "")
	viper.SetDefault("sources.extra", []SourceEntry{})

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.color", "auto")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	// Expand ~
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	// Expand environment variables
	path = os.ExpandEnv(path)

	return path
}
