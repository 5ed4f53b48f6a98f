package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/shuffle"
)

const appName = "deckhand"

// Config represents the application configuration
type Config struct {
	DefaultShuffle string `toml:"default_shuffle"`
	NamesFile      string `toml:"names_file,omitempty"`
	Color          bool   `toml:"color"`
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		DefaultShuffle: shuffle.KindRiffle.String(),
		Color:          true,
	}
}

// ShuffleKind returns the configured default shuffle
func (c *Config) ShuffleKind() (shuffle.Kind, error) {
	return shuffle.ParseKind(c.DefaultShuffle)
}

// Names loads the configured names file, if any
func (c *Config) Names() (deck.Names, error) {
	if c.NamesFile == "" {
		return nil, nil
	}
	return deck.LoadNames(c.NamesFile)
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetCacheDir returns the directory holding the saved session
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName)
}

// GetSessionFilePath returns the path to the saved session
func GetSessionFilePath() string {
	return filepath.Join(GetCacheDir(), "session.toml")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if _, err := config.ShuffleKind(); err != nil {
		return nil, fmt.Errorf("invalid default_shuffle in %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SetDefaultShuffle sets the default shuffle in the config
func SetDefaultShuffle(kind shuffle.Kind) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultShuffle = kind.String()
	return writeConfig(config)
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
