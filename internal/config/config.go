package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds API credentials for the catalog providers
type CatalogConfig struct {
	TMDBKey  string `mapstructure:"tmdb_key"` // TMDB API key (required)
	OMDBKey  string `mapstructure:"omdb_key"` // OMDb API key (optional, detail ratings)
	Language string `mapstructure:"language"` // e.g. "en-US"
}

// StorageConfig holds local persistence settings
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"` // collections database directory
}

// UIConfig holds UI configuration
type UIConfig struct {
	// DefaultSort orders the collection views: "newest" (release date
	// descending) or "insertion" (stored order).
	DefaultSort string `mapstructure:"default_sort"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Language: "en-US",
		},
		Storage: StorageConfig{
			DataDir: defaultDataPath(),
		},
		UI: UIConfig{
			DefaultSort: "newest",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cinemate", "cinemate.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "cinemate", "cinemate.log")
	}
}

// defaultDataPath returns the default collections database directory
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "cinemate", "data")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "cinemate", "data")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cinemate")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cinemate")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("CINEMATE")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("catalog.tmdb_key", cfg.Catalog.TMDBKey)
	viper.Set("catalog.omdb_key", cfg.Catalog.OMDBKey)
	viper.Set("catalog.language", cfg.Catalog.Language)

	viper.Set("storage.data_dir", cfg.Storage.DataDir)

	viper.Set("ui.default_sort", cfg.UI.DefaultSort)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	return writeConfigFile()
}

// SaveAPIKeys updates just the catalog credentials in the configuration
func SaveAPIKeys(tmdbKey, omdbKey string) error {
	viper.Set("catalog.tmdb_key", tmdbKey)
	if omdbKey != "" {
		viper.Set("catalog.omdb_key", omdbKey)
	}
	return writeConfigFile()
}

func writeConfigFile() error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// IsConfigured returns true if a catalog API key is set
func (c *Config) IsConfigured() bool {
	return c.Catalog.TMDBKey != ""
}
