package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from file, with environment overrides. A
// local .env file is picked up first so FPDB_API_KEY can live next to the
// binary instead of in the config file. The config file itself is optional:
// everything has a default and the key can come from the environment.
func Load(configPath string) (*Config, error) {
	// best effort; a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("FPDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".fpdb"))
		}

		// Check /etc
		v.AddConfigPath("/etc/fpdb/")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// the empty default also registers the key with viper so FPDB_API_KEY
	// is seen by AutomaticEnv during Unmarshal
	v.SetDefault("api.key", "")
	v.SetDefault("api.base_url", "https://api.flightplandatabase.com")
	v.SetDefault("api.units", "AVIATION")

	v.SetDefault("search.page_size", 50)
	v.SetDefault("search.max_results", 0)
	v.SetDefault("search.sort", "created")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}

	validUnits := map[string]bool{
		"AVIATION": true,
		"METRIC":   true,
		"SI":       true,
	}
	if !validUnits[cfg.API.Units] {
		return fmt.Errorf("invalid units: %s (must be AVIATION, METRIC or SI)", cfg.API.Units)
	}

	validSorts := map[string]bool{
		"created":    true,
		"updated":    true,
		"popularity": true,
		"distance":   true,
	}
	if !validSorts[cfg.Search.Sort] {
		return fmt.Errorf("invalid sort order: %s", cfg.Search.Sort)
	}

	if cfg.Search.PageSize < 1 || cfg.Search.PageSize > 100 {
		return fmt.Errorf("search.page_size must be between 1 and 100")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
