package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "https://api.flightplandatabase.com",
			Units:   "AVIATION",
		},
		Search: SearchConfig{
			PageSize: 50,
			Sort:     "created",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:   "empty key is allowed (anonymous access)",
			mutate: func(c *Config) { c.API.Key = "" },
		},
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.API.BaseURL = "" },
			wantErr: "base_url is required",
		},
		{
			name:    "invalid units",
			mutate:  func(c *Config) { c.API.Units = "IMPERIAL" },
			wantErr: "invalid units",
		},
		{
			name:    "invalid sort",
			mutate:  func(c *Config) { c.Search.Sort = "alphabetical" },
			wantErr: "invalid sort order",
		},
		{
			name:    "page size too large",
			mutate:  func(c *Config) { c.Search.PageSize = 500 },
			wantErr: "page_size",
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "invalid logging level",
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	// no config file anywhere: defaults apply and the key stays empty
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.API.Key)
	assert.Equal(t, "https://api.flightplandatabase.com", cfg.API.BaseURL)
	assert.Equal(t, "AVIATION", cfg.API.Units)
	assert.Equal(t, 50, cfg.Search.PageSize)
	assert.Equal(t, "created", cfg.Search.Sort)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  key: test-key
  units: METRIC
search:
  page_size: 25
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.API.Key)
	assert.Equal(t, "METRIC", cfg.API.Units)
	assert.Equal(t, 25, cfg.Search.PageSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched values keep their defaults
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FPDB_API_KEY", "env-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.API.Key)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
