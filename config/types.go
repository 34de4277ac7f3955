package config

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds Flight Plan Database connection details. An empty key
// makes all requests anonymously against the lower IP-based quota.
type APIConfig struct {
	Key     string `mapstructure:"key"`
	BaseURL string `mapstructure:"base_url"`
	Units   string `mapstructure:"units"`
}

// SearchConfig contains defaults for paginated listing commands
type SearchConfig struct {
	PageSize   int    `mapstructure:"page_size"`
	MaxResults int    `mapstructure:"max_results"`
	Sort       string `mapstructure:"sort"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
