package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Entry    Entry    `mapstructure:"entry"`
	Upstream Upstream `mapstructure:"upstream"`
	Logger   Logger   `mapstructure:"logger"`
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
}

// Entry holds the configuration for trade-entry sessions.
type Entry struct {
	// AutoDeriveExpiry controls whether a trade-date edit overwrites the
	// expiry with the derived last-Thursday date. On by default; turning
	// it off lets manual expiry edits survive later date edits.
	AutoDeriveExpiry bool `mapstructure:"auto_derive_expiry"`
	// Sink selects the submission transport: "http" posts to the
	// upstream save-trade endpoint, "local" persists to the database.
	Sink string `mapstructure:"sink"`
}

// Upstream holds the configuration for the save-trade HTTP endpoint.
type Upstream struct {
	BaseURL        string  `mapstructure:"base_url"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// Server holds the configuration for the web server.
type Server struct {
	Port int `mapstructure:"port"`
}

// Database holds the configuration for the database.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or yaml, json

	// Allow environment variables to override config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("entry.auto_derive_expiry", true)
	viper.SetDefault("entry.sink", "http")
	viper.SetDefault("upstream.rate_limit", 20)      // requests per second
	viper.SetDefault("upstream.rate_limit_burst", 5) // burst size

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
