package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Outputs    OutputsConfig    `mapstructure:"outputs"`
}

type DictionaryConfig struct {
	CacheDirectory string `mapstructure:"cache_directory"`
	Host           string `mapstructure:"host" validate:"required"`
	Key            string `mapstructure:"key" validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// Timeout returns the configured request timeout.
func (c DictionaryConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

type OutputsConfig struct {
	ReportDirectory string `mapstructure:"report_directory"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordsapi")
	}

	v.SetDefault("dictionary.cache_directory", filepath.Join("dictionaries", "wordsapi"))
	v.SetDefault("dictionary.host", "wordsapiv1.p.rapidapi.com")
	v.SetDefault("dictionary.timeout_seconds", 5)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "wordsapi")
	v.SetDefault("outputs.report_directory", filepath.Join("outputs", "reports"))

	// Bind API and database credentials to environment variables only
	// (not from config file)
	if err := v.BindEnv("dictionary.host", "RAPID_API_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_HOST environment variable: %w", err)
	}
	if err := v.BindEnv("dictionary.key", "RAPID_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("database.username", "WORDSAPI_DB_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDSAPI_DB_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "WORDSAPI_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDSAPI_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
