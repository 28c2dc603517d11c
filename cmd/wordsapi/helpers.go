package main

import (
	"fmt"

	"github.com/lexigo/wordsapi"
	"github.com/lexigo/wordsapi/internal/config"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newService builds a Service from the loaded config, backed by the
// configured file cache.
func newService(cfg *config.Config) (*wordsapi.Service, error) {
	if err := cfg.ValidateDictionary(); err != nil {
		return nil, err
	}

	return wordsapi.NewService(wordsapi.Config{
		APIKey:  cfg.Dictionary.Key,
		Host:    cfg.Dictionary.Host,
		Timeout: cfg.Dictionary.Timeout(),
		Cache:   wordsapi.NewFileCache(cfg.Dictionary.CacheDirectory),
	}), nil
}
