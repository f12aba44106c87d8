package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"subdomainCrawler/domain/pipeline"
	"subdomainCrawler/domain/urlNormalizer"
)

const envPrefix = "CRAWL"

// ConfigError is returned for any invalid input, before the crawl starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type AppConfig struct {
	SeedURL   *url.URL
	UserAgent string
	Pipeline  pipeline.Config
	Log       LogConfig
}

type LogConfig struct {
	Level string
	File  string // empty logs to stderr only

	// Rotation of File.
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.max-size", 10)
	v.SetDefault("log.max-backups", 3)
	v.SetDefault("log.max-age", 28)
	v.SetDefault("log.compress", true)
	return v
}

// loadConfig resolves flags, environment and the optional config file into an AppConfig.
// Flags win over the environment, which wins over the file.
func loadConfig(v *viper.Viper, args []string) (AppConfig, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return AppConfig{}, &ConfigError{Field: "config", Reason: err.Error()}
		}
	}

	if len(args) != 1 {
		return AppConfig{}, &ConfigError{Field: "URL", Reason: "exactly one seed URL is required"}
	}
	seed, err := parseSeed(args[0])
	if err != nil {
		return AppConfig{}, err
	}

	cfg := AppConfig{
		SeedURL:   seed,
		UserAgent: v.GetString("user-agent"),
		Pipeline: pipeline.Config{
			Concurrency:       v.GetInt("concurrency"),
			Timeout:           time.Duration(v.GetInt("timeout")) * time.Second,
			QueueSize:         v.GetInt("queue-size"),
			Strict:            v.GetBool("strict"),
			RequestsPerSecond: v.GetFloat64("rate"),
			SkipExtensions:    v.GetStringSlice("skip-extensions"),
		},
		Log: LogConfig{
			Level:      v.GetString("log-level"),
			File:       v.GetString("log-file"),
			MaxSize:    v.GetInt("log.max-size"),
			MaxBackups: v.GetInt("log.max-backups"),
			MaxAge:     v.GetInt("log.max-age"),
			Compress:   v.GetBool("log.compress"),
		},
	}

	if err := cfg.Pipeline.Validate(); err != nil {
		return AppConfig{}, &ConfigError{Field: "options", Reason: strings.TrimPrefix(err.Error(), pipeline.ErrInvalidConfig.Error()+": ")}
	}
	return cfg, nil
}

func parseSeed(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &ConfigError{Field: "URL", Reason: err.Error()}
	}
	if !u.IsAbs() {
		return nil, &ConfigError{Field: "URL", Reason: fmt.Sprintf("%q is not an absolute URL", raw)}
	}

	seed, err := urlNormalizer.Normalize(u)
	switch {
	case errors.Is(err, urlNormalizer.ErrUnsupportedScheme):
		return nil, &ConfigError{Field: "URL", Reason: fmt.Sprintf("scheme %q is not http or https", u.Scheme)}
	case err != nil:
		return nil, &ConfigError{Field: "URL", Reason: err.Error()}
	}
	return seed, nil
}
