// Package config loads pathfy settings from pathfy.yaml, PATHFY_* environment
// variables and bound command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PATHFY"
	FileName  = "pathfy"
)

type Config struct {
	DB        DBConfig
	Log       LogConfig
	Server    ServerConfig
	Analysis  AnalysisConfig
	Evaluator EvaluatorConfig
}

type DBConfig struct {
	Path string
}

type LogConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type AnalysisConfig struct {
	Endpoint  string
	APIKey    string
	Model     string
	Timeout   time.Duration
	CacheSize int
}

type EvaluatorConfig struct {
	// UnitAware converts week-denominated approach durations to months
	// before comparing them with the user's timeline.
	UnitAware bool
}

// Enabled reports whether an analysis endpoint is configured.
func (a AnalysisConfig) Enabled() bool {
	return strings.TrimSpace(a.Endpoint) != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("analysis.endpoint", "")
	v.SetDefault("analysis.api_key", "")
	v.SetDefault("analysis.model", "gpt-4o-mini")
	v.SetDefault("analysis.timeout", "60s")
	v.SetDefault("analysis.cache_size", 64)
	v.SetDefault("evaluator.unit_aware", false)
}

// New returns a viper instance with defaults, search paths and env binding.
// file, when set, replaces the search for pathfy.yaml.
func New(file string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/pathfy")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags maps persistent CLI flags onto config keys. Missing flags are
// skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"db.path":    "db",
		"log.level":  "log-level",
		"log.format": "log-format",
	}
	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file when present and decodes every key. A missing
// file in the search path is not an error; a missing explicit file is.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		DB: DBConfig{Path: v.GetString("db.path")},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Server: ServerConfig{
			Addr:            v.GetString("server.addr"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Analysis: AnalysisConfig{
			Endpoint:  v.GetString("analysis.endpoint"),
			APIKey:    v.GetString("analysis.api_key"),
			Model:     v.GetString("analysis.model"),
			Timeout:   v.GetDuration("analysis.timeout"),
			CacheSize: v.GetInt("analysis.cache_size"),
		},
		Evaluator: EvaluatorConfig{UnitAware: v.GetBool("evaluator.unit_aware")},
	}
	if cfg.Analysis.CacheSize < 0 {
		return Config{}, fmt.Errorf("analysis.cache_size must not be negative")
	}
	return cfg, nil
}
