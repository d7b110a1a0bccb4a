package config

import (
	"fmt"
	"strings"

	"github.com/2beens/fitlog/pkg"

	"github.com/BurntSushi/toml"
)

const (
	DefaultExportExercise = "Bench Press"
	DefaultExportPath     = "1RM_data.csv"
	DefaultLogLevel       = "info"
)

type Config struct {
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// 1RM export
	ExportExercise string `toml:"export_exercise"`
	ExportPath     string `toml:"export_path"`
	// print the chronological log next to the per-date database
	ShowLog bool `toml:"show_log"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func Default() *Config {
	return &Config{
		Environment:    "development",
		LogLevel:       DefaultLogLevel,
		ExportExercise: DefaultExportExercise,
		ExportPath:     DefaultExportPath,
	}
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the config for env from the TOML file at path.
// A missing file is not an error, the defaults are used instead.
// Empty values in the file fall back to their defaults.
func Load(env, path string) (*Config, error) {
	defaults := Default()
	if _, err := (&Toml{}).Get(env); err != nil {
		return nil, err
	}

	fileExists, err := pkg.PathExists(path, false)
	if err != nil {
		return nil, fmt.Errorf("check config file: %w", err)
	}
	if !fileExists {
		defaults.Environment = strings.ToLower(env)
		return defaults, nil
	}

	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found in [%s]", env, path)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.ExportExercise == "" {
		cfg.ExportExercise = defaults.ExportExercise
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = defaults.ExportPath
	}

	return cfg, nil
}
