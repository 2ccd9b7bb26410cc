// Package config loads cp4-practice settings from defaults, environment
// variables, and an optional YAML file
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/cp4-practice/internal/scraper"
)

// Config holds cp4-practice configuration.
// Loaded from ./config.yaml or ~/.cp4-practice/config.yaml when present.
type Config struct {
	BaseURL      string        `mapstructure:"base_url" yaml:"base_url"`
	UserAgent    string        `mapstructure:"user_agent" yaml:"user_agent"`
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
	ChapterDelay time.Duration `mapstructure:"chapter_delay" yaml:"chapter_delay"`
	DataDir      string        `mapstructure:"data_dir" yaml:"data_dir"`
	Workspace    string        `mapstructure:"workspace" yaml:"workspace"`
	SourceExt    string        `mapstructure:"source_ext" yaml:"source_ext"`
	LogLevel     string        `mapstructure:"log_level" yaml:"log_level"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:      scraper.ProblemsURL,
		UserAgent:    scraper.UserAgent,
		Timeout:      scraper.Timeout,
		ChapterDelay: scraper.ChapterDelay,
		DataDir:      "~/.local/share/cp4-practice",
		Workspace:    "~/cp4-practice",
		SourceExt:    "",
		LogLevel:     "INFO",
	}
}

// Load reads configuration into an immutable Config. Precedence, highest
// first: CP4_* environment variables, the config file, built-in defaults.
// When cfgFile is empty the file is searched in . and ~/.cp4-practice; a
// missing file is fine, a malformed one is not.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("base_url", defaults.BaseURL)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("chapter_delay", defaults.ChapterDelay)
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("workspace", defaults.Workspace)
	v.SetDefault("source_ext", defaults.SourceExt)
	v.SetDefault("log_level", defaults.LogLevel)

	// Environment variables with CP4_ prefix
	v.SetEnvPrefix("CP4")
	v.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cp4-practice")
	}

	// Try to read config file (not required)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// fileConfig mirrors Config with string durations so the generated file
// stays readable.
type fileConfig struct {
	BaseURL      string `yaml:"base_url"`
	UserAgent    string `yaml:"user_agent"`
	Timeout      string `yaml:"timeout"`
	ChapterDelay string `yaml:"chapter_delay"`
	DataDir      string `yaml:"data_dir"`
	Workspace    string `yaml:"workspace"`
	SourceExt    string `yaml:"source_ext"`
	LogLevel     string `yaml:"log_level"`
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	defaults := DefaultConfig()
	data, err := yaml.Marshal(fileConfig{
		BaseURL:      defaults.BaseURL,
		UserAgent:    defaults.UserAgent,
		Timeout:      defaults.Timeout.String(),
		ChapterDelay: defaults.ChapterDelay.String(),
		DataDir:      defaults.DataDir,
		Workspace:    defaults.Workspace,
		SourceExt:    defaults.SourceExt,
		LogLevel:     defaults.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := []byte(`# cp4-practice configuration
# Every value can also be set with a CP4_* environment variable,
# e.g. CP4_DATA_DIR overrides data_dir.

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
