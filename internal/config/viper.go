package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key read from the environment,
// e.g. TXN_LOG_LEVEL for log.level.
const EnvPrefix = "TXN"

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// LogConfig controls the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// InputConfig controls where and how transaction records are read.
type InputConfig struct {
	Files          []string `mapstructure:"files" yaml:"files"`
	Delimiter      string   `mapstructure:"delimiter" yaml:"delimiter"`
	MaxConcurrency int      `mapstructure:"max_concurrency" yaml:"max_concurrency"`
	Validate       bool     `mapstructure:"validate" yaml:"validate"`
}

// AnalysisConfig holds query defaults.
type AnalysisConfig struct {
	Precision        int32 `mapstructure:"precision" yaml:"precision"`
	DescriptionLimit int   `mapstructure:"description_limit" yaml:"description_limit"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
}

// InitializeConfig loads configuration with this precedence, highest first:
// TXN_* environment variables, config.yaml, built-in defaults.
// config.yaml is searched in $HOME/.txn-analyzer, ./.txn-analyzer and the current directory.
func InitializeConfig() (*Config, error) {
	return InitializeConfigWithFile("")
}

// InitializeConfigWithFile behaves like InitializeConfig but reads the given config
// file instead of searching the default locations. An empty path searches.
// An explicitly named file that cannot be read is an error.
func InitializeConfigWithFile(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.txn-analyzer")
		v.AddConfigPath(".txn-analyzer")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration built from defaults alone.
func Default() *Config {
	return &Config{
		Log:      LogConfig{Level: "info", Format: FormatText},
		Input:    InputConfig{Files: []string{"transactions.json"}, Delimiter: ",", MaxConcurrency: 4},
		Analysis: AnalysisConfig{Precision: 2, DescriptionLimit: 10},
		Output:   OutputConfig{Format: FormatText},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("input.files", d.Input.Files)
	v.SetDefault("input.delimiter", d.Input.Delimiter)
	v.SetDefault("input.max_concurrency", d.Input.MaxConcurrency)
	v.SetDefault("input.validate", d.Input.Validate)

	v.SetDefault("analysis.precision", d.Analysis.Precision)
	v.SetDefault("analysis.description_limit", d.Analysis.DescriptionLimit)

	v.SetDefault("output.format", d.Output.Format)
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != FormatText && config.Log.Format != FormatJSON {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.Input.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Input.Delimiter)
	}

	if config.Input.MaxConcurrency < 1 {
		return fmt.Errorf("input.max_concurrency must be at least 1, got: %d", config.Input.MaxConcurrency)
	}

	if config.Analysis.Precision < 0 {
		return fmt.Errorf("analysis.precision must not be negative, got: %d", config.Analysis.Precision)
	}

	if config.Analysis.DescriptionLimit < 0 {
		return fmt.Errorf("analysis.description_limit must not be negative, got: %d", config.Analysis.DescriptionLimit)
	}

	if !IsValidOutputFormat(config.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be 'text', 'json' or 'yaml')", config.Output.Format)
	}

	return nil
}

// IsValidOutputFormat reports whether format is one of the supported output formats.
func IsValidOutputFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r := []rune(c.Input.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}
