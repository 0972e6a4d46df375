package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/linalg/pkg/linalg"
)

// EnvPrefix is the prefix for environment overrides, e.g. LINALG_OUTPUT_FORMAT
const EnvPrefix = "LINALG"

// Config represents the CLI configuration
type Config struct {
	Precision PrecisionConfig `yaml:"precision" mapstructure:"precision"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// PrecisionConfig contains the epsilons used by the geometric predicates
type PrecisionConfig struct {
	ZeroEpsilon         float64 `yaml:"zero_epsilon" mapstructure:"zero_epsilon"`
	OrthogonalTolerance float64 `yaml:"orthogonal_tolerance" mapstructure:"orthogonal_tolerance"`
	ParallelTolerance   float64 `yaml:"parallel_tolerance" mapstructure:"parallel_tolerance"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format        string `yaml:"format" mapstructure:"format"`
	DecimalPlaces int    `yaml:"decimal_places" mapstructure:"decimal_places"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	tol := linalg.DefaultTolerance()

	return &Config{
		Precision: PrecisionConfig{
			ZeroEpsilon:         tol.Zero,
			OrthogonalTolerance: tol.Orthogonal,
			ParallelTolerance:   tol.Parallel,
		},
		Output: OutputConfig{
			Format:        "text",
			DecimalPlaces: 6,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultConfigPath returns $HOME/.linalg/config.yaml
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".linalg", "config.yaml"), nil
}

// LoadConfig reads the config file at path, applies LINALG_* environment
// overrides and validates the result. An empty path searches $HOME/.linalg
// and the working directory; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".linalg"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("precision.zero_epsilon", config.Precision.ZeroEpsilon)
	v.SetDefault("precision.orthogonal_tolerance", config.Precision.OrthogonalTolerance)
	v.SetDefault("precision.parallel_tolerance", config.Precision.ParallelTolerance)
	v.SetDefault("output.format", config.Output.Format)
	v.SetDefault("output.decimal_places", config.Output.DecimalPlaces)
	v.SetDefault("log.level", config.Log.Level)
	v.SetDefault("log.format", config.Log.Format)
}

// SaveConfig writes the configuration as YAML to path
func SaveConfig(config *Config, path string) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if err := config.Tolerance().Validate(); err != nil {
		return err
	}

	switch config.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %q", config.Output.Format)
	}

	if config.Output.DecimalPlaces < 0 || config.Output.DecimalPlaces > 12 {
		return fmt.Errorf("decimal places must be between 0 and 12, got %d", config.Output.DecimalPlaces)
	}

	if _, err := config.LogLevel(); err != nil {
		return err
	}

	switch config.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %q", config.Log.Format)
	}

	return nil
}

// Tolerance converts the precision section into linalg tolerances
func (c *Config) Tolerance() linalg.Tolerance {
	return linalg.Tolerance{
		Zero:       c.Precision.ZeroEpsilon,
		Orthogonal: c.Precision.OrthogonalTolerance,
		Parallel:   c.Precision.ParallelTolerance,
	}
}

// LogLevel parses the configured log level
func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %q", c.Log.Level)
	}
	return level, nil
}
