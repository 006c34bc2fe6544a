package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Input formats.
const (
	FormatBinary = "binary"
	FormatText   = "text"
)

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)

// ErrInvalid is returned when a config value is out of range.
var ErrInvalid = errors.New("invalid config")

// Config is the complete handvalue configuration. Every block is optional.
type Config struct {
	Input   *InputConfig   `hcl:"input,block"`
	Tally   *TallyConfig   `hcl:"tally,block"`
	Log     *LogConfig     `hcl:"log,block"`
	Metrics *MetricsConfig `hcl:"metrics,block"`
}

// InputConfig selects the games file.
type InputConfig struct {
	Path   string `hcl:"path,optional"`
	Format string `hcl:"format,optional"`
}

// TallyConfig tunes the counter. Zero workers means one per CPU.
type TallyConfig struct {
	Workers int `hcl:"workers,optional"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// MetricsConfig enables the Prometheus endpoint when Address is set.
type MetricsConfig struct {
	Address string `hcl:"address,optional"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: &InputConfig{
			Path:   "poker.txt",
			Format: FormatBinary,
		},
		Tally: &TallyConfig{},
		Log: &LogConfig{
			Level:  "info",
			Format: LogText,
		},
		Metrics: &MetricsConfig{},
	}
}

// LoadConfig reads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Input == nil {
		c.Input = d.Input
	}
	if c.Input.Path == "" {
		c.Input.Path = d.Input.Path
	}
	if c.Input.Format == "" {
		c.Input.Format = d.Input.Format
	}
	if c.Tally == nil {
		c.Tally = d.Tally
	}
	if c.Log == nil {
		c.Log = d.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Metrics == nil {
		c.Metrics = d.Metrics
	}
}

// Validate checks enumerated values and ranges.
func (c *Config) Validate() error {
	switch c.Input.Format {
	case FormatBinary, FormatText:
	default:
		return fmt.Errorf("%w: input format %q", ErrInvalid, c.Input.Format)
	}
	if c.Tally.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Tally.Workers)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case LogText, LogJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
