package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routeopt/geo"
	"github.com/katalvlaran/routeopt/internal/logging"
)

// Environment variables read by Load.
const (
	EnvConfig      = "ROUTEOPT_CONFIG"
	EnvLogLevel    = "ROUTEOPT_LOG_LEVEL"
	EnvLogFormat   = "ROUTEOPT_LOG_FORMAT"
	EnvMetric      = "ROUTEOPT_METRIC"
	EnvMaxScale    = "ROUTEOPT_MAX_SCALE"
	EnvMaxPasses   = "ROUTEOPT_MAX_PASSES"
	EnvMetricsFile = "ROUTEOPT_METRICS_FILE"
)

// DefaultEnvFile is read by LoadEnvFile when no path is given.
const DefaultEnvFile = ".env"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the routeopt command configuration.
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Distance struct {
		Metric       string  `yaml:"metric"`
		InitialScale float64 `yaml:"initial_scale"`
		MaxScale     float64 `yaml:"max_scale"`
	} `yaml:"distance"`
	Solver struct {
		MaxPasses int `yaml:"max_passes"`
	} `yaml:"solver"`
	Metrics struct {
		File    string `yaml:"file"`
		Runtime bool   `yaml:"runtime"`
	} `yaml:"metrics"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Format = logging.FormatAuto
	c.Distance.Metric = geo.MetricRhumbline.String()
	c.Distance.InitialScale = 1
	c.Distance.MaxScale = 64
	c.Solver.MaxPasses = 0
	return c
}

// Load starts from Default, overlays the YAML file at path (or at
// $ROUTEOPT_CONFIG when path is empty), then applies environment overrides
// and validates the result. No file at all is not an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = decode(b, &c); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// decode rejects unknown keys so typos surface instead of silently using defaults.
func decode(b []byte, c *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvMetric); v != "" {
		c.Distance.Metric = v
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		c.Metrics.File = v
	}
	if v := os.Getenv(EnvMaxScale); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMaxScale, v, err)
		}
		c.Distance.MaxScale = f
	}
	if v := os.Getenv(EnvMaxPasses); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMaxPasses, v, err)
		}
		c.Solver.MaxPasses = n
	}
	return nil
}

// Validate checks every field against the values the command accepts.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	if _, err := geo.ParseMetric(c.Distance.Metric); err != nil {
		return fmt.Errorf("%w: distance.metric: %v", ErrInvalid, err)
	}
	if !(c.Distance.InitialScale > 0) || !(c.Distance.MaxScale >= c.Distance.InitialScale) {
		return fmt.Errorf("%w: distance scale range [%g, %g]", ErrInvalid, c.Distance.InitialScale, c.Distance.MaxScale)
	}
	if c.Solver.MaxPasses < 0 {
		return fmt.Errorf("%w: solver.max_passes %d", ErrInvalid, c.Solver.MaxPasses)
	}

	return nil
}

// Metric returns the parsed distance metric. Call after Validate.
func (c Config) Metric() geo.Metric {
	m, _ := geo.ParseMetric(c.Distance.Metric)
	return m
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. An empty path means
// DefaultEnvFile, whose absence is ignored.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load env file %s: %w", path, err)
	}

	return nil
}
