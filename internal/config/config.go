package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	_instrumentDefault = "EUR_USD"
	_logLevelDefault   = "info"
)

var instrumentRe = regexp.MustCompile(`^[A-Z0-9]+_[A-Z0-9]+$`)

type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Instrument string           `yaml:"instrument"`
	Oanda      Oanda            `yaml:"oanda"`
	Candles    CandlesConfig    `yaml:"candles"`
	Chart      ChartConfig      `yaml:"chart"`
	Books      BooksConfig      `yaml:"books"`
	Indicators IndicatorsConfig `yaml:"indicators"`
}

// ValidInstrument reports whether s looks like a broker instrument name, e.g. EUR_USD.
func ValidInstrument(s string) bool {
	return instrumentRe.MatchString(s)
}

func (c *Config) ValidateAndSetup() error {
	if c.LogLevel == "" {
		c.LogLevel = _logLevelDefault
	}

	c.Instrument = strings.ToUpper(c.Instrument)
	if c.Instrument == "" {
		c.Instrument = _instrumentDefault
	}
	if !ValidInstrument(c.Instrument) {
		return fmt.Errorf("invalid default instrument %q", c.Instrument)
	}

	if err := c.Oanda.Setup(); err != nil {
		return fmt.Errorf("%w: can't setup oanda", err)
	}
	if err := c.Candles.Setup(); err != nil {
		return fmt.Errorf("%w: can't setup candles", err)
	}
	c.Chart.Setup()
	c.Books.Setup()
	c.Indicators.Setup()

	return nil
}

// Load reads filename if it exists, overlays credentials from the environment
// and applies defaults. A missing file is not an error.
func Load(filename string) (Config, error) {
	var cfg Config
	input, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("%w: can't read file", err)
	default:
		if err := yaml.Unmarshal(input, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: can't unmarshal config", err)
		}
	}

	cfg.Oanda.FromEnv()

	if err := cfg.ValidateAndSetup(); err != nil {
		return cfg, fmt.Errorf("%w: can't setup cfg", err)
	}

	return cfg, nil
}
