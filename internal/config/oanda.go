package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
)

// ErrMissingCredentials is returned before the first broker request when
// OANDA_TOKEN or OANDA_ACCOUNT is unset.
var ErrMissingCredentials = errors.New("missing oanda credentials")

type Environment string

const (
	Live     Environment = "live"
	Practice Environment = "practice"
)

const (
	_liveURL     = "https://api-fxtrade.oanda.com"
	_practiceURL = "https://api-fxpractice.oanda.com"

	_timeoutDefault           = 15 * time.Second
	_requestsPerSecondDefault = 100 // broker allows 120 per second
)

type Oanda struct {
	Environment       Environment   `yaml:"environment"`
	URL               string        `yaml:"url"` // overrides Environment when set
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond int           `yaml:"requests_per_second"`

	Token     string `yaml:"-"`
	AccountID string `yaml:"-"`
}

func (o *Oanda) FromEnv() {
	if v := os.Getenv("OANDA_TOKEN"); v != "" {
		o.Token = v
	}
	if v := os.Getenv("OANDA_ACCOUNT"); v != "" {
		o.AccountID = v
	}
	if v := os.Getenv("OANDA_ENVIRONMENT"); v != "" {
		o.Environment = Environment(v)
	}
}

// CheckCredentials is not part of Setup: commands that never reach the
// broker, and --help, must work without them.
func (o Oanda) CheckCredentials() error {
	if o.Token == "" {
		return fmt.Errorf("%w: OANDA_TOKEN is empty", ErrMissingCredentials)
	}
	if o.AccountID == "" {
		return fmt.Errorf("%w: OANDA_ACCOUNT is empty", ErrMissingCredentials)
	}
	return nil
}

func (o *Oanda) Setup() error {
	switch o.Environment {
	case "":
		o.Environment = Live
	case Live, Practice:
	default:
		return fmt.Errorf("unknown oanda environment %q", o.Environment)
	}

	if o.URL != "" {
		if _, err := url.Parse(o.URL); err != nil {
			return err
		}
	}
	if o.Timeout <= 0 {
		o.Timeout = _timeoutDefault
	}
	if o.RequestsPerSecond <= 0 {
		o.RequestsPerSecond = _requestsPerSecondDefault
	}

	return nil
}

func (o Oanda) BaseURL() string {
	if o.URL != "" {
		return o.URL
	}
	if o.Environment == Practice {
		return _practiceURL
	}
	return _liveURL
}
