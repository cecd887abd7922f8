package form

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formval/pkg/config"
	"github.com/dmitrymomot/formval/pkg/typecast"
)

// EnvPrefix is the prefix of every environment variable read by LoadConfig.
const EnvPrefix = "FORMVAL_"

// IntervalPolicy decides how many intervals are evaluated in a pass.
type IntervalPolicy string

const (
	// PolicyFirstFailure stops at the first failing interval.
	PolicyFirstFailure IntervalPolicy = "first-failure"
	// PolicyAll evaluates every interval and reports all failures.
	PolicyAll IntervalPolicy = "all"
)

// ParseIntervalPolicy resolves a policy name. Empty means first-failure.
func ParseIntervalPolicy(s string) (IntervalPolicy, error) {
	switch IntervalPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyFirstFailure:
		return PolicyFirstFailure, nil
	case PolicyAll:
		return PolicyAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// Config is the engine configuration shared by every form of an Engine.
type Config struct {
	// Language selects the dictionary of forms created without WithLanguage.
	Language string `env:"LANGUAGE" envDefault:"en"`
	// DateFormat is a token layout such as "dd/MM/yyyy" or one of the aliases dmy, mdy, ymd.
	DateFormat string `env:"DATE_FORMAT" envDefault:"dmy"`

	UseStyle         bool `env:"USE_STYLE" envDefault:"true"`
	HighlightErrors  bool `env:"HIGHLIGHT_ERRORS" envDefault:"true"`
	MessageErrors    bool `env:"MESSAGE_ERRORS" envDefault:"true"`
	HighlightSuccess bool `env:"HIGHLIGHT_SUCCESS" envDefault:"false"`

	IntervalPolicy IntervalPolicy `env:"INTERVAL_POLICY" envDefault:"first-failure"`
	// StrictSuccess lets interval and custom validation failures fail the pass.
	// When false only field constraints decide the outcome.
	StrictSuccess bool `env:"STRICT_SUCCESS" envDefault:"false"`
	// CastIntervalFields compares interval fields as their data type instead
	// of comparing raw strings.
	CastIntervalFields bool `env:"CAST_INTERVAL_FIELDS" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Env       string `env:"ENV" envDefault:"development"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Language:        "en",
		DateFormat:      "dmy",
		UseStyle:        true,
		HighlightErrors: true,
		MessageErrors:   true,
		IntervalPolicy:  PolicyFirstFailure,
		LogLevel:        "info",
		LogFormat:       "text",
		Env:             "development",
	}
}

// LoadConfig reads Config from FORMVAL_ prefixed environment variables.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the values that would make the engine unusable.
func (c Config) Validate() error {
	if _, err := ParseIntervalPolicy(string(c.IntervalPolicy)); err != nil {
		return err
	}
	if _, err := typecast.NewDateFormat(c.DateFormat); err != nil {
		return err
	}
	return nil
}
