package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix restricts parsing to variables starting with prefix; the prefix
// is prepended to every env tag.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles reads additional .env files. Variables already present in the
// environment win over file values, and earlier files win over later ones.
// Missing files are skipped.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		for _, f := range files {
			if f != "" {
				o.files = append(o.files, f)
			}
		}
	}
}

// WithEnvironment replaces the process environment with env.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) {
		if env != nil {
			o.environment = maps.Clone(env)
		}
	}
}

// Load parses environment variables into the struct pointed to by v
// according to its `env` and `envDefault` tags.
//
// Example:
//
//	type Config struct {
//		Language string `env:"LANGUAGE" envDefault:"en"`
//		Strict   bool   `env:"STRICT_SUCCESS"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("FORMVAL_"), config.WithEnvFiles(".env"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	environ := o.environment
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	for _, file := range o.files {
		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
		for k, val := range values {
			if _, set := environ[k]; !set {
				environ[k] = val
			}
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: environ,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
