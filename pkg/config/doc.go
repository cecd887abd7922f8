// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for tag based parsing and
// github.com/joho/godotenv for optional .env files:
//
//	type Config struct {
//	    Language   string `env:"LANGUAGE" envDefault:"en"`
//	    DateFormat string `env:"DATE_FORMAT" envDefault:"dmy"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg,
//	    config.WithPrefix("FORMVAL_"),
//	    config.WithEnvFiles(".env"),
//	); err != nil {
//	    return err
//	}
//
// Values already present in the process environment take precedence over
// .env files. WithEnvironment swaps the process environment for a fixed map,
// which keeps tests independent of the host.
//
// Load returns ErrParsingConfig joined with the parser error when a value is
// malformed or a required variable is missing, ErrReadingEnvFile for broken
// .env files and ErrNilPointer for a nil target. MustLoad panics instead.
package config
