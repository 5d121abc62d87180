// Package config reads engine and server settings from the environment.
// Command-line flags override these values in cmd/notation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Registry backends.
const (
	RegistryMemory   = "memory"
	RegistryRedis    = "redis"
	RegistryPostgres = "postgres"
)

// Config captures every setting of the CLI and servers.
type Config struct {
	LogLevel  string
	LogFormat string

	// Registry selects the question and notation registry backend.
	Registry string
	// QuestionsFile and NotationsFile seed the memory registries.
	QuestionsFile string
	NotationsFile string
	RedisURL      string
	RedisPrefix   string
	DatabaseURL   string

	HTTPAddr          string
	MaxDocumentSize   int
	LookupConcurrency int
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Registry:          RegistryMemory,
		RedisPrefix:       "notation",
		HTTPAddr:          ":8080",
		MaxDocumentSize:   1 << 20,
		LookupConcurrency: 4,
	}
}

// FromEnv builds a Config from NOTATION_* environment variables so main stays lean.
func FromEnv() Config {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Config {
	cfg := Defaults()
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	str("NOTATION_LOG_LEVEL", &cfg.LogLevel)
	str("NOTATION_LOG_FORMAT", &cfg.LogFormat)
	str("NOTATION_REGISTRY", &cfg.Registry)
	str("NOTATION_QUESTIONS_FILE", &cfg.QuestionsFile)
	str("NOTATION_NOTATIONS_FILE", &cfg.NotationsFile)
	str("NOTATION_REDIS_URL", &cfg.RedisURL)
	str("NOTATION_REDIS_PREFIX", &cfg.RedisPrefix)
	str("NOTATION_DATABASE_URL", &cfg.DatabaseURL)
	str("NOTATION_HTTP_ADDR", &cfg.HTTPAddr)
	num("NOTATION_MAX_DOCUMENT_SIZE", &cfg.MaxDocumentSize)
	num("NOTATION_LOOKUP_CONCURRENCY", &cfg.LookupConcurrency)
	return cfg
}

// Validate reports every inconsistent setting.
func (c Config) Validate() error {
	var errs []error
	switch c.Registry {
	case RegistryMemory:
	case RegistryRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("redis registry requires NOTATION_REDIS_URL"))
		}
	case RegistryPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("postgres registry requires NOTATION_DATABASE_URL"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown registry backend %q", c.Registry))
	}
	if c.MaxDocumentSize <= 0 {
		errs = append(errs, fmt.Errorf("max document size must be positive, got %d", c.MaxDocumentSize))
	}
	if c.LookupConcurrency <= 0 {
		errs = append(errs, fmt.Errorf("lookup concurrency must be positive, got %d", c.LookupConcurrency))
	}
	return errors.Join(errs...)
}
