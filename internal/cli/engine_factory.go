// Package cli wires configuration, registries and presentation for cmd/notation.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/neon-law-foundation/notation"
	"github.com/neon-law-foundation/notation/internal/config"
	"github.com/neon-law-foundation/notation/pkg/adapters/memory"
	"github.com/neon-law-foundation/notation/pkg/adapters/postgres"
	"github.com/neon-law-foundation/notation/pkg/adapters/redis"
	"github.com/neon-law-foundation/notation/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Registries holds the lookup backends selected by configuration.
// A nil registry disables the corresponding check.
type Registries struct {
	Questions ports.QuestionRegistry
	Notations ports.NotationRegistry
	closer    io.Closer
}

// Close releases the backend connection, if any.
func (r *Registries) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// OpenRegistries connects to the backend named by cfg.Registry.
func OpenRegistries(ctx context.Context, cfg config.Config) (*Registries, error) {
	switch cfg.Registry {
	case config.RegistryMemory, "":
		regs := &Registries{}
		if cfg.QuestionsFile != "" {
			q, err := memory.LoadQuestionRegistry(cfg.QuestionsFile)
			if err != nil {
				return nil, err
			}
			regs.Questions = q
		}
		if cfg.NotationsFile != "" {
			n, err := memory.LoadNotationRegistry(cfg.NotationsFile)
			if err != nil {
				return nil, err
			}
			regs.Notations = n
		}
		return regs, nil

	case config.RegistryRedis:
		r, err := redis.New(cfg.RedisURL, redis.WithPrefix(cfg.RedisPrefix))
		if err != nil {
			return nil, err
		}
		return &Registries{Questions: r, Notations: r, closer: r}, nil

	case config.RegistryPostgres:
		r, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return nil, fmt.Errorf("connect to postgres registry: %w", err)
		}
		return &Registries{Questions: r, Notations: r, closer: r}, nil

	default:
		return nil, fmt.Errorf("unknown registry backend %q", cfg.Registry)
	}
}

// NewEngine builds a notation engine from cfg. reg may be nil to disable metrics.
func NewEngine(cfg config.Config, logger *slog.Logger, regs *Registries, reg prometheus.Registerer) *notation.Engine {
	opts := []notation.Option{
		notation.WithLogger(logger),
		notation.WithMaxDocumentSize(cfg.MaxDocumentSize),
		notation.WithLookupConcurrency(cfg.LookupConcurrency),
	}
	if regs != nil {
		if regs.Questions != nil {
			opts = append(opts, notation.WithQuestionRegistry(regs.Questions))
		}
		if regs.Notations != nil {
			opts = append(opts, notation.WithNotationRegistry(regs.Notations))
		}
	}
	if reg != nil {
		opts = append(opts, notation.WithMetrics(reg))
	}
	return notation.New(opts...)
}
