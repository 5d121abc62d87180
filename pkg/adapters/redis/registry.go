// Package redis provides question and notation registries backed by Redis.
//
// Question codes live in a set at "<prefix>:questions"; notation counts live in
// a hash at "<prefix>:notations" keyed by code.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/neon-law-foundation/notation/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

var (
	_ ports.BatchQuestionRegistry = (*Registry)(nil)
	_ ports.NotationRegistry      = (*Registry)(nil)
)

// Registry implements ports.BatchQuestionRegistry and ports.NotationRegistry using Redis.
type Registry struct {
	client *backend.Client
	prefix string
}

type Option func(*Registry)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(r *Registry) {
		r.prefix = prefix
	}
}

// New creates a registry from a redis:// URL.
func New(url string, opts ...Option) (*Registry, error) {
	options, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(options), opts...), nil
}

// NewFromClient creates a registry from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Registry {
	r := &Registry{
		client: client,
		prefix: "notation",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) questionsKey() string {
	return r.prefix + ":questions"
}

func (r *Registry) notationsKey() string {
	return r.prefix + ":notations"
}

// Exists reports whether code is in the question set.
func (r *Registry) Exists(ctx context.Context, code string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.questionsKey(), code).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check question in redis: %w", err)
	}
	return ok, nil
}

// ExistsAll resolves every code with a single SMISMEMBER.
func (r *Registry) ExistsAll(ctx context.Context, codes []string) (map[string]bool, error) {
	found := make(map[string]bool, len(codes))
	if len(codes) == 0 {
		return found, nil
	}

	members := make([]any, len(codes))
	for i, c := range codes {
		members[i] = c
	}
	flags, err := r.client.SMIsMember(ctx, r.questionsKey(), members...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check questions in redis: %w", err)
	}
	for i, c := range codes {
		found[c] = flags[i]
	}
	return found, nil
}

// AddQuestions registers question codes.
func (r *Registry) AddQuestions(ctx context.Context, codes ...string) error {
	if len(codes) == 0 {
		return nil
	}
	members := make([]any, len(codes))
	for i, c := range codes {
		members[i] = c
	}
	if err := r.client.SAdd(ctx, r.questionsKey(), members...).Err(); err != nil {
		return fmt.Errorf("failed to add questions to redis: %w", err)
	}
	return nil
}

// CountByCode returns the stored notation count for code.
func (r *Registry) CountByCode(ctx context.Context, code string) (int, error) {
	val, err := r.client.HGet(ctx, r.notationsKey(), code).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count notations in redis: %w", err)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt notation count for %q: %w", code, err)
	}
	return n, nil
}

// RecordNotation increments the stored notation count for code.
func (r *Registry) RecordNotation(ctx context.Context, code string) error {
	if err := r.client.HIncrBy(ctx, r.notationsKey(), code, 1).Err(); err != nil {
		return fmt.Errorf("failed to record notation in redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (r *Registry) Close() error {
	return r.client.Close()
}
