// Package memory provides in-memory registries for tests, examples and
// CLI runs seeded from a file.
package memory

import (
	"context"
	"sync"

	"github.com/neon-law-foundation/notation/pkg/ports"
)

var (
	_ ports.BatchQuestionRegistry = (*QuestionRegistry)(nil)
	_ ports.NotationRegistry      = (*NotationRegistry)(nil)
)

// QuestionRegistry implements ports.BatchQuestionRegistry in memory.
// Safe for concurrent use.
type QuestionRegistry struct {
	mu    sync.RWMutex
	codes map[string]struct{}
}

// NewQuestionRegistry creates a registry containing codes.
func NewQuestionRegistry(codes ...string) *QuestionRegistry {
	r := &QuestionRegistry{codes: make(map[string]struct{})}
	r.Add(codes...)
	return r
}

// Add registers codes.
func (r *QuestionRegistry) Add(codes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range codes {
		r.codes[c] = struct{}{}
	}
}

// Exists reports whether code is registered.
func (r *QuestionRegistry) Exists(_ context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.codes[code]
	return ok, nil
}

// ExistsAll resolves codes under a single read lock.
func (r *QuestionRegistry) ExistsAll(_ context.Context, codes []string) (map[string]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	found := make(map[string]bool, len(codes))
	for _, c := range codes {
		_, found[c] = r.codes[c]
	}
	return found, nil
}

// NotationRegistry implements ports.NotationRegistry in memory.
// Safe for concurrent use.
type NotationRegistry struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewNotationRegistry creates a registry with one stored notation per code.
func NewNotationRegistry(codes ...string) *NotationRegistry {
	r := &NotationRegistry{counts: make(map[string]int)}
	for _, c := range codes {
		r.Add(c)
	}
	return r
}

// Add records one more stored notation using code.
func (r *NotationRegistry) Add(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[code]++
}

// CountByCode returns how many stored notations use code.
func (r *NotationRegistry) CountByCode(_ context.Context, code string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[code], nil
}
