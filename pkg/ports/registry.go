package ports

import "context"

//go:generate mockgen -source=registry.go -destination=mocks/mocks.go -package=mocks

// QuestionRegistry answers whether a question code exists.
// Implementations must be safe for concurrent use; lookups are read-only.
type QuestionRegistry interface {
	// Exists reports whether a question with the given code is registered.
	Exists(ctx context.Context, code string) (bool, error)
}

// BatchQuestionRegistry is an optional extension of QuestionRegistry for backends
// that can resolve many codes in a single round trip.
type BatchQuestionRegistry interface {
	QuestionRegistry

	// ExistsAll reports, for every requested code, whether it is registered.
	// Codes absent from the returned map are treated as missing.
	ExistsAll(ctx context.Context, codes []string) (map[string]bool, error)
}

// NotationRegistry counts persisted notations by code.
type NotationRegistry interface {
	// CountByCode returns how many notations already use the given code.
	CountByCode(ctx context.Context, code string) (int, error)
}
