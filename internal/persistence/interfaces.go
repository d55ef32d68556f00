// Package persistence provides the saved-idea store: interface, PostgreSQL
// implementation, and schema migrations.
package persistence

import (
	"context"

	"ideaforge/internal/core"
)

// SavedIdeaRepository handles saved-idea persistence operations.
type SavedIdeaRepository interface {
	// Save upserts one saved idea, keyed by (user, idea).
	Save(ctx context.Context, idea *core.SavedIdea) error

	// ListByUser retrieves a user's saved ideas, newest first. An empty
	// result is an empty slice, not an error.
	ListByUser(ctx context.Context, userID string) ([]core.SavedIdea, error)

	// Delete removes one saved idea for a user.
	Delete(ctx context.Context, userID, ideaID string) error
}

// Database is the full database abstraction.
type Database interface {
	SavedIdeas() SavedIdeaRepository
	Ping(ctx context.Context) error
	Close() error
}
