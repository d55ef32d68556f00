package persistence

import (
	"context"
	"time"

	"ideaforge/internal/core"
)

// Gateway is the save/list/delete surface the HTTP and CLI layers use. It
// validates requests before touching the store, so a missing idea or user id
// never produces a database round trip.
type Gateway struct {
	repo SavedIdeaRepository
	now  func() time.Time
}

// NewGateway wraps a repository. The clock is overridable in tests.
func NewGateway(repo SavedIdeaRepository) *Gateway {
	return &Gateway{repo: repo, now: time.Now}
}

// Save persists an idea for a user, attaching the save timestamp. When a
// validation snapshot is supplied, the saved copy is marked validated.
// Saving the same idea twice updates the existing row.
func (g *Gateway) Save(ctx context.Context, idea core.Idea, userID string, snapshot *core.ValidationData) (*core.SavedIdea, error) {
	if idea.ID == "" || idea.Title == "" {
		return nil, &ValidationError{Field: "idea"}
	}
	if userID == "" {
		return nil, &ValidationError{Field: "userId"}
	}

	saved := &core.SavedIdea{
		Idea:           idea,
		UserID:         userID,
		SavedAt:        g.now().UTC(),
		Validated:      snapshot != nil,
		ValidationData: snapshot,
	}
	if err := g.repo.Save(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// List returns a user's saved ideas, newest first.
func (g *Gateway) List(ctx context.Context, userID string) ([]core.SavedIdea, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "userId"}
	}
	return g.repo.ListByUser(ctx, userID)
}

// Delete removes one saved idea for a user.
func (g *Gateway) Delete(ctx context.Context, userID, ideaID string) error {
	if userID == "" {
		return &ValidationError{Field: "userId"}
	}
	if ideaID == "" {
		return &ValidationError{Field: "ideaId"}
	}
	return g.repo.Delete(ctx, userID, ideaID)
}
