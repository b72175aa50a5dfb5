package ideas

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ideae/internal/server/models"
)

// Repository stores ideas. Owner-keyed operations take userID and id
// together; a foreign idea is reported as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, idea *models.Idea) (*models.Idea, error)
	// ListByUser returns the newest ideas of userID, optionally restricted
	// to ideaType when it is non-empty.
	ListByUser(ctx context.Context, userID string, ideaType models.IdeaType, limit int) ([]*models.Idea, error)
	Get(ctx context.Context, userID, id string) (*models.Idea, error)
	// Update applies patch and moves updated_at to now, or strictly past its
	// previous value when now is not later.
	Update(ctx context.Context, userID, id string, patch models.IdeaPatch, now time.Time) (*models.Idea, error)
	Delete(ctx context.Context, userID, id string) error

	// Share marks the idea public. shareID is only used when the idea has
	// no share id yet.
	Share(ctx context.Context, userID, id, shareID string, now time.Time) (*models.Idea, error)
	Unshare(ctx context.Context, userID, id string, now time.Time) (*models.Idea, error)
	ListShared(ctx context.Context, limit int) ([]*models.SharedIdea, error)
	GetShared(ctx context.Context, shareID string) (*models.SharedIdea, error)
}
