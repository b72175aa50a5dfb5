package favorites

import (
	"context"

	"github.com/dmitrijs2005/ideae/internal/server/models"
)

// Repository stores favorites. Every keyed operation is scoped by owner:
// a record owned by someone else behaves exactly like a missing one.
type Repository interface {
	Create(ctx context.Context, f *models.Favorite) (*models.Favorite, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Favorite, error)
	UpdateSuggestion(ctx context.Context, userID, id, suggestion string) (*models.Favorite, error)
	Delete(ctx context.Context, userID, id string) error
}
