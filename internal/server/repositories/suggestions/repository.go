package suggestions

import (
	"context"

	"github.com/dmitrijs2005/ideae/internal/server/models"
)

// Repository stores generation history. Records are insert-only.
type Repository interface {
	Create(ctx context.Context, s *models.Suggestion) (*models.Suggestion, error)
	// ListByUser returns the newest limit records owned by userID,
	// newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Suggestion, error)
}
