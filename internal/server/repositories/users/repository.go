package users

import (
	"context"

	"github.com/dmitrijs2005/ideae/internal/server/models"
)

// Repository stores identities. Emails are expected in canonical
// (trimmed, lower-cased) form.
type Repository interface {
	// Create inserts user and fails with common.ErrEmailTaken when the
	// email is already registered.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateTheme(ctx context.Context, id string, theme models.Theme) (*models.User, error)
}
