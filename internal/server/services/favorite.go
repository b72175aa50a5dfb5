package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/server/models"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/favorites"
)

// FavoriteService manages the favorites of each identity.
type FavoriteService struct {
	favorites favorites.Repository
}

func NewFavoriteService(repo favorites.Repository) *FavoriteService {
	return &FavoriteService{favorites: repo}
}

func (s *FavoriteService) Create(ctx context.Context, userID, category, prompt, suggestion string) (*models.Favorite, error) {
	if strings.TrimSpace(category) == "" || strings.TrimSpace(suggestion) == "" {
		return nil, common.ErrValidation
	}

	f := &models.Favorite{
		ID:         newID(),
		UserID:     userID,
		Category:   category,
		Prompt:     prompt,
		Suggestion: suggestion,
		CreatedAt:  now(),
	}
	out, err := s.favorites.Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error creating favorite: %w", err)
	}
	return out, nil
}

func (s *FavoriteService) List(ctx context.Context, userID string) ([]*models.Favorite, error) {
	list, err := s.favorites.ListByUser(ctx, userID, models.FavoritesLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}
	return list, nil
}

// UpdateSuggestion edits the suggestion text, the only mutable field.
func (s *FavoriteService) UpdateSuggestion(ctx context.Context, userID, id, suggestion string) (*models.Favorite, error) {
	if strings.TrimSpace(suggestion) == "" {
		return nil, common.ErrValidation
	}
	f, err := s.favorites.UpdateSuggestion(ctx, userID, id, suggestion)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating favorite: %w", err)
	}
	return f, nil
}

func (s *FavoriteService) Delete(ctx context.Context, userID, id string) error {
	if err := s.favorites.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting favorite: %w", err)
	}
	return nil
}
