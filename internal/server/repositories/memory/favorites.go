package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/server/models"
)

type FavoriteRepository struct {
	s *Store
}

func (r *FavoriteRepository) Create(ctx context.Context, f *models.Favorite) (*models.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := *f
	r.s.favorites[c.ID] = &c
	return f, nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Favorite, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*models.Favorite, 0)
	for _, f := range r.s.favorites {
		if f.UserID == userID {
			c := *f
			result = append(result, &c)
		}
	}
	newestFirst(result,
		func(f *models.Favorite) time.Time { return f.CreatedAt },
		func(f *models.Favorite) string { return f.ID })
	return limitSlice(result, limit), nil
}

// owned returns the favorite only when userID owns it. Callers hold the lock.
func (r *FavoriteRepository) owned(userID, id string) (*models.Favorite, error) {
	f, ok := r.s.favorites[id]
	if !ok || models.Authorize(userID, f) != nil {
		return nil, common.ErrorNotFound
	}
	return f, nil
}

func (r *FavoriteRepository) UpdateSuggestion(ctx context.Context, userID, id, suggestion string) (*models.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, err := r.owned(userID, id)
	if err != nil {
		return nil, err
	}
	f.Suggestion = suggestion
	c := *f
	return &c, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, err := r.owned(userID, id); err != nil {
		return err
	}
	delete(r.s.favorites, id)
	return nil
}
