package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ideae/internal/server/models"
)

type SuggestionRepository struct {
	s *Store
}

func (r *SuggestionRepository) Create(ctx context.Context, sg *models.Suggestion) (*models.Suggestion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := *sg
	r.s.suggestions[c.ID] = &c
	return sg, nil
}

func (r *SuggestionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Suggestion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*models.Suggestion, 0)
	for _, sg := range r.s.suggestions {
		if sg.UserID == userID {
			c := *sg
			result = append(result, &c)
		}
	}
	newestFirst(result,
		func(s *models.Suggestion) time.Time { return s.CreatedAt },
		func(s *models.Suggestion) string { return s.ID })
	return limitSlice(result, limit), nil
}
