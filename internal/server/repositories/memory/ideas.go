package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/server/models"
)

type IdeaRepository struct {
	s *Store
}

func (r *IdeaRepository) Create(ctx context.Context, idea *models.Idea) (*models.Idea, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.ideas[idea.ID] = cloneIdea(idea)
	return idea, nil
}

func (r *IdeaRepository) ListByUser(ctx context.Context, userID string, ideaType models.IdeaType, limit int) ([]*models.Idea, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*models.Idea, 0)
	for _, i := range r.s.ideas {
		if i.UserID != userID || (ideaType != "" && i.Type != ideaType) {
			continue
		}
		result = append(result, cloneIdea(i))
	}
	newestFirst(result,
		func(i *models.Idea) time.Time { return i.CreatedAt },
		func(i *models.Idea) string { return i.ID })
	return limitSlice(result, limit), nil
}

// owned returns the stored idea only when userID owns it. Callers hold the lock.
func (r *IdeaRepository) owned(userID, id string) (*models.Idea, error) {
	i, ok := r.s.ideas[id]
	if !ok || models.Authorize(userID, i) != nil {
		return nil, common.ErrorNotFound
	}
	return i, nil
}

func (r *IdeaRepository) Get(ctx context.Context, userID, id string) (*models.Idea, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, err := r.owned(userID, id)
	if err != nil {
		return nil, err
	}
	return cloneIdea(i), nil
}

func (r *IdeaRepository) Update(ctx context.Context, userID, id string, patch models.IdeaPatch, now time.Time) (*models.Idea, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, err := r.owned(userID, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		i.Title = *patch.Title
	}
	if patch.Content != nil {
		i.Content = clonePtr(patch.Content)
	}
	if patch.SetTags {
		i.Tags = append([]string{}, patch.Tags...)
	}
	i.UpdatedAt = bumpUpdated(i.UpdatedAt, now)
	return cloneIdea(i), nil
}

func (r *IdeaRepository) Delete(ctx context.Context, userID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, err := r.owned(userID, id); err != nil {
		return err
	}
	delete(r.s.ideas, id)
	return nil
}

func (r *IdeaRepository) Share(ctx context.Context, userID, id, shareID string, now time.Time) (*models.Idea, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, err := r.owned(userID, id)
	if err != nil {
		return nil, err
	}
	i.IsPublic = true
	if i.ShareID == nil {
		i.ShareID = &shareID
	}
	i.UpdatedAt = bumpUpdated(i.UpdatedAt, now)
	return cloneIdea(i), nil
}

func (r *IdeaRepository) Unshare(ctx context.Context, userID, id string, now time.Time) (*models.Idea, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, err := r.owned(userID, id)
	if err != nil {
		return nil, err
	}
	i.IsPublic = false
	i.ShareID = nil
	i.UpdatedAt = bumpUpdated(i.UpdatedAt, now)
	return cloneIdea(i), nil
}

// shared projects a public idea. Callers hold the lock.
func (r *IdeaRepository) shared(i *models.Idea) *models.SharedIdea {
	author := ""
	if u, ok := r.s.users[i.UserID]; ok {
		author = u.Name
	}
	return &models.SharedIdea{
		ID:         i.ID,
		ShareID:    *i.ShareID,
		Title:      i.Title,
		Content:    clonePtr(i.Content),
		Type:       i.Type,
		MediaURL:   clonePtr(i.MediaURL),
		Tags:       append([]string{}, i.Tags...),
		AuthorName: author,
		CreatedAt:  i.CreatedAt,
	}
}

func (r *IdeaRepository) ListShared(ctx context.Context, limit int) ([]*models.SharedIdea, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*models.SharedIdea, 0)
	for _, i := range r.s.ideas {
		if i.IsPublic && i.ShareID != nil {
			result = append(result, r.shared(i))
		}
	}
	newestFirst(result,
		func(s *models.SharedIdea) time.Time { return s.CreatedAt },
		func(s *models.SharedIdea) string { return s.ID })
	return limitSlice(result, limit), nil
}

func (r *IdeaRepository) GetShared(ctx context.Context, shareID string) (*models.SharedIdea, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, i := range r.s.ideas {
		if i.IsPublic && i.ShareID != nil && *i.ShareID == shareID {
			return r.shared(i), nil
		}
	}
	return nil, common.ErrorNotFound
}
