package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/server/models"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/ideas"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/suggestions"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ users.Repository       = (*UserRepository)(nil)
	_ suggestions.Repository = (*SuggestionRepository)(nil)
	_ favorites.Repository   = (*FavoriteRepository)(nil)
	_ ideas.Repository       = (*IdeaRepository)(nil)
)

var t0 = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func strp(s string) *string { return &s }

func TestUsers(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Users()

	u := &models.User{ID: "u-1", Email: "a@x.io", Name: "A", Theme: models.ThemeLight, CreatedAt: t0}
	_, err := repo.Create(ctx, u)
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{ID: "u-2", Email: "a@x.io"})
	assert.ErrorIs(t, err, common.ErrEmailTaken)

	got, err := repo.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	got.Name = "mutated"
	again, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Name)

	upd, err := repo.UpdateTheme(ctx, "u-1", models.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, upd.Theme)

	_, err = repo.GetByEmail(ctx, "b@x.io")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repo.UpdateTheme(ctx, "ghost", models.ThemeDark)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSuggestions_NewestFirstAndCapped(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Suggestions()

	for i := 0; i < 60; i++ {
		_, err := repo.Create(ctx, &models.Suggestion{
			ID: fmt.Sprintf("s-%02d", i), UserID: "u-1", CreatedAt: t0.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &models.Suggestion{ID: "other", UserID: "u-2", CreatedAt: t0.Add(time.Hour)})
	require.NoError(t, err)

	got, err := repo.ListByUser(ctx, "u-1", models.HistoryLimit)
	require.NoError(t, err)
	require.Len(t, got, models.HistoryLimit)
	assert.Equal(t, "s-59", got[0].ID)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].CreatedAt.After(got[i].CreatedAt))
		assert.Equal(t, "u-1", got[i].UserID)
	}
}

func TestFavorites_OwnerScoped(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Favorites()

	_, err := repo.Create(ctx, &models.Favorite{ID: "f-1", UserID: "alice", Category: "writing", Prompt: "p", Suggestion: "s", CreatedAt: t0})
	require.NoError(t, err)

	_, err = repo.UpdateSuggestion(ctx, "bob", "f-1", "hijack")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "bob", "f-1"), common.ErrorNotFound)

	bobs, err := repo.ListByUser(ctx, "bob", models.FavoritesLimit)
	require.NoError(t, err)
	assert.Empty(t, bobs)

	upd, err := repo.UpdateSuggestion(ctx, "alice", "f-1", "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", upd.Suggestion)
	assert.Equal(t, "writing", upd.Category)
	assert.Equal(t, "p", upd.Prompt)

	require.NoError(t, repo.Delete(ctx, "alice", "f-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "alice", "f-1"), common.ErrorNotFound)
}

func TestIdeas_UpdateAndShare(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, err := s.Users().Create(ctx, &models.User{ID: "alice", Email: "a@x.io", Name: "Alice"})
	require.NoError(t, err)
	repo := s.Ideas()

	_, err = repo.Create(ctx, &models.Idea{ID: "i-1", UserID: "alice", Title: "t", Type: models.IdeaTypeNote, Tags: []string{"a"}, CreatedAt: t0, UpdatedAt: t0})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Idea{ID: "i-2", UserID: "alice", Title: "p", Type: models.IdeaTypePhoto, CreatedAt: t0.Add(time.Second), UpdatedAt: t0})
	require.NoError(t, err)

	photos, err := repo.ListByUser(ctx, "alice", models.IdeaTypePhoto, models.IdeasLimit)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "i-2", photos[0].ID)

	all, err := repo.ListByUser(ctx, "alice", "", models.IdeasLimit)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "i-2", all[0].ID)

	_, err = repo.Get(ctx, "bob", "i-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// A clock that does not move still yields a strictly later updated_at.
	upd, err := repo.Update(ctx, "alice", "i-1", models.IdeaPatch{Content: strp("body")}, t0)
	require.NoError(t, err)
	assert.True(t, upd.UpdatedAt.After(t0))
	assert.Equal(t, "t", upd.Title)
	assert.Equal(t, []string{"a"}, upd.Tags)
	assert.Equal(t, "body", *upd.Content)

	_, err = repo.Update(ctx, "bob", "i-1", models.IdeaPatch{Title: strp("x")}, t0.Add(time.Hour))
	assert.ErrorIs(t, err, common.ErrorNotFound)
	unchanged, err := repo.Get(ctx, "alice", "i-1")
	require.NoError(t, err)
	assert.Equal(t, upd.UpdatedAt, unchanged.UpdatedAt)

	shared, err := repo.Share(ctx, "alice", "i-1", "sh-1", t0.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, shared.IsPublic)
	again, err := repo.Share(ctx, "alice", "i-1", "sh-2", t0.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "sh-1", *again.ShareID)

	pub, err := repo.GetShared(ctx, "sh-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", pub.AuthorName)
	list, err := repo.ListShared(ctx, models.SharedLimit)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.Unshare(ctx, "alice", "i-1", t0.Add(3*time.Minute))
	require.NoError(t, err)
	_, err = repo.GetShared(ctx, "sh-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "bob", "i-1"), common.ErrorNotFound)
	require.NoError(t, repo.Delete(ctx, "alice", "i-1"))
}

func TestIdeas_ForeignOwnerCannotTouch(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Ideas()

	_, err := repo.Create(ctx, &models.Idea{ID: "i-1", UserID: "alice", Title: "t", Type: models.IdeaTypeNote, Tags: []string{}, CreatedAt: t0, UpdatedAt: t0})
	require.NoError(t, err)

	_, err = repo.Share(ctx, "bob", "i-1", "sh-bob", t0.Add(time.Minute))
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repo.Unshare(ctx, "bob", "i-1", t0.Add(time.Minute))
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repo.Get(ctx, "", "i-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	got, err := repo.Get(ctx, "alice", "i-1")
	require.NoError(t, err)
	assert.False(t, got.IsPublic)
	assert.Nil(t, got.ShareID)
	assert.Equal(t, t0, got.UpdatedAt)

	_, err = repo.GetShared(ctx, "sh-bob")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestIdeas_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Ideas()
	_, err := repo.Create(ctx, &models.Idea{ID: "i-1", UserID: "alice", Title: "t", Type: models.IdeaTypeNote, CreatedAt: t0, UpdatedAt: t0})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for n := 0; n < 32; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			title := fmt.Sprintf("t-%d", n)
			_, _ = repo.Update(ctx, "alice", "i-1", models.IdeaPatch{Title: &title}, t0)
		}(n)
	}
	wg.Wait()

	got, err := repo.Get(ctx, "alice", "i-1")
	require.NoError(t, err)
	assert.Equal(t, t0.Add(32*time.Microsecond), got.UpdatedAt)
}
