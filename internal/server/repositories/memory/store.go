// Package memory keeps every repository in process memory. It backs the
// memory:// DSN and the service tests.
package memory

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/ideae/internal/server/models"
)

// Store is the shared state behind the in-memory repositories. All
// mutations happen under one write lock, so each keyed update is atomic.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*models.User
	emails      map[string]string
	suggestions map[string]*models.Suggestion
	favorites   map[string]*models.Favorite
	ideas       map[string]*models.Idea
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]*models.User),
		emails:      make(map[string]string),
		suggestions: make(map[string]*models.Suggestion),
		favorites:   make(map[string]*models.Favorite),
		ideas:       make(map[string]*models.Idea),
	}
}

func (s *Store) Users() *UserRepository             { return &UserRepository{s: s} }
func (s *Store) Suggestions() *SuggestionRepository { return &SuggestionRepository{s: s} }
func (s *Store) Favorites() *FavoriteRepository     { return &FavoriteRepository{s: s} }
func (s *Store) Ideas() *IdeaRepository             { return &IdeaRepository{s: s} }

// newestFirst orders by creation time descending, then id descending.
func newestFirst[T any](items []T, created func(T) time.Time, id func(T) string) {
	slices.SortFunc(items, func(a, b T) int {
		if c := created(b).Compare(created(a)); c != 0 {
			return c
		}
		return cmp.Compare(id(b), id(a))
	})
}

func limitSlice[T any](items []T, limit int) []T {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// bumpUpdated returns now, or the smallest representable instant after
// prev when now does not move forward.
func bumpUpdated(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIdea(i *models.Idea) *models.Idea {
	c := *i
	c.Content = clonePtr(i.Content)
	c.MediaURL = clonePtr(i.MediaURL)
	c.ShareID = clonePtr(i.ShareID)
	c.Tags = append([]string{}, i.Tags...)
	return &c
}
