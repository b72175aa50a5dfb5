package repomanager

import (
	"context"

	"github.com/dmitrijs2005/ideae/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/ideas"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/memory"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/suggestions"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/users"
)

// MemoryRepositoryManager vends repositories over one memory.Store.
// Its data lives as long as the process.
type MemoryRepositoryManager struct {
	store *memory.Store
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: memory.NewStore()}
}

func (m *MemoryRepositoryManager) Users() users.Repository             { return m.store.Users() }
func (m *MemoryRepositoryManager) Suggestions() suggestions.Repository { return m.store.Suggestions() }
func (m *MemoryRepositoryManager) Favorites() favorites.Repository     { return m.store.Favorites() }
func (m *MemoryRepositoryManager) Ideas() ideas.Repository             { return m.store.Ideas() }

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *MemoryRepositoryManager) Ping(context.Context) error          { return nil }
func (m *MemoryRepositoryManager) Close() error                       { return nil }
