package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/ideae/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/ideas"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/suggestions"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/users"
)

// MemoryDSN selects the in-process store.
const MemoryDSN = "memory://"

// RepositoryManager vends the repositories of one storage backend.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error

	Users() users.Repository
	Suggestions() suggestions.Repository
	Favorites() favorites.Repository
	Ideas() ideas.Repository
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// New returns the manager for dsn: the in-memory store for MemoryDSN,
// PostgreSQL otherwise. The PostgreSQL connection is verified with a ping.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == MemoryDSN {
		return NewMemoryRepositoryManager(), nil
	}

	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return NewPostgresRepositoryManager(db), nil
}
