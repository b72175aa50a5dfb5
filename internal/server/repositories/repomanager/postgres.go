// Package repomanager provides RepositoryManager implementations for
// PostgreSQL and for the in-memory store, wiring together repository
// constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/ideae/internal/server/migrations"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/ideas"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/suggestions"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations over one connection pool.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed manager.
func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

// Users returns a users.Repository bound to the pool.
func (m *PostgresRepositoryManager) Users() users.Repository {
	return users.NewPostgresRepository(m.db)
}

// Suggestions returns a suggestions.Repository bound to the pool.
func (m *PostgresRepositoryManager) Suggestions() suggestions.Repository {
	return suggestions.NewPostgresRepository(m.db)
}

// Favorites returns a favorites.Repository bound to the pool.
func (m *PostgresRepositoryManager) Favorites() favorites.Repository {
	return favorites.NewPostgresRepository(m.db)
}

// Ideas returns an ideas.Repository bound to the pool.
func (m *PostgresRepositoryManager) Ideas() ideas.Repository {
	return ideas.NewPostgresRepository(m.db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
