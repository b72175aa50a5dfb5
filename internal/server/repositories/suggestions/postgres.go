package suggestions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ideae/internal/dbx"
	"github.com/dmitrijs2005/ideae/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.Suggestion) (*models.Suggestion, error) {

	query :=
		`INSERT INTO suggestions (id, user_id, category, prompt, suggestion, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.Category, s.Prompt, s.Suggestion, s.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Suggestion, error) {

	query :=
		`SELECT id, user_id, category, prompt, suggestion, created_at FROM suggestions
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Suggestion, 0)

	for rows.Next() {
		s := &models.Suggestion{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.Category, &s.Prompt, &s.Suggestion, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
