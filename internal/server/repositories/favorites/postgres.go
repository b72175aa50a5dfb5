package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/dbx"
	"github.com/dmitrijs2005/ideae/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, f *models.Favorite) (*models.Favorite, error) {

	query :=
		`INSERT INTO favorites (id, user_id, category, prompt, suggestion, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.UserID, f.Category, f.Prompt, f.Suggestion, f.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Favorite, error) {

	query :=
		`SELECT id, user_id, category, prompt, suggestion, created_at FROM favorites
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Favorite, 0)

	for rows.Next() {
		f := &models.Favorite{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.Category, &f.Prompt, &f.Suggestion, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) UpdateSuggestion(ctx context.Context, userID, id, suggestion string) (*models.Favorite, error) {

	query :=
		`UPDATE favorites SET suggestion = $3
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, category, prompt, suggestion, created_at
		 `

	f := &models.Favorite{}
	err := r.db.QueryRowContext(ctx, query, id, userID, suggestion).
		Scan(&f.ID, &f.UserID, &f.Category, &f.Prompt, &f.Suggestion, &f.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {

	query := `DELETE FROM favorites WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if err := dbx.RowsAffectedOne(res, common.ErrorNotFound); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
