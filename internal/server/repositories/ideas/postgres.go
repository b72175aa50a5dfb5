package ideas

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/dbx"
	"github.com/dmitrijs2005/ideae/internal/server/models"
	"github.com/lib/pq"
)

const ideaColumns = `id, user_id, title, content, idea_type, media_url, tags, is_public, share_id, created_at, updated_at`

const sharedColumns = `i.id, i.share_id, i.title, i.content, i.idea_type, i.media_url, i.tags, u.name, i.created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func nullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func scanIdea(row scanner) (*models.Idea, error) {
	idea := &models.Idea{}
	var content, mediaURL, shareID sql.NullString
	var ideaType string
	var tags pq.StringArray

	err := row.Scan(&idea.ID, &idea.UserID, &idea.Title, &content, &ideaType, &mediaURL,
		&tags, &idea.IsPublic, &shareID, &idea.CreatedAt, &idea.UpdatedAt)
	if err != nil {
		return nil, err
	}

	idea.Content = nullToPtr(content)
	idea.MediaURL = nullToPtr(mediaURL)
	idea.ShareID = nullToPtr(shareID)
	idea.Type = models.IdeaType(ideaType)
	idea.Tags = []string(tags)
	if idea.Tags == nil {
		idea.Tags = []string{}
	}
	return idea, nil
}

func scanShared(row scanner) (*models.SharedIdea, error) {
	s := &models.SharedIdea{}
	var content, mediaURL sql.NullString
	var ideaType string
	var tags pq.StringArray

	err := row.Scan(&s.ID, &s.ShareID, &s.Title, &content, &ideaType, &mediaURL, &tags, &s.AuthorName, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	s.Content = nullToPtr(content)
	s.MediaURL = nullToPtr(mediaURL)
	s.Type = models.IdeaType(ideaType)
	s.Tags = []string(tags)
	if s.Tags == nil {
		s.Tags = []string{}
	}
	return s, nil
}

func oneIdea(row *sql.Row) (*models.Idea, error) {
	idea, err := scanIdea(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return idea, nil
}

func (r *PostgresRepository) Create(ctx context.Context, idea *models.Idea) (*models.Idea, error) {

	query :=
		`INSERT INTO ideas (id, user_id, title, content, idea_type, media_url, tags, is_public, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 `

	_, err := r.db.ExecContext(ctx, query,
		idea.ID, idea.UserID, idea.Title, idea.Content, string(idea.Type), idea.MediaURL,
		pq.Array(idea.Tags), idea.IsPublic, idea.CreatedAt, idea.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return idea, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, ideaType models.IdeaType, limit int) ([]*models.Idea, error) {

	query :=
		`SELECT ` + ideaColumns + ` FROM ideas
		 WHERE user_id = $1 AND ($2::text = '' OR idea_type = $2::text)
		 ORDER BY created_at DESC, id DESC
		 LIMIT $3
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, string(ideaType), limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Idea, 0)

	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, idea)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Idea, error) {

	query :=
		`SELECT ` + ideaColumns + ` FROM ideas
		 WHERE id = $1 AND user_id = $2
		 `

	return oneIdea(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *PostgresRepository) Update(ctx context.Context, userID, id string, patch models.IdeaPatch, now time.Time) (*models.Idea, error) {

	query :=
		`UPDATE ideas SET
		   title = COALESCE($3, title),
		   content = COALESCE($4, content),
		   tags = CASE WHEN $5::boolean THEN $6::text[] ELSE tags END,
		   updated_at = GREATEST($7::timestamptz, updated_at + INTERVAL '1 microsecond')
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + ideaColumns + `
		 `

	return oneIdea(r.db.QueryRowContext(ctx, query,
		id, userID, patch.Title, patch.Content, patch.SetTags, pq.Array(patch.Tags), now))
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {

	query := `DELETE FROM ideas WHERE id = $1 AND user_id = $2`

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

func (r *PostgresRepository) Share(ctx context.Context, userID, id, shareID string, now time.Time) (*models.Idea, error) {

	query :=
		`UPDATE ideas SET
		   is_public = TRUE,
		   share_id = COALESCE(share_id, $3),
		   updated_at = GREATEST($4::timestamptz, updated_at + INTERVAL '1 microsecond')
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + ideaColumns + `
		 `

	return oneIdea(r.db.QueryRowContext(ctx, query, id, userID, shareID, now))
}

func (r *PostgresRepository) Unshare(ctx context.Context, userID, id string, now time.Time) (*models.Idea, error) {

	query :=
		`UPDATE ideas SET
		   is_public = FALSE,
		   share_id = NULL,
		   updated_at = GREATEST($3::timestamptz, updated_at + INTERVAL '1 microsecond')
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + ideaColumns + `
		 `

	return oneIdea(r.db.QueryRowContext(ctx, query, id, userID, now))
}

func (r *PostgresRepository) ListShared(ctx context.Context, limit int) ([]*models.SharedIdea, error) {

	query :=
		`SELECT ` + sharedColumns + `
		 FROM ideas i JOIN users u ON u.id = i.user_id
		 WHERE i.is_public
		 ORDER BY i.created_at DESC, i.id DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.SharedIdea, 0)

	for rows.Next() {
		s, err := scanShared(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetShared(ctx context.Context, shareID string) (*models.SharedIdea, error) {

	query :=
		`SELECT ` + sharedColumns + `
		 FROM ideas i JOIN users u ON u.id = i.user_id
		 WHERE i.share_id = $1 AND i.is_public
		 `

	s, err := scanShared(r.db.QueryRowContext(ctx, query, shareID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}
