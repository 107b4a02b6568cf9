package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"postboard-backend/internal/domains/follow/model"
)

type postgresFollowRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFollowRepository(pool *pgxpool.Pool) FollowRepository {
	return &postgresFollowRepository{pool: pool}
}

func (r *postgresFollowRepository) Create(ctx context.Context, f *model.Follow) error {
	// ON CONFLICT DO NOTHING: racing duplicate follows converge to one
	// edge and both requests succeed.
	query := `
		INSERT INTO follows (id, user_id, author_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, author_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, f.ID, f.UserID, f.AuthorID, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}

	return nil
}

func (r *postgresFollowRepository) Delete(ctx context.Context, userID, authorID uuid.UUID) error {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`

	// Zero rows affected is fine: unfollowing a non-followed author is
	// a no-op, not an error.
	if _, err := r.pool.Exec(ctx, query, userID, authorID); err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	return nil
}

func (r *postgresFollowRepository) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, authorID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}

func (r *postgresFollowRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM follows`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count follows: %w", err)
	}
	return n, nil
}
