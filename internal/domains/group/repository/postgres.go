package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"postboard-backend/internal/domains/group/model"
)

type postgresGroupRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresGroupRepository(pool *pgxpool.Pool) GroupRepository {
	return &postgresGroupRepository{pool: pool}
}

func (r *postgresGroupRepository) Create(ctx context.Context, g *model.Group) error {
	query := `
		INSERT INTO groups (id, title, slug, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		g.ID,
		g.Title,
		g.Slug,
		g.Description,
		g.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

func (r *postgresGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Group, error) {
	query := `
		SELECT id, title, slug, description, created_at
		FROM groups
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresGroupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	query := `
		SELECT id, title, slug, description, created_at
		FROM groups
		WHERE slug = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, slug))
}

func (r *postgresGroupRepository) List(ctx context.Context) ([]*model.Group, error) {
	query := `
		SELECT id, title, slug, description, created_at
		FROM groups
		ORDER BY title
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*model.Group
	for rows.Next() {
		g := &model.Group{}
		if err := rows.Scan(&g.ID, &g.Title, &g.Slug, &g.Description, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

func (r *postgresGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrGroupNotFound
	}
	return nil
}

func (r *postgresGroupRepository) scanOne(row pgx.Row) (*model.Group, error) {
	g := &model.Group{}
	err := row.Scan(&g.ID, &g.Title, &g.Slug, &g.Description, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return g, nil
}
