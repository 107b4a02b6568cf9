package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"postboard-backend/internal/domains/post/model"
)

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

// listSelect joins author and group the way every feed renders posts.
const listSelect = `
	SELECT
		p.id, p.text, p.pub_date, p.author_id, p.group_id, p.image_url,
		u.username, g.slug, g.title
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id
`

// listOrder is the one recency rule every feed shares: strictly newest
// first, id as the tiebreak for equal timestamps.
const listOrder = `
	ORDER BY p.pub_date DESC, p.id DESC
`

func (r *postgresPostRepository) Create(ctx context.Context, p *model.Post) error {
	query := `
		INSERT INTO posts (id, text, pub_date, author_id, group_id, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Text,
		p.PubDate,
		p.AuthorID,
		p.GroupID,
		p.ImageURL,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// foreign key violation: dangling group reference
			return model.ErrGroupRefInvalid
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postgresPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := listSelect + ` WHERE p.id = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return p, nil
}

func (r *postgresPostRepository) Update(ctx context.Context, p *model.Post) error {
	// pub_date deliberately absent from the SET list.
	query := `
		UPDATE posts
		SET text = $2, group_id = $3, image_url = $4
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, p.ID, p.Text, p.GroupID, p.ImageURL)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrGroupRefInvalid
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}

func (r *postgresPostRepository) ListAll(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	query := listSelect + listOrder + `LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

func (r *postgresPostRepository) CountAll(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM posts`)
}

func (r *postgresPostRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*model.Post, error) {
	query := listSelect + `WHERE p.group_id = $3` + listOrder + `LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset, groupID)
}

func (r *postgresPostRepository) CountByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM posts WHERE group_id = $1`, groupID)
}

func (r *postgresPostRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*model.Post, error) {
	query := listSelect + `WHERE p.author_id = $3` + listOrder + `LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset, authorID)
}

func (r *postgresPostRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID)
}

func (r *postgresPostRepository) ListFollowed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]*model.Post, error) {
	query := listSelect + `
		WHERE p.author_id IN (
			SELECT author_id FROM follows WHERE user_id = $3
		)` + listOrder + `LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset, viewerID)
}

func (r *postgresPostRepository) CountFollowed(ctx context.Context, viewerID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM posts
		WHERE author_id IN (
			SELECT author_id FROM follows WHERE user_id = $1
		)
	`
	return r.count(ctx, query, viewerID)
}

func (r *postgresPostRepository) list(ctx context.Context, query string, limit, offset int, args ...interface{}) ([]*model.Post, error) {
	queryArgs := append([]interface{}{limit, offset}, args...)

	rows, err := r.pool.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

func (r *postgresPostRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return n, nil
}

func scanPost(row pgx.Row) (*model.Post, error) {
	p := &model.Post{}
	err := row.Scan(
		&p.ID,
		&p.Text,
		&p.PubDate,
		&p.AuthorID,
		&p.GroupID,
		&p.ImageURL,
		&p.AuthorUsername,
		&p.GroupSlug,
		&p.GroupTitle,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
