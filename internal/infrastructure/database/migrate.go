package database

import (
	"context"
	"fmt"
)

// migrations are applied in order on startup. Every statement is
// idempotent so repeated boots are safe without a version table.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name     TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS groups (
		id          UUID PRIMARY KEY,
		title       TEXT NOT NULL,
		slug        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	// group_id is SET NULL on group deletion: removing a group must
	// never delete its posts.
	`CREATE TABLE IF NOT EXISTS posts (
		id        UUID PRIMARY KEY,
		text      TEXT NOT NULL,
		pub_date  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		group_id  UUID NULL REFERENCES groups(id) ON DELETE SET NULL,
		image_url TEXT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_pub_date ON posts (pub_date DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_author ON posts (author_id, pub_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_group ON posts (group_id, pub_date DESC)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id        UUID PRIMARY KEY,
		post_id   UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		text      TEXT NOT NULL,
		created   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_post ON comments (post_id, created DESC)`,

	// UNIQUE (user_id, author_id) makes duplicate-follow prevention a
	// store-level guarantee; racing follow requests converge to one edge.
	`CREATE TABLE IF NOT EXISTS follows (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		author_id  UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, author_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_follows_user ON follows (user_id)`,
}

// Migrate runs the schema statements against the pool.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for i, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}
