package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func tableDDL(t *testing.T, name string) string {
	t.Helper()
	for _, stmt := range migrations {
		if strings.HasPrefix(strings.TrimSpace(stmt), "CREATE TABLE IF NOT EXISTS "+name) {
			return squash(stmt)
		}
	}
	require.Failf(t, "missing table", "no CREATE TABLE statement for %s", name)
	return ""
}

func TestGroupDeleteKeepsPosts(t *testing.T) {
	posts := tableDDL(t, "posts")

	assert.Contains(t, posts, "group_id UUID NULL REFERENCES groups(id) ON DELETE SET NULL",
		"deleting a group must clear posts.group_id, never delete the posts")
	assert.Contains(t, posts, "author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE")
}

func TestFollowEdgeUniquePerPair(t *testing.T) {
	follows := tableDDL(t, "follows")

	assert.Contains(t, follows, "UNIQUE (user_id, author_id)",
		"racing duplicate follows must converge to one edge at the store level")
}

func TestCommentsRemovedWithPost(t *testing.T) {
	comments := tableDDL(t, "comments")

	assert.Contains(t, comments, "post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE")
}

func TestPostListingIndexNewestFirst(t *testing.T) {
	for _, stmt := range migrations {
		if strings.Contains(stmt, "idx_posts_pub_date") {
			assert.Contains(t, squash(stmt), "(pub_date DESC, id DESC)")
			return
		}
	}
	t.Fatal("missing idx_posts_pub_date index")
}
