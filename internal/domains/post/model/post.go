package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is a published entry. pub_date is set once at creation and
// never changes, including through edits.
type Post struct {
	ID       uuid.UUID  `json:"id"`
	Text     string     `json:"text"`
	PubDate  time.Time  `json:"pub_date"`
	AuthorID uuid.UUID  `json:"author_id"`
	GroupID  *uuid.UUID `json:"group_id,omitempty"`
	ImageURL *string    `json:"image_url,omitempty"`

	// Joined for listings; not columns of posts.
	AuthorUsername string  `json:"author_username,omitempty"`
	GroupSlug      *string `json:"group_slug,omitempty"`
	GroupTitle     *string `json:"group_title,omitempty"`
}
