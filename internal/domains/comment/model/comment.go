package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to exactly one post and is immutable once created.
type Comment struct {
	ID       uuid.UUID `json:"id"`
	PostID   uuid.UUID `json:"post_id"`
	AuthorID uuid.UUID `json:"author_id"`
	Text     string    `json:"text"`
	Created  time.Time `json:"created"`

	// Joined for listings.
	AuthorUsername string `json:"author_username,omitempty"`
}
