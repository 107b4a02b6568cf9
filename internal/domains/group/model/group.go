package model

import (
	"time"

	"github.com/google/uuid"
)

// Group is a topic posts can be tagged with. Created by administrators;
// posts reference it optionally.
type Group struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
