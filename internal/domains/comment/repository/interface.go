package repository

import (
	"context"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/comment/model"
)

// CommentRepository is the data-access contract for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	// ListByPost returns comments newest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*model.Comment, error)
}
