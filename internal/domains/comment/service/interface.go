package service

import (
	"context"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/comment/model"
)

// CommentService holds comment business logic. Comments are created
// once and never edited or deleted.
type CommentService interface {
	AddComment(ctx context.Context, authorID, postID uuid.UUID, text string) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*model.Comment, error)
}
