package service

import (
	"context"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/post/model"
)

// PostService holds post business logic.
type PostService interface {
	// CreatePost persists a new post with pub_date = now. image may be nil.
	CreatePost(ctx context.Context, authorID uuid.UUID, req model.CreatePostRequest, image []byte) (*model.Post, error)

	// EditPost updates text/group/image in place. When the requester is
	// not the author it returns the untouched post together with
	// model.ErrNotAuthor so the caller can redirect silently.
	EditPost(ctx context.Context, requesterID, postID uuid.UUID, req model.EditPostRequest, image []byte) (*model.Post, error)

	GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error)
}

// ImageStore persists post image attachments and returns a public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
