package repository

import (
	"context"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/post/model"
)

// PostRepository is the data-access contract for posts, including the
// four feed scopes. Every listing is ordered newest first.
type PostRepository interface {
	Create(ctx context.Context, p *model.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	// Update rewrites text, group and image only; pub_date stays.
	Update(ctx context.Context, p *model.Post) error

	ListAll(ctx context.Context, limit, offset int) ([]*model.Post, error)
	CountAll(ctx context.Context) (int, error)

	ListByGroup(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*model.Post, error)
	CountByGroup(ctx context.Context, groupID uuid.UUID) (int, error)

	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*model.Post, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)

	// ListFollowed returns posts whose author the viewer follows.
	ListFollowed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]*model.Post, error)
	CountFollowed(ctx context.Context, viewerID uuid.UUID) (int, error)
}
