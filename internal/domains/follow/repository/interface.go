package repository

import (
	"context"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/follow/model"
)

// FollowRepository is the data-access contract for subscription edges.
type FollowRepository interface {
	// Create inserts the edge; an already-existing pair is a no-op.
	Create(ctx context.Context, f *model.Follow) error
	// Delete removes the edge; a missing pair is a no-op.
	Delete(ctx context.Context, userID, authorID uuid.UUID) error
	Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	Count(ctx context.Context) (int, error)
}
