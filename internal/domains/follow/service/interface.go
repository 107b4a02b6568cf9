package service

import (
	"context"

	"github.com/google/uuid"
)

// FollowService holds subscription business logic.
type FollowService interface {
	// Follow subscribes to the author behind authorUsername. Returns
	// usermodel.ErrUserNotFound for unknown usernames and
	// model.ErrSelfFollow when subscriber and author are the same user.
	Follow(ctx context.Context, subscriberID uuid.UUID, authorUsername string) error
	// Unfollow removes the edge; a missing edge is a no-op.
	Unfollow(ctx context.Context, subscriberID uuid.UUID, authorUsername string) error
	IsFollowing(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
}
