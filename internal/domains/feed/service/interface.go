package service

import (
	"context"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/feed/model"
)

// FeedService builds the four paginated post listings.
type FeedService interface {
	// HomeFeed lists every post. Pages are served from the cache while
	// their TTL lasts, so recent writes may not show until expiry.
	HomeFeed(ctx context.Context, page int) (*model.FeedPage, error)

	// GroupFeed lists a group's posts; unknown slugs are NotFound.
	GroupFeed(ctx context.Context, slug string, page int) (*model.GroupFeed, error)

	// ProfileFeed lists an author's posts with profile metadata.
	// viewerID is uuid.Nil for anonymous viewers.
	ProfileFeed(ctx context.Context, username string, viewerID uuid.UUID, page int) (*model.ProfileFeed, error)

	// FollowedFeed lists posts by authors the viewer follows.
	FollowedFeed(ctx context.Context, viewerID uuid.UUID, page int) (*model.FeedPage, error)

	// ClearHomeCache drops every cached home-feed page immediately,
	// regardless of remaining TTL.
	ClearHomeCache(ctx context.Context) error
}
