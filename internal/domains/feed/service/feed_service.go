package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"postboard-backend/internal/domains/feed/model"
	followrepo "postboard-backend/internal/domains/follow/repository"
	groupmodel "postboard-backend/internal/domains/group/model"
	grouprepo "postboard-backend/internal/domains/group/repository"
	postrepo "postboard-backend/internal/domains/post/repository"
	usermodel "postboard-backend/internal/domains/user/model"
	userrepo "postboard-backend/internal/domains/user/repository"
	"postboard-backend/pkg/cache"
)

const homeCachePrefix = "feed:home:"

type feedService struct {
	postRepo   postrepo.PostRepository
	groupRepo  grouprepo.GroupRepository
	userRepo   userrepo.UserRepository
	followRepo followrepo.FollowRepository
	cache      cache.Cache
	pageSize   int
	homeTTL    time.Duration
}

func NewFeedService(
	postRepo postrepo.PostRepository,
	groupRepo grouprepo.GroupRepository,
	userRepo userrepo.UserRepository,
	followRepo followrepo.FollowRepository,
	cacheClient cache.Cache,
	pageSize int,
	homeTTL time.Duration,
) FeedService {
	return &feedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		cache:      cacheClient,
		pageSize:   pageSize,
		homeTTL:    homeTTL,
	}
}

func (s *feedService) HomeFeed(ctx context.Context, page int) (*model.FeedPage, error) {
	// Keyed by the requested page, like a page-level cache of the
	// rendered URL. A hit is served as-is even if posts changed since.
	key := fmt.Sprintf("%sp%d", homeCachePrefix, page)

	cached := &model.FeedPage{}
	found, err := s.cache.Get(ctx, key, cached)
	if err != nil {
		// Cache trouble must not take the home feed down.
		log.Warn().Err(err).Msg("home feed cache read failed")
	}
	if found {
		return cached, nil
	}

	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	offset, current, totalPages := model.ClampPage(page, s.pageSize, total)

	posts, err := s.postRepo.ListAll(ctx, s.pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	feedPage := &model.FeedPage{
		Posts: posts,
		Page: model.Page{
			Number:     current,
			Size:       s.pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}

	if err := s.cache.Set(ctx, key, feedPage, s.homeTTL); err != nil {
		log.Warn().Err(err).Msg("home feed cache write failed")
	}

	return feedPage, nil
}

func (s *feedService) GroupFeed(ctx context.Context, slug string, page int) (*model.GroupFeed, error) {
	g, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, groupmodel.ErrGroupNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	total, err := s.postRepo.CountByGroup(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count group posts: %w", err)
	}

	offset, current, totalPages := model.ClampPage(page, s.pageSize, total)

	posts, err := s.postRepo.ListByGroup(ctx, g.ID, s.pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list group posts: %w", err)
	}

	return &model.GroupFeed{
		Group: g,
		FeedPage: model.FeedPage{
			Posts: posts,
			Page: model.Page{
				Number:     current,
				Size:       s.pageSize,
				Total:      total,
				TotalPages: totalPages,
			},
		},
	}, nil
}

func (s *feedService) ProfileFeed(ctx context.Context, username string, viewerID uuid.UUID, page int) (*model.ProfileFeed, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count author posts: %w", err)
	}

	offset, current, totalPages := model.ClampPage(page, s.pageSize, total)

	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, s.pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}

	// Only an authenticated viewer other than the author can follow.
	following := false
	if viewerID != uuid.Nil && viewerID != author.ID {
		following, err = s.followRepo.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check follow: %w", err)
		}
	}

	return &model.ProfileFeed{
		Author:     usermodel.ToUserDTO(author),
		PostsCount: total,
		Following:  following,
		FeedPage: model.FeedPage{
			Posts: posts,
			Page: model.Page{
				Number:     current,
				Size:       s.pageSize,
				Total:      total,
				TotalPages: totalPages,
			},
		},
	}, nil
}

func (s *feedService) FollowedFeed(ctx context.Context, viewerID uuid.UUID, page int) (*model.FeedPage, error) {
	total, err := s.postRepo.CountFollowed(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count followed posts: %w", err)
	}

	offset, current, totalPages := model.ClampPage(page, s.pageSize, total)

	posts, err := s.postRepo.ListFollowed(ctx, viewerID, s.pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed posts: %w", err)
	}

	return &model.FeedPage{
		Posts: posts,
		Page: model.Page{
			Number:     current,
			Size:       s.pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *feedService) ClearHomeCache(ctx context.Context) error {
	if err := s.cache.DeletePattern(ctx, homeCachePrefix+"*"); err != nil {
		return fmt.Errorf("failed to clear home feed cache: %w", err)
	}
	return nil
}
