package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/follow/model"
	"postboard-backend/internal/domains/follow/repository"
	usermodel "postboard-backend/internal/domains/user/model"
	userrepo "postboard-backend/internal/domains/user/repository"
)

type followService struct {
	followRepo repository.FollowRepository
	userRepo   userrepo.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo userrepo.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *followService) Follow(ctx context.Context, subscriberID uuid.UUID, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to look up author: %w", err)
	}

	if author.ID == subscriberID {
		return model.ErrSelfFollow
	}

	f := &model.Follow{
		ID:        uuid.New(),
		UserID:    subscriberID,
		AuthorID:  author.ID,
		CreatedAt: time.Now(),
	}

	if err := s.followRepo.Create(ctx, f); err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}

	return nil
}

func (s *followService) Unfollow(ctx context.Context, subscriberID uuid.UUID, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to look up author: %w", err)
	}

	if err := s.followRepo.Delete(ctx, subscriberID, author.ID); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}

	return nil
}

func (s *followService) IsFollowing(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	return s.followRepo.Exists(ctx, userID, authorID)
}
