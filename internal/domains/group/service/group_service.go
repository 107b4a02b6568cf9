package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/group/model"
	"postboard-backend/internal/domains/group/repository"
	"postboard-backend/internal/shared/utils"
)

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) CreateGroup(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	g := &model.Group{
		ID:          uuid.New(),
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.groupRepo.Create(ctx, g); err != nil {
		if errors.Is(err, model.ErrSlugTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return g, nil
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	g, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrGroupNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return g, nil
}

func (s *groupService) ListGroups(ctx context.Context) ([]*model.Group, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

func (s *groupService) DeleteGroup(ctx context.Context, slug string) error {
	g, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrGroupNotFound) {
			return err
		}
		return fmt.Errorf("failed to get group: %w", err)
	}

	if err := s.groupRepo.Delete(ctx, g.ID); err != nil {
		if errors.Is(err, model.ErrGroupNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}
