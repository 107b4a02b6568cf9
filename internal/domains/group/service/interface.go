package service

import (
	"context"

	"postboard-backend/internal/domains/group/model"
)

// GroupService holds group business logic.
type GroupService interface {
	CreateGroup(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	ListGroups(ctx context.Context) ([]*model.Group, error)
	// DeleteGroup removes the group addressed by slug. Posts tagged
	// with it keep existing with their group cleared.
	DeleteGroup(ctx context.Context, slug string) error
}
