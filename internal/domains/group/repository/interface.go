package repository

import (
	"context"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/group/model"
)

// GroupRepository is the data-access contract for groups.
type GroupRepository interface {
	Create(ctx context.Context, g *model.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	List(ctx context.Context) ([]*model.Group, error)
	// Delete removes the group; posts referencing it get their group
	// cleared by the store (ON DELETE SET NULL), never deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
