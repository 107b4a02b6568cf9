package repository

import (
	"context"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/user/model"
)

// UserRepository is the data-access contract for accounts.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
