package service

import (
	"context"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/user/model"
)

// UserService holds account business logic.
type UserService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.UserDTO, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*model.UserDTO, error)
}
