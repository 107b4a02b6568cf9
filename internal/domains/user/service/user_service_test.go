package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard-backend/internal/domains/user/model"
	"postboard-backend/pkg/jwt"
)

type fakeUserRepo struct {
	byUsername map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	if _, taken := f.byUsername[u.Username]; taken {
		return model.ErrUsernameTaken
	}
	f.byUsername[u.Username] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, model.ErrUserNotFound
}

func testManager() *jwt.Manager {
	return jwt.NewManager("test-secret", time.Hour, 72*time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testManager())

	dto, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "leo",
		Email:    "leo@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "leo", dto.Username)
	assert.NotEmpty(t, repo.byUsername["leo"].PasswordHash)
	assert.NotEqual(t, "correct horse", repo.byUsername["leo"].PasswordHash)

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "leo",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	assert.Equal(t, dto.ID, resp.User.ID)
}

func TestRegisterUsernameTaken(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testManager())

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "leo", Email: "leo@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), model.RegisterRequest{
		Username: "leo", Email: "other@example.com", Password: "correct horse",
	})
	assert.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestLoginDoesNotLeakWhichPartFailed(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testManager())

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "leo", Email: "leo@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	_, badUser := svc.Login(context.Background(), model.LoginRequest{Username: "ghost", Password: "whatever"})
	_, badPass := svc.Login(context.Background(), model.LoginRequest{Username: "leo", Password: "wrong"})

	assert.ErrorIs(t, badUser, model.ErrInvalidLogin)
	assert.ErrorIs(t, badPass, model.ErrInvalidLogin)
}
