package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard-backend/internal/domains/follow/model"
	usermodel "postboard-backend/internal/domains/user/model"
)

type fakeFollowRepo struct {
	edges map[[2]uuid.UUID]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[[2]uuid.UUID]bool{}}
}

func (f *fakeFollowRepo) Create(ctx context.Context, fl *model.Follow) error {
	// Mirrors ON CONFLICT DO NOTHING: duplicates are absorbed.
	f.edges[[2]uuid.UUID{fl.UserID, fl.AuthorID}] = true
	return nil
}

func (f *fakeFollowRepo) Delete(ctx context.Context, userID, authorID uuid.UUID) error {
	delete(f.edges, [2]uuid.UUID{userID, authorID})
	return nil
}

func (f *fakeFollowRepo) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	return f.edges[[2]uuid.UUID{userID, authorID}], nil
}

func (f *fakeFollowRepo) Count(ctx context.Context) (int, error) { return len(f.edges), nil }

type fakeUserRepo struct {
	users map[string]*usermodel.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *usermodel.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error) {
	return nil, usermodel.ErrUserNotFound
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*usermodel.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, usermodel.ErrUserNotFound
}

func TestFollow(t *testing.T) {
	author := &usermodel.User{ID: uuid.New(), Username: "leo"}
	follows := newFakeFollowRepo()
	svc := NewFollowService(follows, &fakeUserRepo{users: map[string]*usermodel.User{"leo": author}})

	subscriber := uuid.New()
	require.NoError(t, svc.Follow(context.Background(), subscriber, "leo"))

	following, err := svc.IsFollowing(context.Background(), subscriber, author.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestFollowSelf(t *testing.T) {
	author := &usermodel.User{ID: uuid.New(), Username: "leo"}
	follows := newFakeFollowRepo()
	svc := NewFollowService(follows, &fakeUserRepo{users: map[string]*usermodel.User{"leo": author}})

	err := svc.Follow(context.Background(), author.ID, "leo")

	assert.ErrorIs(t, err, model.ErrSelfFollow)
	assert.Empty(t, follows.edges, "self-follow must not create an edge")
}

func TestFollowUnknownAuthor(t *testing.T) {
	svc := NewFollowService(newFakeFollowRepo(), &fakeUserRepo{})

	err := svc.Follow(context.Background(), uuid.New(), "ghost")
	assert.ErrorIs(t, err, usermodel.ErrUserNotFound)
}

func TestFollowTwiceIsIdempotent(t *testing.T) {
	author := &usermodel.User{ID: uuid.New(), Username: "leo"}
	follows := newFakeFollowRepo()
	svc := NewFollowService(follows, &fakeUserRepo{users: map[string]*usermodel.User{"leo": author}})

	subscriber := uuid.New()
	require.NoError(t, svc.Follow(context.Background(), subscriber, "leo"))
	require.NoError(t, svc.Follow(context.Background(), subscriber, "leo"))

	assert.Len(t, follows.edges, 1)
}

func TestUnfollow(t *testing.T) {
	author := &usermodel.User{ID: uuid.New(), Username: "leo"}
	follows := newFakeFollowRepo()
	svc := NewFollowService(follows, &fakeUserRepo{users: map[string]*usermodel.User{"leo": author}})

	subscriber := uuid.New()
	require.NoError(t, svc.Follow(context.Background(), subscriber, "leo"))
	require.NoError(t, svc.Unfollow(context.Background(), subscriber, "leo"))

	following, err := svc.IsFollowing(context.Background(), subscriber, author.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestUnfollowWithoutEdgeIsNoOp(t *testing.T) {
	author := &usermodel.User{ID: uuid.New(), Username: "leo"}
	svc := NewFollowService(newFakeFollowRepo(), &fakeUserRepo{users: map[string]*usermodel.User{"leo": author}})

	assert.NoError(t, svc.Unfollow(context.Background(), uuid.New(), "leo"))
}
