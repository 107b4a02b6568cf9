package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	followmodel "postboard-backend/internal/domains/follow/model"
	groupmodel "postboard-backend/internal/domains/group/model"
	postmodel "postboard-backend/internal/domains/post/model"
	usermodel "postboard-backend/internal/domains/user/model"
)

// fakePostRepo serves a fixed slice of posts for every scope.
type fakePostRepo struct {
	posts []*postmodel.Post
}

func (f *fakePostRepo) Create(ctx context.Context, p *postmodel.Post) error  { return nil }
func (f *fakePostRepo) Update(ctx context.Context, p *postmodel.Post) error { return nil }
func (f *fakePostRepo) GetByID(ctx context.Context, id uuid.UUID) (*postmodel.Post, error) {
	return nil, postmodel.ErrPostNotFound
}

func (f *fakePostRepo) window(limit, offset int) []*postmodel.Post {
	if offset >= len(f.posts) {
		return nil
	}
	end := offset + limit
	if end > len(f.posts) {
		end = len(f.posts)
	}
	return f.posts[offset:end]
}

func (f *fakePostRepo) ListAll(ctx context.Context, limit, offset int) ([]*postmodel.Post, error) {
	return f.window(limit, offset), nil
}
func (f *fakePostRepo) CountAll(ctx context.Context) (int, error) { return len(f.posts), nil }

func (f *fakePostRepo) ListByGroup(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*postmodel.Post, error) {
	return f.window(limit, offset), nil
}
func (f *fakePostRepo) CountByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	return len(f.posts), nil
}

func (f *fakePostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*postmodel.Post, error) {
	return f.window(limit, offset), nil
}
func (f *fakePostRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	return len(f.posts), nil
}

func (f *fakePostRepo) ListFollowed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]*postmodel.Post, error) {
	return f.window(limit, offset), nil
}
func (f *fakePostRepo) CountFollowed(ctx context.Context, viewerID uuid.UUID) (int, error) {
	return len(f.posts), nil
}

type fakeGroupRepo struct {
	groups map[string]*groupmodel.Group // by slug
}

func (f *fakeGroupRepo) Create(ctx context.Context, g *groupmodel.Group) error { return nil }
func (f *fakeGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*groupmodel.Group, error) {
	return nil, groupmodel.ErrGroupNotFound
}
func (f *fakeGroupRepo) GetBySlug(ctx context.Context, slug string) (*groupmodel.Group, error) {
	if g, ok := f.groups[slug]; ok {
		return g, nil
	}
	return nil, groupmodel.ErrGroupNotFound
}
func (f *fakeGroupRepo) List(ctx context.Context) ([]*groupmodel.Group, error) { return nil, nil }
func (f *fakeGroupRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

type fakeUserRepo struct {
	users map[string]*usermodel.User // by username
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

type fakeFollowRepo struct {
	edges       map[[2]uuid.UUID]bool
	existsCalls int
}

func (f *fakeFollowRepo) Create(ctx context.Context, fl *followmodel.Follow) error { return nil }
func (f *fakeFollowRepo) Delete(ctx context.Context, userID, authorID uuid.UUID) error {
	return nil
}
func (f *fakeFollowRepo) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	f.existsCalls++
	return f.edges[[2]uuid.UUID{userID, authorID}], nil
}
func (f *fakeFollowRepo) Count(ctx context.Context) (int, error) { return len(f.edges), nil }

// memCache is an in-memory Cache good enough for TTL-free tests; it
// never expires entries on its own, which is exactly what the
// staleness tests need.
type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (m *memCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *memCache) DeletePattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}

func (m *memCache) Ping(ctx context.Context) error { return nil }

func makePosts(n int) []*postmodel.Post {
	posts := make([]*postmodel.Post, n)
	base := time.Now()
	for i := range posts {
		posts[i] = &postmodel.Post{
			ID:      uuid.New(),
			Text:    fmt.Sprintf("post %d", i),
			PubDate: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return posts
}

func TestHomeFeedPaginates(t *testing.T) {
	repo := &fakePostRepo{posts: makePosts(25)}
	svc := NewFeedService(repo, &fakeGroupRepo{}, &fakeUserRepo{}, &fakeFollowRepo{}, newMemCache(), 10, 20*time.Second)

	feed, err := svc.HomeFeed(context.Background(), 2)
	require.NoError(t, err)

	assert.Len(t, feed.Posts, 10)
	assert.Equal(t, 2, feed.Page.Number)
	assert.Equal(t, 25, feed.Page.Total)
	assert.Equal(t, 3, feed.Page.TotalPages)
	assert.Equal(t, "post 10", feed.Posts[0].Text)
}

func TestHomeFeedClampsBeyondLastPage(t *testing.T) {
	repo := &fakePostRepo{posts: makePosts(25)}
	svc := NewFeedService(repo, &fakeGroupRepo{}, &fakeUserRepo{}, &fakeFollowRepo{}, newMemCache(), 10, 20*time.Second)

	feed, err := svc.HomeFeed(context.Background(), 99)
	require.NoError(t, err)

	assert.Equal(t, 3, feed.Page.Number)
	assert.Len(t, feed.Posts, 5)
}

func TestHomeFeedServedFromCacheWhileValid(t *testing.T) {
	repo := &fakePostRepo{posts: makePosts(3)}
	cache := newMemCache()
	svc := NewFeedService(repo, &fakeGroupRepo{}, &fakeUserRepo{}, &fakeFollowRepo{}, cache, 10, 20*time.Second)

	first, err := svc.HomeFeed(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, first.Posts, 3)

	// A new post lands after the page was cached.
	repo.posts = makePosts(4)

	second, err := svc.HomeFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, second.Posts, 3, "cached page must be served unchanged until it expires")
	assert.Equal(t, 3, second.Page.Total)
}

func TestClearHomeCacheForcesRebuild(t *testing.T) {
	repo := &fakePostRepo{posts: makePosts(3)}
	cache := newMemCache()
	svc := NewFeedService(repo, &fakeGroupRepo{}, &fakeUserRepo{}, &fakeFollowRepo{}, cache, 10, 20*time.Second)

	_, err := svc.HomeFeed(context.Background(), 1)
	require.NoError(t, err)

	repo.posts = makePosts(4)
	require.NoError(t, svc.ClearHomeCache(context.Background()))

	feed, err := svc.HomeFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, feed.Posts, 4, "explicit clear must expose fresh posts immediately")
}

func TestGroupFeedUnknownSlug(t *testing.T) {
	svc := NewFeedService(&fakePostRepo{}, &fakeGroupRepo{}, &fakeUserRepo{}, &fakeFollowRepo{}, newMemCache(), 10, 20*time.Second)

	_, err := svc.GroupFeed(context.Background(), "no-such-group", 1)
	assert.ErrorIs(t, err, groupmodel.ErrGroupNotFound)
}

func TestGroupFeedIncludesGroup(t *testing.T) {
	g := &groupmodel.Group{ID: uuid.New(), Title: "Cats", Slug: "cats"}
	groups := &fakeGroupRepo{groups: map[string]*groupmodel.Group{"cats": g}}
	repo := &fakePostRepo{posts: makePosts(2)}
	svc := NewFeedService(repo, groups, &fakeUserRepo{}, &fakeFollowRepo{}, newMemCache(), 10, 20*time.Second)

	feed, err := svc.GroupFeed(context.Background(), "cats", 1)
	require.NoError(t, err)
	assert.Equal(t, g.ID, feed.Group.ID)
	assert.Len(t, feed.Posts, 2)
}

func TestProfileFeedFollowingFlag(t *testing.T) {
	author := &usermodel.User{ID: uuid.New(), Username: "leo"}
	viewer := uuid.New()

	users := &fakeUserRepo{users: map[string]*usermodel.User{"leo": author}}
	follows := &fakeFollowRepo{edges: map[[2]uuid.UUID]bool{{viewer, author.ID}: true}}
	repo := &fakePostRepo{posts: makePosts(1)}
	svc := NewFeedService(repo, &fakeGroupRepo{}, users, follows, newMemCache(), 10, 20*time.Second)

	t.Run("anonymous viewer", func(t *testing.T) {
		follows.existsCalls = 0
		feed, err := svc.ProfileFeed(context.Background(), "leo", uuid.Nil, 1)
		require.NoError(t, err)
		assert.False(t, feed.Following)
		assert.Zero(t, follows.existsCalls, "anonymous viewers never hit the follow store")
	})

	t.Run("author viewing own profile", func(t *testing.T) {
		follows.existsCalls = 0
		feed, err := svc.ProfileFeed(context.Background(), "leo", author.ID, 1)
		require.NoError(t, err)
		assert.False(t, feed.Following)
		assert.Zero(t, follows.existsCalls)
	})

	t.Run("subscribed viewer", func(t *testing.T) {
		feed, err := svc.ProfileFeed(context.Background(), "leo", viewer, 1)
		require.NoError(t, err)
		assert.True(t, feed.Following)
		assert.Equal(t, 1, feed.PostsCount)
		assert.Equal(t, "leo", feed.Author.Username)
	})
}

func TestProfileFeedUnknownUser(t *testing.T) {
	svc := NewFeedService(&fakePostRepo{}, &fakeGroupRepo{}, &fakeUserRepo{}, &fakeFollowRepo{}, newMemCache(), 10, 20*time.Second)

	_, err := svc.ProfileFeed(context.Background(), "ghost", uuid.Nil, 1)
	assert.ErrorIs(t, err, usermodel.ErrUserNotFound)
}

func TestFollowedFeedEmptyWithoutSubscriptions(t *testing.T) {
	svc := NewFeedService(&fakePostRepo{}, &fakeGroupRepo{}, &fakeUserRepo{}, &fakeFollowRepo{}, newMemCache(), 10, 20*time.Second)

	feed, err := svc.FollowedFeed(context.Background(), uuid.New(), 1)
	require.NoError(t, err)
	assert.Empty(t, feed.Posts)
	assert.Equal(t, 1, feed.Page.TotalPages)
}
