package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard-backend/internal/domains/group/model"
)

type fakeGroupRepo struct {
	bySlug  map[string]*model.Group
	deleted []uuid.UUID
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{bySlug: map[string]*model.Group{}}
}

func (f *fakeGroupRepo) Create(ctx context.Context, g *model.Group) error {
	if _, taken := f.bySlug[g.Slug]; taken {
		return model.ErrSlugTaken
	}
	f.bySlug[g.Slug] = g
	return nil
}

func (f *fakeGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Group, error) {
	for _, g := range f.bySlug {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, model.ErrGroupNotFound
}

func (f *fakeGroupRepo) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	if g, ok := f.bySlug[slug]; ok {
		return g, nil
	}
	return nil, model.ErrGroupNotFound
}

func (f *fakeGroupRepo) List(ctx context.Context) ([]*model.Group, error) {
	out := make([]*model.Group, 0, len(f.bySlug))
	for _, g := range f.bySlug {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for slug, g := range f.bySlug {
		if g.ID == id {
			delete(f.bySlug, slug)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return model.ErrGroupNotFound
}

func TestCreateGroupDerivesSlug(t *testing.T) {
	svc := NewGroupService(newFakeGroupRepo())

	g, err := svc.CreateGroup(context.Background(), model.CreateGroupRequest{
		Title:       "Street Cats of Lisbon",
		Description: "feline content",
	})

	require.NoError(t, err)
	assert.Equal(t, "street-cats-of-lisbon", g.Slug)
}

func TestCreateGroupKeepsProvidedSlug(t *testing.T) {
	svc := NewGroupService(newFakeGroupRepo())

	g, err := svc.CreateGroup(context.Background(), model.CreateGroupRequest{
		Title: "Street Cats",
		Slug:  "cats",
	})

	require.NoError(t, err)
	assert.Equal(t, "cats", g.Slug)
}

func TestCreateGroupSlugTaken(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := NewGroupService(repo)

	_, err := svc.CreateGroup(context.Background(), model.CreateGroupRequest{Title: "Cats", Slug: "cats"})
	require.NoError(t, err)

	_, err = svc.CreateGroup(context.Background(), model.CreateGroupRequest{Title: "Other Cats", Slug: "cats"})
	assert.ErrorIs(t, err, model.ErrSlugTaken)
}

func TestDeleteGroupBySlug(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := NewGroupService(repo)

	g, err := svc.CreateGroup(context.Background(), model.CreateGroupRequest{Title: "Cats", Slug: "cats"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGroup(context.Background(), "cats"))
	assert.Equal(t, []uuid.UUID{g.ID}, repo.deleted)
}

func TestDeleteGroupUnknownSlug(t *testing.T) {
	svc := NewGroupService(newFakeGroupRepo())

	err := svc.DeleteGroup(context.Background(), "nope")
	assert.ErrorIs(t, err, model.ErrGroupNotFound)
}
