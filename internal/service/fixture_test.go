package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/repository/memory"
)

// fixture wires services over the in-memory document store.
type fixture struct {
	db    *memory.DB
	users *memory.UserRepo
	posts *memory.PostRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := memory.New()
	return &fixture{db: db, users: db.Users(), posts: db.Posts()}
}

func (f *fixture) user(t *testing.T, name string) model.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), model.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) post(t *testing.T, owner model.User) model.Post {
	t.Helper()
	p, err := f.posts.Create(context.Background(), model.Post{
		OwnerID: owner.ID,
		Heading: "heading",
	})
	require.NoError(t, err)
	_, err = f.users.IncrementCountPosts(context.Background(), owner.ID)
	require.NoError(t, err)
	return p
}

func (f *fixture) reloadUser(t *testing.T, id uuid.UUID) model.User {
	t.Helper()
	u, err := f.users.GetByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func (f *fixture) reloadPost(t *testing.T, id uuid.UUID) model.Post {
	t.Helper()
	p, err := f.posts.GetByID(context.Background(), id)
	require.NoError(t, err)
	return p
}
