//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/gophfeed-server/database"
	"github.com/dtroode/gophfeed-server/internal/model"
	repo "github.com/dtroode/gophfeed-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "gophfeed_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/gophfeed_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(email string) model.User {
	return model.User{
		ID:           uuid.New(),
		Name:         "user",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func newPost(owner uuid.UUID) model.Post {
	return model.Post{
		ID:        uuid.New(),
		OwnerID:   owner,
		Heading:   "heading",
		Content:   "content",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestRepositories_Documents(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	pr := repo.NewPostRepository(conn)

	t.Run("user_repository", func(t *testing.T) {
		u, err := ur.Create(ctx, newUser("crud@example.com"))
		require.NoError(t, err)

		_, err = ur.Create(ctx, newUser("crud@example.com"))
		require.ErrorIs(t, err, model.ErrConflict)

		byEmail, err := ur.GetByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)

		u, err = ur.PushToken(ctx, u.ID, "t1")
		require.NoError(t, err)
		u, err = ur.PushToken(ctx, u.ID, "t2")
		require.NoError(t, err)
		require.Equal(t, []string{"t1", "t2"}, u.Tokens)

		_, err = ur.GetByToken(ctx, u.ID, "t1")
		require.NoError(t, err)

		u, err = ur.PullToken(ctx, u.ID, "t1")
		require.NoError(t, err)
		require.Equal(t, []string{"t2"}, u.Tokens)

		_, err = ur.GetByToken(ctx, u.ID, "t1")
		require.ErrorIs(t, err, model.ErrNotFound)

		u, err = ur.ClearTokens(ctx, u.ID)
		require.NoError(t, err)
		require.Empty(t, u.Tokens)

		require.NoError(t, ur.Delete(ctx, u.ID))
		require.ErrorIs(t, ur.Delete(ctx, u.ID), model.ErrNotFound)
	})

	t.Run("liked_set", func(t *testing.T) {
		u, err := ur.Create(ctx, newUser("liked@example.com"))
		require.NoError(t, err)
		p1, p2 := uuid.New(), uuid.New()

		u, err = ur.AddLiked(ctx, u.ID, p1)
		require.NoError(t, err)
		u, err = ur.AddLiked(ctx, u.ID, p1)
		require.NoError(t, err)
		u, err = ur.AddLiked(ctx, u.ID, p2)
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{p1, p2}, u.Liked)

		u, err = ur.RemoveLikedMany(ctx, u.ID, []uuid.UUID{p1})
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{p2}, u.Liked)

		u, err = ur.DetachPost(ctx, u.ID, p2)
		require.NoError(t, err)
		require.Empty(t, u.Liked)
		require.Equal(t, 0, u.CountPosts)
	})

	t.Run("post_repository", func(t *testing.T) {
		owner, err := ur.Create(ctx, newUser("owner@example.com"))
		require.NoError(t, err)

		p, err := pr.Create(ctx, newPost(owner.ID))
		require.NoError(t, err)

		p, err = pr.IncrementLikes(ctx, p.ID, 2)
		require.NoError(t, err)
		require.Equal(t, 2, p.Likes)
		p, err = pr.IncrementLikes(ctx, p.ID, -5)
		require.NoError(t, err)
		require.Equal(t, 0, p.Likes)

		_, err = pr.DeleteOwned(ctx, p.ID, uuid.New())
		require.ErrorIs(t, err, model.ErrNotFound)

		many, err := pr.GetMany(ctx, []uuid.UUID{p.ID, uuid.New()})
		require.NoError(t, err)
		require.Len(t, many, 1)
		require.Equal(t, p.ID, many[0].ID)

		_, err = pr.Create(ctx, newPost(owner.ID))
		require.NoError(t, err)
		list, err := pr.ListByOwner(ctx, owner.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, list, 2)

		deleted, err := pr.DeleteByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, deleted, 2)

		_, err = pr.GetByID(ctx, p.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestLedgerRepository_Sweep(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := database.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ur := repo.NewUserRepository(conn)
	pr := repo.NewPostRepository(conn)
	lr := repo.NewLedgerRepository(db)

	u, err := ur.Create(ctx, newUser("ledger@example.com"))
	require.NoError(t, err)
	p, err := pr.Create(ctx, newPost(u.ID))
	require.NoError(t, err)
	gone := uuid.New()

	_, err = ur.AddLiked(ctx, u.ID, p.ID)
	require.NoError(t, err)
	_, err = ur.AddLiked(ctx, u.ID, gone)
	require.NoError(t, err)
	_, err = pr.IncrementLikes(ctx, p.ID, 3)
	require.NoError(t, err)

	pruned, err := lr.PruneDangling(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, pruned, int64(1))

	_, err = lr.RecountLikes(ctx)
	require.NoError(t, err)
	_, err = lr.RecountPosts(ctx)
	require.NoError(t, err)

	got, err := ur.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{p.ID}, got.Liked)
	require.Equal(t, 1, got.CountPosts)

	post, err := pr.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, post.Likes)
}
