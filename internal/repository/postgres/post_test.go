package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophfeed-server/internal/model"
)

func TestNewPostRepository(t *testing.T) {
	db := &Connection{}
	repo := NewPostRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestPostRepository_Create_RequiresHeading(t *testing.T) {
	repo := NewPostRepository(&Connection{})

	_, err := repo.Create(context.Background(), model.Post{OwnerID: uuid.New()})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestPostRepository_GetMany_Empty(t *testing.T) {
	repo := NewPostRepository(&Connection{})

	posts, err := repo.GetMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
