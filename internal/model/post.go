package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostStore defines persistence operations for post documents.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, skip int) ([]Post, error)
	// GetMany returns the posts that still exist among ids, in no particular order.
	GetMany(ctx context.Context, ids []uuid.UUID) ([]Post, error)
	// IncrementLikes adds delta to likes atomically, never going below zero.
	IncrementLikes(ctx context.Context, id uuid.UUID, delta int) (Post, error)
	SetPictureKey(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, key string) (Post, error)
	// DeleteOwned deletes the post only if it belongs to ownerID and returns it.
	DeleteOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (Post, error)
	// DeleteByOwner deletes all posts of ownerID and returns them.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) ([]Post, error)
}

// Post represents a stored post.
type Post struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID `validate:"required"`
	Heading    string    `validate:"required"`
	Content    string
	Likes      int `validate:"gte=0"`
	PictureKey string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PostFields contains caller supplied fields of a new post.
type PostFields struct {
	Heading string
	Content string
}

// Listing limits for offset pagination.
const (
	DefaultPageSize = 5
	MaxPageSize     = 50
)

// PageSize clamps a requested limit into [1, MaxPageSize], using DefaultPageSize for zero or negative values.
func PageSize(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}
