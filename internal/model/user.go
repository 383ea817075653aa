package model

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for user documents.
// Every method is a single atomic write or read of one document.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// GetByToken returns the user with the given id only if token is in its token list.
	GetByToken(ctx context.Context, id uuid.UUID, token string) (User, error)
	Search(ctx context.Context, name string, limit, skip int) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	// Update saves name, email, about and avatar key.
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error

	PushToken(ctx context.Context, id uuid.UUID, token string) (User, error)
	// PullToken removes the first occurrence of token. Missing token is not an error.
	PullToken(ctx context.Context, id uuid.UUID, token string) (User, error)
	ClearTokens(ctx context.Context, id uuid.UUID) (User, error)

	// AddLiked appends postID unless already present.
	AddLiked(ctx context.Context, id uuid.UUID, postID uuid.UUID) (User, error)
	RemoveLiked(ctx context.Context, id uuid.UUID, postID uuid.UUID) (User, error)
	// RemoveLikedMany drops every listed post id from the ledger.
	RemoveLikedMany(ctx context.Context, id uuid.UUID, postIDs []uuid.UUID) (User, error)
	IncrementCountPosts(ctx context.Context, id uuid.UUID) (User, error)
	// DetachPost decrements count_posts (floored at zero) and removes postID from liked in one write.
	DetachPost(ctx context.Context, id uuid.UUID, postID uuid.UUID) (User, error)
}

// User represents a stored account together with its denormalized state.
type User struct {
	ID           uuid.UUID
	Name         string `validate:"required"`
	Email        string `validate:"required,email"`
	PasswordHash string `validate:"required"`
	Tokens       []string
	Liked        []uuid.UUID
	CountPosts   int `validate:"gte=0"`
	About        string
	AvatarKey    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Likes reports whether postID is in the user's liked set.
func (u User) Likes(postID uuid.UUID) bool {
	return slices.Contains(u.Liked, postID)
}

// HasToken reports whether token is one of the user's active session tokens.
func (u User) HasToken(token string) bool {
	return slices.Contains(u.Tokens, token)
}

// SignUpParams contains data to register a new account.
type SignUpParams struct {
	Name     string
	Email    string
	Password string `validate:"required,min=8"`
}

// Profile update keys accepted by UpdateProfile.
const (
	ProfileFieldName   = "name"
	ProfileFieldEmail  = "email"
	ProfileFieldAvatar = "avatar"
)

// ProfileFields lists keys a user is allowed to change via profile update.
var ProfileFields = []string{ProfileFieldName, ProfileFieldEmail, ProfileFieldAvatar}
