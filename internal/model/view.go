package model

import (
	"time"

	"github.com/google/uuid"
)

// UserView is the owner's view of an account.
type UserView struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Liked      []uuid.UUID `json:"liked"`
	CountPosts int         `json:"count_posts"`
	About      string      `json:"about"`
	HasAvatar  bool        `json:"has_avatar"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// PublicUserView is what other users see of an account.
type PublicUserView struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Liked      []uuid.UUID `json:"liked"`
	CountPosts int         `json:"count_posts"`
	About      string      `json:"about"`
	HasAvatar  bool        `json:"has_avatar"`
}

// PostView is the serialized form of a post without its picture.
type PostView struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner"`
	Heading    string    `json:"heading"`
	Content    string    `json:"content"`
	Likes      int       `json:"likes"`
	HasPicture bool      `json:"has_picture"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PrivateUser drops the password hash, session tokens and avatar blob.
func PrivateUser(u User) UserView {
	return UserView{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Liked:      nonNilIDs(u.Liked),
		CountPosts: u.CountPosts,
		About:      u.About,
		HasAvatar:  u.AvatarKey != "",
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// PublicUser additionally drops the email and timestamps.
func PublicUser(u User) PublicUserView {
	return PublicUserView{
		ID:         u.ID,
		Name:       u.Name,
		Liked:      nonNilIDs(u.Liked),
		CountPosts: u.CountPosts,
		About:      u.About,
		HasAvatar:  u.AvatarKey != "",
	}
}

// PublicUsers projects a list of users.
func PublicUsers(users []User) []PublicUserView {
	views := make([]PublicUserView, 0, len(users))
	for _, u := range users {
		views = append(views, PublicUser(u))
	}
	return views
}

// NewPostView drops the picture blob.
func NewPostView(p Post) PostView {
	return PostView{
		ID:         p.ID,
		OwnerID:    p.OwnerID,
		Heading:    p.Heading,
		Content:    p.Content,
		Likes:      p.Likes,
		HasPicture: p.PictureKey != "",
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// NewPostViews projects a list of posts.
func NewPostViews(posts []Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, NewPostView(p))
	}
	return views
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
