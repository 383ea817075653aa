// Package memory implements the document stores in process memory for development and tests.
// Each method holds the store mutex for exactly one document operation, so two calls never
// compose into a transaction, matching the guarantees of the postgres adapter.
package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/validation"
)

// DB implements in-memory user and post documents.
type DB struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
	posts map[uuid.UUID]*model.Post
	now   func() time.Time
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		users: make(map[uuid.UUID]*model.User),
		posts: make(map[uuid.UUID]*model.Post),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Ensure interfaces are met.
var _ model.UserStore = (*UserRepo)(nil)
var _ model.PostStore = (*PostRepo)(nil)
var _ model.LedgerStore = (*LedgerRepo)(nil)

// UserRepo is the user view of DB.
type UserRepo struct{ db *DB }

// PostRepo is the post view of DB.
type PostRepo struct{ db *DB }

// LedgerRepo is the reconciliation view of DB.
type LedgerRepo struct{ db *DB }

// Users returns the user store backed by db.
func (db *DB) Users() *UserRepo { return &UserRepo{db: db} }

// Posts returns the post store backed by db.
func (db *DB) Posts() *PostRepo { return &PostRepo{db: db} }

// Ledger returns the ledger store backed by db.
func (db *DB) Ledger() *LedgerRepo { return &LedgerRepo{db: db} }

func cloneUser(u *model.User) model.User {
	c := *u
	c.Tokens = slices.Clone(u.Tokens)
	c.Liked = slices.Clone(u.Liked)
	return c
}

// --- UserStore ---

func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *UserRepo) GetByToken(_ context.Context, id uuid.UUID, token string) (model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.users[id]
	if !ok || !u.HasToken(token) {
		return model.User{}, model.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepo) Search(_ context.Context, name string, limit, skip int) ([]model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	needle := strings.ToLower(name)
	var found []model.User
	for _, u := range r.db.users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			found = append(found, cloneUser(u))
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].Name != found[j].Name {
			return found[i].Name < found[j].Name
		}
		return found[i].ID.String() < found[j].ID.String()
	})

	return page(found, limit, skip), nil
}

func (r *UserRepo) Create(_ context.Context, user model.User) (model.User, error) {
	if err := validation.Struct(user); err != nil {
		return model.User{}, err
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.db.emailTaken(user.Email, uuid.Nil) {
		return model.User{}, model.ErrConflict
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := r.db.now()
	user.CreatedAt, user.UpdatedAt = now, now
	stored := cloneUser(&user)
	r.db.users[user.ID] = &stored
	return cloneUser(&stored), nil
}

func (r *UserRepo) Update(_ context.Context, user model.User) (model.User, error) {
	if err := validation.Struct(user); err != nil {
		return model.User{}, err
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.users[user.ID]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	if r.db.emailTaken(user.Email, user.ID) {
		return model.User{}, model.ErrConflict
	}
	u.Name = user.Name
	u.Email = user.Email
	u.About = user.About
	u.AvatarKey = user.AvatarKey
	u.UpdatedAt = r.db.now()
	return cloneUser(u), nil
}

func (r *UserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.db.users, id)
	return nil
}

func (r *UserRepo) PushToken(_ context.Context, id uuid.UUID, token string) (model.User, error) {
	return r.db.mutateUser(id, func(u *model.User) {
		u.Tokens = append(u.Tokens, token)
	})
}

func (r *UserRepo) PullToken(_ context.Context, id uuid.UUID, token string) (model.User, error) {
	return r.db.mutateUser(id, func(u *model.User) {
		if i := slices.Index(u.Tokens, token); i >= 0 {
			u.Tokens = slices.Delete(u.Tokens, i, i+1)
		}
	})
}

func (r *UserRepo) ClearTokens(_ context.Context, id uuid.UUID) (model.User, error) {
	return r.db.mutateUser(id, func(u *model.User) {
		u.Tokens = []string{}
	})
}

func (r *UserRepo) AddLiked(_ context.Context, id uuid.UUID, postID uuid.UUID) (model.User, error) {
	return r.db.mutateUser(id, func(u *model.User) {
		if !u.Likes(postID) {
			u.Liked = append(u.Liked, postID)
		}
	})
}

func (r *UserRepo) RemoveLiked(_ context.Context, id uuid.UUID, postID uuid.UUID) (model.User, error) {
	return r.db.mutateUser(id, func(u *model.User) {
		u.Liked = slices.DeleteFunc(u.Liked, func(p uuid.UUID) bool { return p == postID })
	})
}

func (r *UserRepo) RemoveLikedMany(_ context.Context, id uuid.UUID, postIDs []uuid.UUID) (model.User, error) {
	return r.db.mutateUser(id, func(u *model.User) {
		u.Liked = slices.DeleteFunc(u.Liked, func(p uuid.UUID) bool { return slices.Contains(postIDs, p) })
	})
}

func (r *UserRepo) IncrementCountPosts(_ context.Context, id uuid.UUID) (model.User, error) {
	return r.db.mutateUser(id, func(u *model.User) {
		u.CountPosts++
	})
}

func (r *UserRepo) DetachPost(_ context.Context, id uuid.UUID, postID uuid.UUID) (model.User, error) {
	return r.db.mutateUser(id, func(u *model.User) {
		u.CountPosts = max(u.CountPosts-1, 0)
		u.Liked = slices.DeleteFunc(u.Liked, func(p uuid.UUID) bool { return p == postID })
	})
}

func (db *DB) mutateUser(id uuid.UUID, fn func(u *model.User)) (model.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	u, ok := db.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	fn(u)
	u.UpdatedAt = db.now()
	return cloneUser(u), nil
}

func (db *DB) emailTaken(email string, except uuid.UUID) bool {
	for id, u := range db.users {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}

// --- PostStore ---

func (r *PostRepo) Create(_ context.Context, post model.Post) (model.Post, error) {
	if err := validation.Struct(post); err != nil {
		return model.Post{}, err
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := r.db.now()
	post.CreatedAt, post.UpdatedAt = now, now
	stored := post
	r.db.posts[post.ID] = &stored
	return stored, nil
}

func (r *PostRepo) GetByID(_ context.Context, id uuid.UUID) (model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.posts[id]
	if !ok {
		return model.Post{}, model.ErrNotFound
	}
	return *p, nil
}

func (r *PostRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, skip int) ([]model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var found []model.Post
	for _, p := range r.db.posts {
		if p.OwnerID == ownerID {
			found = append(found, *p)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if !found[i].CreatedAt.Equal(found[j].CreatedAt) {
			return found[i].CreatedAt.After(found[j].CreatedAt)
		}
		return found[i].ID.String() < found[j].ID.String()
	})

	return page(found, limit, skip), nil
}

func (r *PostRepo) GetMany(_ context.Context, ids []uuid.UUID) ([]model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	found := make([]model.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.db.posts[id]; ok {
			found = append(found, *p)
		}
	}
	return found, nil
}

func (r *PostRepo) IncrementLikes(_ context.Context, id uuid.UUID, delta int) (model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.posts[id]
	if !ok {
		return model.Post{}, model.ErrNotFound
	}
	p.Likes = max(p.Likes+delta, 0)
	p.UpdatedAt = r.db.now()
	return *p, nil
}

func (r *PostRepo) SetPictureKey(_ context.Context, id uuid.UUID, ownerID uuid.UUID, key string) (model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.posts[id]
	if !ok || p.OwnerID != ownerID {
		return model.Post{}, model.ErrNotFound
	}
	p.PictureKey = key
	p.UpdatedAt = r.db.now()
	return *p, nil
}

func (r *PostRepo) DeleteOwned(_ context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.posts[id]
	if !ok || p.OwnerID != ownerID {
		return model.Post{}, model.ErrNotFound
	}
	delete(r.db.posts, id)
	return *p, nil
}

func (r *PostRepo) DeleteByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var deleted []model.Post
	for id, p := range r.db.posts {
		if p.OwnerID == ownerID {
			deleted = append(deleted, *p)
			delete(r.db.posts, id)
		}
	}
	return deleted, nil
}

// --- LedgerStore ---

func (r *LedgerRepo) PruneDangling(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var changed int64
	for _, u := range r.db.users {
		before := len(u.Liked)
		u.Liked = slices.DeleteFunc(u.Liked, func(p uuid.UUID) bool {
			_, ok := r.db.posts[p]
			return !ok
		})
		if len(u.Liked) != before {
			changed++
		}
	}
	return changed, nil
}

func (r *LedgerRepo) RecountLikes(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	counts := make(map[uuid.UUID]int)
	for _, u := range r.db.users {
		for _, p := range u.Liked {
			counts[p]++
		}
	}

	var changed int64
	for id, p := range r.db.posts {
		if p.Likes != counts[id] {
			p.Likes = counts[id]
			changed++
		}
	}
	return changed, nil
}

func (r *LedgerRepo) RecountPosts(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	counts := make(map[uuid.UUID]int)
	for _, p := range r.db.posts {
		counts[p.OwnerID]++
	}

	var changed int64
	for id, u := range r.db.users {
		if u.CountPosts != counts[id] {
			u.CountPosts = counts[id]
			changed++
		}
	}
	return changed, nil
}

func page[T any](items []T, limit, skip int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
