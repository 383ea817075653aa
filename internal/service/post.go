package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
)

// Post creates and deletes posts while keeping the owner's post counter and ledger in step.
type Post struct {
	postStore model.PostStore
	userStore model.UserStore
	storage   model.Storage
	logger    *logger.Logger
}

func NewPost(
	postStore model.PostStore,
	userStore model.UserStore,
	storage model.Storage,
	logger *logger.Logger,
) *Post {
	return &Post{
		postStore: postStore,
		userStore: userStore,
		storage:   storage,
		logger:    logger,
	}
}

// AddPost stores the post and then credits the owner's post counter.
// A failed credit is returned as an error; the stored post is kept.
func (s *Post) AddPost(ctx context.Context, owner model.User, fields model.PostFields) (model.Post, model.User, error) {
	heading := strings.TrimSpace(fields.Heading)
	if heading == "" {
		return model.Post{}, model.User{}, fmt.Errorf("%w: heading is required", model.ErrValidation)
	}

	post, err := s.postStore.Create(ctx, model.Post{
		ID:      uuid.New(),
		OwnerID: owner.ID,
		Heading: heading,
		Content: strings.TrimSpace(fields.Content),
	})
	if err != nil {
		return model.Post{}, model.User{}, fmt.Errorf("failed to create post: %w", err)
	}

	updated, err := s.userStore.IncrementCountPosts(ctx, owner.ID)
	if err != nil {
		s.logger.Warn("Post service: post stored but owner counter not credited",
			"user_id", owner.ID,
			"post_id", post.ID,
			"error", err.Error())
		return model.Post{}, model.User{}, fmt.Errorf("failed to credit post count: %w", err)
	}

	s.logger.Info("Post service: post created",
		"user_id", owner.ID,
		"post_id", post.ID)

	return post, updated, nil
}

// DeletePost removes a post owned by owner. A missing post and a post of another user
// both yield ErrNotFound. Other users' ledgers keep the id until read or swept.
func (s *Post) DeletePost(ctx context.Context, owner model.User, postID uuid.UUID) (model.Post, model.User, error) {
	post, err := s.postStore.DeleteOwned(ctx, postID, owner.ID)
	if err != nil {
		return model.Post{}, model.User{}, fmt.Errorf("failed to delete post: %w", err)
	}

	updated, err := s.userStore.DetachPost(ctx, owner.ID, postID)
	if err != nil {
		s.logger.Warn("Post service: post deleted but owner not detached",
			"user_id", owner.ID,
			"post_id", postID,
			"error", err.Error())
		return model.Post{}, model.User{}, fmt.Errorf("failed to detach post from owner: %w", err)
	}

	removeBlobs(ctx, s.storage, s.logger, post.PictureKey)

	s.logger.Info("Post service: post deleted",
		"user_id", owner.ID,
		"post_id", postID)

	return post, updated, nil
}

func (s *Post) GetPost(ctx context.Context, postID uuid.UUID) (model.Post, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// ListByOwner returns a page of the owner's posts, newest first.
func (s *Post) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, skip int) ([]model.Post, error) {
	if skip < 0 {
		skip = 0
	}

	posts, err := s.postStore.ListByOwner(ctx, ownerID, model.PageSize(limit), skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// SetPicture replaces the picture of a post owned by owner.
func (s *Post) SetPicture(ctx context.Context, owner model.User, postID uuid.UUID, data []byte) (model.Post, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	if post.OwnerID != owner.ID {
		return model.Post{}, model.ErrNotFound
	}

	key := pictureKey(post.ID)
	if err := uploadImage(ctx, s.storage, key, data); err != nil {
		return model.Post{}, err
	}

	updated, err := s.postStore.SetPictureKey(ctx, post.ID, owner.ID, key)
	if err != nil {
		removeBlobs(ctx, s.storage, s.logger, key)
		return model.Post{}, fmt.Errorf("failed to save picture: %w", err)
	}
	removeBlobs(ctx, s.storage, s.logger, post.PictureKey)

	return updated, nil
}

func (s *Post) GetPicture(ctx context.Context, postID uuid.UUID) (model.Blob, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return model.Blob{}, fmt.Errorf("failed to get post: %w", err)
	}
	if post.PictureKey == "" {
		return model.Blob{}, model.ErrNotFound
	}

	blob, err := s.storage.Download(ctx, post.PictureKey)
	if err != nil {
		return model.Blob{}, fmt.Errorf("failed to download picture: %w", err)
	}
	return blob, nil
}
