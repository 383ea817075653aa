package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
)

// Like toggles entries of the user's like ledger together with the post's like counter.
// The two documents are written one after another without a transaction: the counter
// goes first, so an interrupted toggle leaves an over-count for the Reconciler rather
// than a like that was never credited.
type Like struct {
	userStore model.UserStore
	postStore model.PostStore
	logger    *logger.Logger
}

func NewLike(userStore model.UserStore, postStore model.PostStore, logger *logger.Logger) *Like {
	return &Like{
		userStore: userStore,
		postStore: postStore,
		logger:    logger,
	}
}

// SetLike makes the ledger of user contain postID when want is true and not contain it otherwise.
// Whether the post is currently liked is decided from the user snapshot passed in.
func (s *Like) SetLike(ctx context.Context, user model.User, postID uuid.UUID, want bool) (model.User, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get post: %w", err)
	}

	liked := user.Likes(post.ID)
	if want == liked {
		return user, nil
	}

	delta := 1
	if !want {
		delta = -1
	}

	if _, err := s.postStore.IncrementLikes(ctx, post.ID, delta); err != nil {
		return model.User{}, fmt.Errorf("failed to update post likes: %w", err)
	}

	var updated model.User
	if want {
		updated, err = s.userStore.AddLiked(ctx, user.ID, post.ID)
	} else {
		updated, err = s.userStore.RemoveLiked(ctx, user.ID, post.ID)
	}
	if err != nil {
		s.logger.Warn("Like service: post counter changed but ledger write failed",
			"user_id", user.ID,
			"post_id", post.ID,
			"delta", delta,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update liked posts: %w", err)
	}

	s.logger.Debug("Like service: like toggled",
		"user_id", user.ID,
		"post_id", post.ID,
		"liked", want)

	return updated, nil
}

// LikedPosts resolves the user's ledger into posts. Entries whose post was deleted are
// dropped from the result and pruned from the ledger.
func (s *Like) LikedPosts(ctx context.Context, user model.User) ([]model.Post, model.User, error) {
	if len(user.Liked) == 0 {
		return []model.Post{}, user, nil
	}

	found, err := s.postStore.GetMany(ctx, user.Liked)
	if err != nil {
		return nil, model.User{}, fmt.Errorf("failed to get liked posts: %w", err)
	}
	byID := make(map[uuid.UUID]model.Post, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	posts := make([]model.Post, 0, len(found))
	var dangling []uuid.UUID
	for _, id := range user.Liked {
		post, ok := byID[id]
		if !ok {
			dangling = append(dangling, id)
			continue
		}
		posts = append(posts, post)
	}

	if len(dangling) == 0 {
		return posts, user, nil
	}

	updated, err := s.userStore.RemoveLikedMany(ctx, user.ID, dangling)
	if err != nil {
		s.logger.Warn("Like service: failed to prune dangling likes",
			"user_id", user.ID,
			"dangling", len(dangling),
			"error", err.Error())
		return posts, user, nil
	}

	s.logger.Info("Like service: pruned dangling likes",
		"user_id", user.ID,
		"dangling", len(dangling))

	return posts, updated, nil
}
