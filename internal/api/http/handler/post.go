package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/gophfeed-server/internal/api/http/response"
	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
)

// PostService defines post creation, deletion and read operations.
type PostService interface {
	AddPost(ctx context.Context, owner model.User, fields model.PostFields) (model.Post, model.User, error)
	DeletePost(ctx context.Context, owner model.User, postID uuid.UUID) (model.Post, model.User, error)
	GetPost(ctx context.Context, postID uuid.UUID) (model.Post, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, skip int) ([]model.Post, error)
	SetPicture(ctx context.Context, owner model.User, postID uuid.UUID, data []byte) (model.Post, error)
	GetPicture(ctx context.Context, postID uuid.UUID) (model.Blob, error)
}

// LikeService defines like ledger operations.
type LikeService interface {
	SetLike(ctx context.Context, user model.User, postID uuid.UUID, want bool) (model.User, error)
	LikedPosts(ctx context.Context, user model.User) ([]model.Post, model.User, error)
}

type createPostRequest struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// Post handles post and like endpoints.
type Post struct {
	postService    PostService
	likeService    LikeService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, likeService LikeService, contextManager model.ContextManager, logger *logger.Logger) *Post {
	return &Post{
		postService:    postService,
		likeService:    likeService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Post) user(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	user, _, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, model.ErrUnauthorized)
	}
	return user, ok
}

func (h *Post) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	post, _, err := h.postService.AddPost(r.Context(), user, model.PostFields{Heading: req.Heading, Content: req.Content})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusCreated, model.NewPostView(post))
}

func (h *Post) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.NewPostView(post))
}

func (h *Post) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	post, _, err := h.postService.DeletePost(r.Context(), user, id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.NewPostView(post))
}

func (h *Post) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	h.list(w, r, user.ID)
}

func (h *Post) ListByUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	h.list(w, r, id)
}

func (h *Post) list(w http.ResponseWriter, r *http.Request, ownerID uuid.UUID) {
	limit, skip, err := page(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	posts, err := h.postService.ListByOwner(r.Context(), ownerID, limit, skip)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.NewPostViews(posts))
}

func (h *Post) ListLiked(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	posts, _, err := h.likeService.LikedPosts(r.Context(), user)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.NewPostViews(posts))
}

// SetLike reads the wanted state from the type query parameter: 1 likes, 0 unlikes.
func (h *Post) SetLike(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	var want bool
	switch r.URL.Query().Get("type") {
	case "1":
		want = true
	case "0":
		want = false
	default:
		handleError(w, h.logger, fmt.Errorf("%w: type must be 1 or 0", errBadRequest))
		return
	}

	updated, err := h.likeService.SetLike(r.Context(), user, id, want)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.PrivateUser(updated))
}

func (h *Post) SetPicture(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	data, err := readBody(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	post, err := h.postService.SetPicture(r.Context(), user, id, data)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.NewPostView(post))
}

func (h *Post) GetPicture(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	blob, err := h.postService.GetPicture(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := response.WriteBlob(w, blob); err != nil {
		h.logger.Warn("failed to stream picture", "post_id", id, "error", err.Error())
	}
}
