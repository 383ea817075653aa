package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/gophfeed-server/internal/api/http/response"
	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
)

// AccountService defines account lifecycle and profile operations.
type AccountService interface {
	SignUp(ctx context.Context, params model.SignUpParams) (model.User, string, error)
	Login(ctx context.Context, email, password string) (model.User, string, error)
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
	Search(ctx context.Context, name string, limit, skip int) ([]model.User, error)
	SetAbout(ctx context.Context, user model.User, about string) (model.User, error)
	UpdateProfile(ctx context.Context, user model.User, fields map[string]any) (model.User, error)
	DeleteUser(ctx context.Context, user model.User) (model.User, error)
	SetAvatar(ctx context.Context, user model.User, data []byte) (model.User, error)
	DeleteAvatar(ctx context.Context, user model.User) (model.User, error)
	GetAvatar(ctx context.Context, userID uuid.UUID) (model.Blob, error)
}

// SessionService defines token revocation operations.
type SessionService interface {
	RevokeCurrent(ctx context.Context, user model.User, token string) (model.User, error)
	RevokeAll(ctx context.Context, user model.User) (model.User, error)
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type aboutRequest struct {
	About string `json:"about"`
}

type sessionResponse struct {
	User  model.UserView `json:"user"`
	Token string         `json:"token"`
}

// User handles account endpoints.
type User struct {
	accountService AccountService
	sessionService SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(accountService AccountService, sessionService SessionService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		accountService: accountService,
		sessionService: sessionService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *User) session(w http.ResponseWriter, r *http.Request) (model.User, string, bool) {
	user, token, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, model.ErrUnauthorized)
	}
	return user, token, ok
}

func (h *User) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	user, token, err := h.accountService.SignUp(r.Context(), model.SignUpParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusCreated, sessionResponse{User: model.PrivateUser(user), Token: token})
}

func (h *User) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	user, token, err := h.accountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, sessionResponse{User: model.PrivateUser(user), Token: token})
}

func (h *User) Logout(w http.ResponseWriter, r *http.Request) {
	user, token, ok := h.session(w, r)
	if !ok {
		return
	}

	updated, err := h.sessionService.RevokeCurrent(r.Context(), user, token)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.PrivateUser(updated))
}

func (h *User) LogoutAll(w http.ResponseWriter, r *http.Request) {
	user, _, ok := h.session(w, r)
	if !ok {
		return
	}

	updated, err := h.sessionService.RevokeAll(r.Context(), user)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.PrivateUser(updated))
}

func (h *User) Me(w http.ResponseWriter, r *http.Request) {
	user, _, ok := h.session(w, r)
	if !ok {
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.PrivateUser(user))
}

// UpdateMe accepts a JSON object of profile fields. The avatar is a base64 string or null.
func (h *User) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, _, ok := h.session(w, r)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := decodeJSON(r, &raw); err != nil {
		handleError(w, h.logger, err)
		return
	}

	fields, err := profileFields(raw)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	updated, err := h.accountService.UpdateProfile(r.Context(), user, fields)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.PrivateUser(updated))
}

func profileFields(raw map[string]json.RawMessage) (map[string]any, error) {
	fields := make(map[string]any, len(raw))
	for key, value := range raw {
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, fmt.Errorf("%w: malformed %s", errBadRequest, key)
		}

		if encoded, ok := v.(string); ok && key == model.ProfileFieldAvatar {
			data, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return nil, fmt.Errorf("%w: avatar must be base64", errBadRequest)
			}
			v = data
		}
		fields[key] = v
	}
	return fields, nil
}

func (h *User) DeleteMe(w http.ResponseWriter, r *http.Request) {
	user, _, ok := h.session(w, r)
	if !ok {
		return
	}

	deleted, err := h.accountService.DeleteUser(r.Context(), user)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.PrivateUser(deleted))
}

func (h *User) SetAbout(w http.ResponseWriter, r *http.Request) {
	user, _, ok := h.session(w, r)
	if !ok {
		return
	}

	var req aboutRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	updated, err := h.accountService.SetAbout(r.Context(), user, req.About)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.PrivateUser(updated))
}

// SetAvatar takes the raw image as the request body.
func (h *User) SetAvatar(w http.ResponseWriter, r *http.Request) {
	user, _, ok := h.session(w, r)
	if !ok {
		return
	}

	data, err := readBody(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	updated, err := h.accountService.SetAvatar(r.Context(), user, data)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.PrivateUser(updated))
}

func (h *User) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	user, _, ok := h.session(w, r)
	if !ok {
		return
	}

	updated, err := h.accountService.DeleteAvatar(r.Context(), user)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.PrivateUser(updated))
}

func (h *User) GetAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	blob, err := h.accountService.GetAvatar(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := response.WriteBlob(w, blob); err != nil {
		h.logger.Warn("failed to stream avatar", "user_id", id, "error", err.Error())
	}
}

func (h *User) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	user, err := h.accountService.GetUser(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.PublicUser(user))
}

func (h *User) Search(w http.ResponseWriter, r *http.Request) {
	limit, skip, err := page(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	users, err := h.accountService.Search(r.Context(), r.URL.Query().Get("name"), limit, skip)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	_ = response.WriteJSON(w, http.StatusOK, model.PublicUsers(users))
}
