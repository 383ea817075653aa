package service

import (
	"context"
	"fmt"

	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
)

// Session issues, verifies and revokes bearer tokens kept in the user's token list.
// Signing composes the TokenManager; the token list in UserStore is the only source of validity.
type Session struct {
	manager   model.TokenManager
	userStore model.UserStore
	logger    *logger.Logger
}

func NewSession(manager model.TokenManager, userStore model.UserStore, logger *logger.Logger) *Session {
	return &Session{manager: manager, userStore: userStore, logger: logger}
}

// Authenticate resolves token to the user whose token list contains it.
// Every failure is reported as ErrUnauthorized.
func (s *Session) Authenticate(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, model.ErrUnauthorized
	}

	userID, err := s.manager.Verify(token)
	if err != nil {
		s.logger.Debug("Session service: token verification failed",
			"error", err.Error())
		return model.User{}, model.ErrUnauthorized
	}

	user, err := s.userStore.GetByToken(ctx, userID, token)
	if err != nil {
		s.logger.Debug("Session service: token not active",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, model.ErrUnauthorized
	}

	return user, nil
}

// Issue signs a new token for user and appends it to the token list.
func (s *Session) Issue(ctx context.Context, user model.User) (string, model.User, error) {
	token, err := s.manager.Sign(user.ID)
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to sign token: %w", err)
	}

	updated, err := s.userStore.PushToken(ctx, user.ID, token)
	if err != nil {
		s.logger.Error("Session service: failed to store token",
			"user_id", user.ID,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to store token: %w", err)
	}

	s.logger.Debug("Session service: token issued",
		"user_id", user.ID,
		"active_tokens", len(updated.Tokens))

	return token, updated, nil
}

// RevokeCurrent removes the first occurrence of token. An absent token is not an error.
func (s *Session) RevokeCurrent(ctx context.Context, user model.User, token string) (model.User, error) {
	updated, err := s.userStore.PullToken(ctx, user.ID, token)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.Info("Session service: token revoked",
		"user_id", user.ID)

	return updated, nil
}

func (s *Session) RevokeAll(ctx context.Context, user model.User) (model.User, error) {
	updated, err := s.userStore.ClearTokens(ctx, user.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to revoke all tokens: %w", err)
	}

	s.logger.Info("Session service: all tokens revoked",
		"user_id", user.ID,
		"revoked", len(user.Tokens))

	return updated, nil
}
