package context

import (
	"context"

	"github.com/dtroode/gophfeed-server/internal/model"
)

// sessionKey is the request context key holding the authenticated session.
type sessionKey struct{}

type session struct {
	user  model.User
	token string
}

// Manager stores the authenticated user and the bearer token it presented in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSessionToContext returns a child context carrying user and token.
func (m *Manager) SetSessionToContext(ctx context.Context, user model.User, token string) context.Context {
	return context.WithValue(ctx, sessionKey{}, session{user: user, token: token})
}

// GetSessionFromContext returns the session set by SetSessionToContext.
func (m *Manager) GetSessionFromContext(ctx context.Context) (model.User, string, bool) {
	s, ok := ctx.Value(sessionKey{}).(session)
	if !ok {
		return model.User{}, "", false
	}
	return s.user, s.token, true
}
