package model

import "context"

// ContextManager carries the authenticated session through a request context.
type ContextManager interface {
	SetSessionToContext(ctx context.Context, user User, token string) context.Context
	GetSessionFromContext(ctx context.Context) (User, string, bool)
}
