package context

import (
	"context"

	"github.com/dtroode/cogedon-server/internal/model"
)

type sessionKey struct{}

// Manager stores the verified session of a request in its context.
type Manager struct{}

// NewManager creates a new context manager instance.
//
// Returns a pointer to the newly created Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSessionToContext returns a copy of ctx carrying the session.
//
// Parameters:
//   - ctx: The request context
//   - session: The session resolved from a bearer token
//
// Returns a new context holding the session.
func (m *Manager) SetSessionToContext(ctx context.Context, session model.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext retrieves the session set by SetSessionToContext.
//
// Parameters:
//   - ctx: The request context
//
// Returns the session and a boolean indicating whether one was found.
func (m *Manager) GetSessionFromContext(ctx context.Context) (model.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(model.Session)
	if !ok || session.UserID == 0 {
		return model.Session{}, false
	}
	return session, true
}
