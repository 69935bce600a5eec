package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/cogedon-server/internal/logger"
	"github.com/dtroode/cogedon-server/internal/model"
)

// SessionResolver resolves a session from a bearer token.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (model.Session, error)
}

// Authenticate validates optional bearer tokens and injects the session into
// the request context. Requests without a token pass through untouched.
type Authenticate struct {
	sessionResolver SessionResolver
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessionResolver SessionResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessionResolver: sessionResolver, contextManager: contextManager, logger: logger}
}

// Handle is the gin handler of the middleware.
func (m *Authenticate) Handle(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.Next()
		return
	}

	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token de sesión inválido."})
		return
	}

	session, err := m.sessionResolver.Resolve(c.Request.Context(), tokenString)
	if err != nil || session.UserID == 0 {
		m.logger.Debug("Authenticate middleware: rejected token", "path", c.FullPath())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token de sesión inválido."})
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetSessionToContext(c.Request.Context(), session))
	c.Next()
}
