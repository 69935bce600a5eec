package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/cogedon-server/internal/logger"
	"github.com/dtroode/cogedon-server/internal/metrics"
	"github.com/dtroode/cogedon-server/internal/model"
)

// Sessions records successful logins and maps them back to users.
//
// CurrentUser answers with whoever logged in last, across all clients. Two
// clients logging in concurrently will see each other's identity. Session
// tokens from Issue do not have that problem and take precedence wherever a
// caller presents one.
type Sessions struct {
	sessionStore model.SessionStore
	tokenManager model.TokenManager
	logger       *logger.Logger
	now          func() time.Time
	startedAt    time.Time
}

func NewSessions(sessionStore model.SessionStore, tokenManager model.TokenManager, logger *logger.Logger) *Sessions {
	return newSessions(sessionStore, tokenManager, logger, time.Now)
}

func newSessions(sessionStore model.SessionStore, tokenManager model.TokenManager, logger *logger.Logger, now func() time.Time) *Sessions {
	return &Sessions{
		sessionStore: sessionStore,
		tokenManager: tokenManager,
		logger:       logger,
		now:          now,
		// Marks written by earlier runs of the process are not current.
		startedAt: now().UTC().Truncate(time.Microsecond),
	}
}

// MarkAuthenticated appends a login mark. Only a digest of the credential is
// stored.
func (s *Sessions) MarkAuthenticated(ctx context.Context, userID int64, code, credential string) (model.SessionMark, error) {
	digest := sha256.Sum256([]byte(credential))

	mark, err := s.sessionStore.Append(ctx, model.SessionMark{
		UserID:           userID,
		Code:             code,
		CredentialDigest: digest[:],
		CreatedAt:        s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("Sessions service: failed to append session mark",
			"user_id", userID,
			"error", err.Error())
		return model.SessionMark{}, fmt.Errorf("failed to append session mark: %w", err)
	}

	return mark, nil
}

// CurrentUser returns the user of the most recent login in this process
// lifetime.
func (s *Sessions) CurrentUser(ctx context.Context) (int64, error) {
	mark, err := s.sessionStore.Latest(ctx, s.startedAt)
	if errors.Is(err, model.ErrNotFound) {
		return 0, model.ErrNoActiveSession
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest session mark: %w", err)
	}

	metrics.SessionFallbacks.Inc()
	s.logger.Warn("Sessions service: identity taken from most recent login",
		"user_id", mark.UserID,
		"mark_id", mark.ID)

	return mark.UserID, nil
}

// Issue signs a session token for the given mark.
func (s *Sessions) Issue(_ context.Context, mark model.SessionMark) (string, time.Time, error) {
	token, expiresAt, err := s.tokenManager.GenerateSessionToken(mark.UserID, mark.ID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	return token, expiresAt, nil
}

// Resolve verifies a session token.
func (s *Sessions) Resolve(_ context.Context, token string) (model.Session, error) {
	session, err := s.tokenManager.ParseSessionToken(token)
	if err != nil {
		s.logger.Debug("Sessions service: rejected token", "error", err.Error())
		if !errors.Is(err, model.ErrInvalidToken) {
			err = fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
		}
		return model.Session{}, err
	}

	return session, nil
}
