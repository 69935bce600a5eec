package service

import (
	"context"
	"fmt"

	"github.com/dtroode/cogedon-server/internal/logger"
	"github.com/dtroode/cogedon-server/internal/model"
)

// Auth combines credential checks with session bookkeeping for the HTTP
// boundary.
type Auth struct {
	credentials *Credentials
	sessions    *Sessions
	userStore   model.UserStore
	logger      *logger.Logger
}

func NewAuth(credentials *Credentials, sessions *Sessions, userStore model.UserStore, logger *logger.Logger) *Auth {
	return &Auth{
		credentials: credentials,
		sessions:    sessions,
		userStore:   userStore,
		logger:      logger,
	}
}

func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (int64, error) {
	return a.credentials.Register(ctx, params)
}

// Login authenticates, records the login and issues a session token.
func (a *Auth) Login(ctx context.Context, code, credential string) (model.LoginResult, error) {
	userID, err := a.credentials.Authenticate(ctx, code, credential)
	if err != nil {
		return model.LoginResult{}, err
	}

	mark, err := a.sessions.MarkAuthenticated(ctx, userID, code, credential)
	if err != nil {
		return model.LoginResult{}, err
	}

	token, expiresAt, err := a.sessions.Issue(ctx, mark)
	if err != nil {
		a.logger.Error("Auth service: failed to issue session token",
			"user_id", userID,
			"error", err.Error())
		return model.LoginResult{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", userID,
		"mark_id", mark.ID)

	return model.LoginResult{UserID: userID, Token: token, ExpiresAt: expiresAt}, nil
}

// CurrentIdentity returns the profile of owner, or of the most recent login
// when owner is zero.
func (a *Auth) CurrentIdentity(ctx context.Context, owner int64) (model.User, error) {
	if owner == 0 {
		var err error
		owner, err = a.sessions.CurrentUser(ctx)
		if err != nil {
			return model.User{}, err
		}
	}

	user, err := a.userStore.GetByID(ctx, owner)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
