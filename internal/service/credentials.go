package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/cogedon-server/internal/logger"
	"github.com/dtroode/cogedon-server/internal/model"
)

// Credentials registers users and verifies code/credential pairs.
type Credentials struct {
	userStore model.UserStore
	cost      int
	logger    *logger.Logger
}

func NewCredentials(userStore model.UserStore, cost int, logger *logger.Logger) *Credentials {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Credentials{
		userStore: userStore,
		cost:      cost,
		logger:    logger,
	}
}

// Register stores a new user. The login code defaults to the e-mail.
func (c *Credentials) Register(ctx context.Context, params model.RegisterParams) (int64, error) {
	if err := validateRegistration(params); err != nil {
		return 0, err
	}

	code := params.Code
	if code == "" {
		code = params.Email
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Credential), c.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return 0, model.NewValidationError("clave", "too long")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to hash credential: %w", err)
	}

	user, err := c.userStore.Create(ctx,
		model.User{
			Name:    params.Name,
			Surname: params.Surname,
			Address: params.Address,
			Email:   params.Email,
		},
		model.Credential{Code: code, Hash: hash},
	)
	if errors.Is(err, model.ErrConflict) {
		c.logger.Info("Credentials service: code already taken", "code", code)
		return 0, fmt.Errorf("code %q: %w", code, model.ErrConflict)
	}
	if err != nil {
		c.logger.Error("Credentials service: failed to create user",
			"code", code,
			"error", err.Error())
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	c.logger.Info("Credentials service: user registered",
		"user_id", user.ID,
		"code", code)

	return user.ID, nil
}

// Authenticate returns the id of the single user whose code and credential
// both match exactly.
func (c *Credentials) Authenticate(ctx context.Context, code, credential string) (int64, error) {
	if code == "" {
		return 0, model.NewValidationError("codigo", "required")
	}
	if credential == "" {
		return 0, model.NewValidationError("clave", "required")
	}

	user, stored, err := c.userStore.GetByCode(ctx, code)
	if errors.Is(err, model.ErrNotFound) {
		return 0, model.ErrNotFound
	}
	if err != nil {
		c.logger.Error("Credentials service: failed to get user by code",
			"code", code,
			"error", err.Error())
		return 0, fmt.Errorf("failed to get user by code: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(stored.Hash, []byte(credential)); err != nil {
		c.logger.Debug("Credentials service: credential mismatch", "code", code)
		return 0, model.ErrNotFound
	}

	return user.ID, nil
}

func validateRegistration(params model.RegisterParams) error {
	required := []struct {
		field string
		value string
	}{
		{"nombre", params.Name},
		{"apellido", params.Surname},
		{"direccion", params.Address},
		{"email", params.Email},
		{"clave", params.Credential},
	}
	for _, r := range required {
		if r.value == "" {
			return model.NewValidationError(r.field, "required")
		}
	}
	return nil
}
