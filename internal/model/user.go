package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for registered users.
type UserStore interface {
	Create(ctx context.Context, user User, credential Credential) (User, error)
	GetByCode(ctx context.Context, code string) (User, Credential, error)
	GetByID(ctx context.Context, id int64) (User, error)
}

// User represents a registered citizen profile.
type User struct {
	ID        int64
	Name      string
	Surname   string
	Address   string
	Email     string
	CreatedAt time.Time
}

// FullName joins name and surname the way reports display the owner.
func (u User) FullName() string {
	return u.Name + " " + u.Surname
}

// Credential is the login row tied to a user. Hash is a bcrypt hash of the
// plaintext credential.
type Credential struct {
	UserID int64
	Code   string
	Hash   []byte
}

// RegisterParams contains parameters to register a user.
type RegisterParams struct {
	Name       string
	Surname    string
	Address    string
	Email      string
	Code       string
	Credential string
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}
