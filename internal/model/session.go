package model

import (
	"context"
	"time"
)

// SessionStore persists the append-only log of successful logins.
type SessionStore interface {
	Append(ctx context.Context, mark SessionMark) (SessionMark, error)
	// Latest returns the most recently appended mark created at or after
	// since, or ErrNotFound.
	Latest(ctx context.Context, since time.Time) (SessionMark, error)
}

// SessionMark records that a user authenticated. The presented credential is
// kept only as a SHA-256 digest.
type SessionMark struct {
	ID               int64
	UserID           int64
	Code             string
	CredentialDigest []byte
	CreatedAt        time.Time
}

// Session is the identity carried by a verified session token.
type Session struct {
	UserID int64
	MarkID int64
}
