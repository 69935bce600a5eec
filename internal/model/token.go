package model

import "time"

// TokenManager generates and validates session tokens.
type TokenManager interface {
	GenerateSessionToken(userID, markID int64) (token string, expiresAt time.Time, err error)
	ParseSessionToken(token string) (Session, error)
}
