package postgres

import (
	"context"
	"time"

	"github.com/dtroode/cogedon-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

// SessionRepository stores the append-only login log.
type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

func (r *SessionRepository) Append(ctx context.Context, mark model.SessionMark) (model.SessionMark, error) {
	query := `INSERT INTO session_marks (user_id, code, credential_digest, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		mark.UserID, mark.Code, mark.CredentialDigest, mark.CreatedAt,
	).Scan(&mark.ID)
	if err != nil {
		return model.SessionMark{}, wrapError("append session mark", err)
	}

	return mark, nil
}

// Latest orders by id, not created_at, so marks written within the same clock
// tick still resolve to the last one appended.
func (r *SessionRepository) Latest(ctx context.Context, since time.Time) (model.SessionMark, error) {
	var mark model.SessionMark
	query := `SELECT id, user_id, code, credential_digest, created_at
			  FROM session_marks
			  WHERE created_at >= $1
			  ORDER BY id DESC
			  LIMIT 1`

	err := r.db.QueryRowContext(ctx, query, since).Scan(
		&mark.ID, &mark.UserID, &mark.Code, &mark.CredentialDigest, &mark.CreatedAt,
	)
	if err != nil {
		return model.SessionMark{}, wrapError("get latest session mark", err)
	}

	return mark, nil
}
