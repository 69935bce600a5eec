package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/cogedon-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts the profile and its credential row in one transaction.
func (r *UserRepository) Create(ctx context.Context, user model.User, credential model.Credential) (model.User, error) {
	insertUser := `INSERT INTO users (name, surname, address, email)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`
	insertCredential := `INSERT INTO credentials (user_id, code, credential_hash)
			  VALUES ($1, $2, $3)`

	err := WithTx(ctx, r.db.DB, func(ctx context.Context, tx DBTX) error {
		err := tx.QueryRowContext(ctx, insertUser,
			user.Name, user.Surname, user.Address, user.Email,
		).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return wrapError("create user", err)
		}

		_, err = tx.ExecContext(ctx, insertCredential, user.ID, credential.Code, credential.Hash)
		if err != nil {
			return wrapError("create credential", err)
		}

		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

// GetByCode looks the credential up by exact code.
func (r *UserRepository) GetByCode(ctx context.Context, code string) (model.User, model.Credential, error) {
	var (
		user       model.User
		credential model.Credential
	)
	query := `SELECT u.id, u.name, u.surname, u.address, u.email, u.created_at, c.code, c.credential_hash
			  FROM credentials c JOIN users u ON u.id = c.user_id
			  WHERE c.code = $1`

	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&user.ID, &user.Name, &user.Surname, &user.Address, &user.Email, &user.CreatedAt,
		&credential.Code, &credential.Hash,
	)
	if err != nil {
		return model.User{}, model.Credential{}, wrapError("get user by code", err)
	}
	credential.UserID = user.ID

	return user, credential, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	query := `SELECT id, name, surname, address, email, created_at
			  FROM users WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Surname, &user.Address, &user.Email, &user.CreatedAt,
	)
	if err != nil {
		return model.User{}, wrapError(fmt.Sprintf("get user %d", id), err)
	}

	return user, nil
}
