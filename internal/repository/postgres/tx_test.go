package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/cogedon-server/internal/model"
)

func TestWithTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectBegin()
		mock.ExpectExec(`^INSERT`).WillReturnResult(sqlmockResult())
		mock.ExpectCommit()

		err := WithTx(context.Background(), conn.DB, func(ctx context.Context, tx DBTX) error {
			_, err := tx.ExecContext(ctx, `INSERT INTO t VALUES (1)`)
			return err
		})
		require.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := WithTx(context.Background(), conn.DB, func(context.Context, DBTX) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("rolls back and repanics", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "kaput", func() {
			_ = WithTx(context.Background(), conn.DB, func(context.Context, DBTX) error {
				panic("kaput")
			})
		})
	})

	t.Run("begin failure", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectBegin().WillReturnError(errors.New("no conn"))

		err := WithTx(context.Background(), conn.DB, func(context.Context, DBTX) error {
			t.Fatal("fn must not run")
			return nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to begin transaction")
	})
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: sql.ErrNoRows, want: model.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: model.ErrConflict},
		{name: "other", err: errors.New("db down"), want: model.ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, wrapError("op", tt.err), tt.want)
		})
	}
}
