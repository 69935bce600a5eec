package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/cogedon-server/internal/mocks"
	"github.com/dtroode/cogedon-server/internal/model"
	"github.com/dtroode/cogedon-server/internal/testutil"
)

func janeParams() model.RegisterParams {
	return model.RegisterParams{
		Name:       "Jane",
		Surname:    "Doe",
		Address:    "Calle El Conde 1",
		Email:      "jane@x.do",
		Credential: "pw1",
	}
}

func TestCredentials_RegisterThenAuthenticate(t *testing.T) {
	ctx := context.Background()
	c := NewCredentials(newMemUserStore(), bcrypt.MinCost, testutil.MakeNoopLogger())

	id, err := c.Register(ctx, janeParams())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := c.Authenticate(ctx, "jane@x.do", "pw1")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	// The store-assigned id is not a login code.
	_, err = c.Authenticate(ctx, "1", "pw1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCredentials_RegisterWithExplicitCode(t *testing.T) {
	ctx := context.Background()
	c := NewCredentials(newMemUserStore(), bcrypt.MinCost, testutil.MakeNoopLogger())

	params := janeParams()
	params.Code = "jdoe"
	id, err := c.Register(ctx, params)
	require.NoError(t, err)

	got, err := c.Authenticate(ctx, "jdoe", "pw1")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = c.Authenticate(ctx, "jane@x.do", "pw1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCredentials_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.RegisterParams)
		field  string
	}{
		{name: "missing name", mutate: func(p *model.RegisterParams) { p.Name = "" }, field: "nombre"},
		{name: "missing surname", mutate: func(p *model.RegisterParams) { p.Surname = "" }, field: "apellido"},
		{name: "missing address", mutate: func(p *model.RegisterParams) { p.Address = "" }, field: "direccion"},
		{name: "missing email", mutate: func(p *model.RegisterParams) { p.Email = "" }, field: "email"},
		{name: "missing credential", mutate: func(p *model.RegisterParams) { p.Credential = "" }, field: "clave"},
		{name: "credential too long", mutate: func(p *model.RegisterParams) { p.Credential = strings.Repeat("x", 73) }, field: "clave"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewUserStore(t)
			c := NewCredentials(store, bcrypt.MinCost, testutil.MakeNoopLogger())

			params := janeParams()
			tt.mutate(&params)

			_, err := c.Register(context.Background(), params)
			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCredentials_Register_StoresHashUnderDefaultCode(t *testing.T) {
	store := mocks.NewUserStore(t)
	store.On("Create", mock.Anything,
		model.User{Name: "Jane", Surname: "Doe", Address: "Calle El Conde 1", Email: "jane@x.do"},
		mock.MatchedBy(func(c model.Credential) bool {
			return c.Code == "jane@x.do" &&
				string(c.Hash) != "pw1" &&
				bcrypt.CompareHashAndPassword(c.Hash, []byte("pw1")) == nil
		}),
	).Return(model.User{ID: 9}, nil)

	id, err := NewCredentials(store, bcrypt.MinCost, testutil.MakeNoopLogger()).Register(context.Background(), janeParams())
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestCredentials_Register_StoreErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "code taken", err: model.ErrConflict, wantErr: model.ErrConflict},
		{name: "store failure", err: errors.Join(model.ErrPersistence, errors.New("db down")), wantErr: model.ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewUserStore(t)
			store.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(model.User{}, tt.err)

			_, err := NewCredentials(store, bcrypt.MinCost, testutil.MakeNoopLogger()).Register(context.Background(), janeParams())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCredentials_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)
	jane := model.User{ID: 1, Name: "Jane"}
	cred := model.Credential{UserID: 1, Code: "jane@x.do", Hash: hash}

	tests := []struct {
		name       string
		code       string
		credential string
		setup      func(*mocks.UserStore)
		wantID     int64
		wantErr    error
		wantVErr   bool
	}{
		{
			name:       "exact match",
			code:       "jane@x.do",
			credential: "pw1",
			setup: func(s *mocks.UserStore) {
				s.On("GetByCode", mock.Anything, "jane@x.do").Return(jane, cred, nil)
			},
			wantID: 1,
		},
		{
			name:       "wrong credential",
			code:       "jane@x.do",
			credential: "pw",
			setup: func(s *mocks.UserStore) {
				s.On("GetByCode", mock.Anything, "jane@x.do").Return(jane, cred, nil)
			},
			wantErr: model.ErrNotFound,
		},
		{
			name:       "unknown code",
			code:       "%",
			credential: "pw1",
			setup: func(s *mocks.UserStore) {
				s.On("GetByCode", mock.Anything, "%").Return(model.User{}, model.Credential{}, model.ErrNotFound)
			},
			wantErr: model.ErrNotFound,
		},
		{
			name:       "store failure",
			code:       "jane@x.do",
			credential: "pw1",
			setup: func(s *mocks.UserStore) {
				s.On("GetByCode", mock.Anything, "jane@x.do").Return(model.User{}, model.Credential{}, model.ErrPersistence)
			},
			wantErr: model.ErrPersistence,
		},
		{name: "empty code", credential: "pw1", setup: func(*mocks.UserStore) {}, wantVErr: true},
		{name: "empty credential", code: "jane@x.do", setup: func(*mocks.UserStore) {}, wantVErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewUserStore(t)
			tt.setup(store)

			id, err := NewCredentials(store, bcrypt.MinCost, testutil.MakeNoopLogger()).
				Authenticate(context.Background(), tt.code, tt.credential)

			switch {
			case tt.wantVErr:
				var verr *model.ValidationError
				assert.ErrorAs(t, err, &verr)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestNewCredentials_InvalidCostFallsBack(t *testing.T) {
	c := NewCredentials(nil, 99, testutil.MakeNoopLogger())
	assert.Equal(t, bcrypt.DefaultCost, c.cost)
}
