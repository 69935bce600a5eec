package service

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/cogedon-server/internal/model"
)

// memUserStore keeps users in memory with the same uniqueness rules as the
// database.
type memUserStore struct {
	mu          sync.Mutex
	users       []model.User
	credentials map[string]model.Credential
}

func newMemUserStore() *memUserStore {
	return &memUserStore{credentials: make(map[string]model.Credential)}
}

func (s *memUserStore) Create(_ context.Context, user model.User, credential model.Credential) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.credentials[credential.Code]; ok {
		return model.User{}, model.ErrConflict
	}
	user.ID = int64(len(s.users) + 1)
	user.CreatedAt = time.Now()
	credential.UserID = user.ID
	s.users = append(s.users, user)
	s.credentials[credential.Code] = credential

	return user, nil
}

func (s *memUserStore) GetByCode(_ context.Context, code string) (model.User, model.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, ok := s.credentials[code]
	if !ok {
		return model.User{}, model.Credential{}, model.ErrNotFound
	}
	return s.users[credential.UserID-1], credential, nil
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 1 || int(id) > len(s.users) {
		return model.User{}, model.ErrNotFound
	}
	return s.users[id-1], nil
}

type memSessionStore struct {
	mu    sync.Mutex
	marks []model.SessionMark
}

func (s *memSessionStore) Append(_ context.Context, mark model.SessionMark) (model.SessionMark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mark.ID = int64(len(s.marks) + 1)
	s.marks = append(s.marks, mark)
	return mark, nil
}

func (s *memSessionStore) Latest(_ context.Context, since time.Time) (model.SessionMark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.marks) - 1; i >= 0; i-- {
		if !s.marks[i].CreatedAt.Before(since) {
			return s.marks[i], nil
		}
	}
	return model.SessionMark{}, model.ErrNotFound
}

// fixedClock returns a clock that advances by one second on every call.
func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}
