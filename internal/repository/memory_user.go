package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/debtiq/debtiq/internal/model"
)

// MemoryUserStore implements UserStore over a mutex-guarded slice.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users []model.User
}

// NewMemoryUserStore returns a store pre-populated with the given
// accounts. Pass SeedUsers() for the demo accounts or nil to start
// empty.
func NewMemoryUserStore(seed []model.User) *MemoryUserStore {
	s := &MemoryUserStore{users: make([]model.User, len(seed))}
	copy(s.users, seed)
	return s
}

func (s *MemoryUserStore) List(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryUserStore) GetByID(_ context.Context, id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

func (s *MemoryUserStore) Create(_ context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.users))
	for i, rec := range s.users {
		if rec.Email == u.Email {
			return ErrEmailExists
		}
		ids[i] = rec.ID
	}
	u.ID = nextSequentialID(ids)
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.Role == "" {
		u.Role = "user"
	}
	s.users = append(s.users, *u)
	return nil
}
