package repository

// memory_client.go implements ClientStore over a mutex-guarded slice.
// This is the default backend: the dashboard ships with seeded demo
// records and mutates them in process memory only.

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/debtiq/debtiq/internal/model"
)

// MemoryClientStore keeps clients in insertion order, matching how the
// dashboard lists them.
type MemoryClientStore struct {
	mu      sync.RWMutex
	clients []model.Client
}

// NewMemoryClientStore returns a store pre-populated with the given
// records. Pass SeedClients() for the demo data set or nil to start
// empty.
func NewMemoryClientStore(seed []model.Client) *MemoryClientStore {
	s := &MemoryClientStore{clients: make([]model.Client, len(seed))}
	copy(s.clients, seed)
	return s
}

// nextSequentialID scans existing numeric-string ids for the maximum
// and returns max+1. Deleted ids are never reused, but a gap left by a
// deletion below the maximum does not get refilled either: a list with
// ids 1..10 always yields 11.
func nextSequentialID(ids []string) string {
	max := 0
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// containsFold reports whether any of the fields contains the search
// term, case-insensitively.
func containsFold(search string, fields ...string) bool {
	search = strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

func (s *MemoryClientStore) List(_ context.Context, search string) ([]model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Client, 0, len(s.clients))
	for _, c := range s.clients {
		if search == "" || containsFold(search, c.Name, c.Email, c.Phone) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryClientStore) Get(_ context.Context, id string) (model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Client{}, ErrClientNotFound
}

func (s *MemoryClientStore) Create(_ context.Context, c *model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.clients))
	for i, rec := range s.clients {
		ids[i] = rec.ID
	}
	c.ID = nextSequentialID(ids)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.Status == "" {
		c.Status = model.ClientStatusActive
	}
	s.clients = append(s.clients, *c)
	return nil
}

func (s *MemoryClientStore) Update(_ context.Context, c model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.clients {
		if rec.ID == c.ID {
			// edits never move the creation timestamp
			c.CreatedAt = rec.CreatedAt
			if c.Status == "" {
				c.Status = rec.Status
			}
			s.clients[i] = c
			return nil
		}
	}
	return ErrClientNotFound
}

func (s *MemoryClientStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.clients {
		if rec.ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return nil
		}
	}
	return ErrClientNotFound
}

func (s *MemoryClientStore) Stats(_ context.Context) (model.SideStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st model.SideStats
	for _, c := range s.clients {
		st.Total += c.TotalDebt
		switch c.Status {
		case model.ClientStatusActive:
			st.Active++
		case model.ClientStatusOverdue:
			st.Overdue++
		}
	}
	return st, nil
}
