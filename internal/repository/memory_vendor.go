package repository

import (
	"context"
	"sync"
	"time"

	"github.com/debtiq/debtiq/internal/model"
)

// MemoryVendorStore implements VendorStore over a mutex-guarded slice,
// mirroring MemoryClientStore.
type MemoryVendorStore struct {
	mu      sync.RWMutex
	vendors []model.Vendor
}

// NewMemoryVendorStore returns a store pre-populated with the given
// records. Pass SeedVendors() for the demo data set or nil to start
// empty.
func NewMemoryVendorStore(seed []model.Vendor) *MemoryVendorStore {
	s := &MemoryVendorStore{vendors: make([]model.Vendor, len(seed))}
	copy(s.vendors, seed)
	return s
}

func (s *MemoryVendorStore) List(_ context.Context, search string) ([]model.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Vendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		if search == "" || containsFold(search, v.Name, v.Email, v.Phone) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *MemoryVendorStore) Get(_ context.Context, id string) (model.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return model.Vendor{}, ErrVendorNotFound
}

func (s *MemoryVendorStore) Create(_ context.Context, v *model.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.vendors))
	for i, rec := range s.vendors {
		ids[i] = rec.ID
	}
	v.ID = nextSequentialID(ids)
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	if v.Status == "" {
		v.Status = model.VendorStatusActive
	}
	s.vendors = append(s.vendors, *v)
	return nil
}

func (s *MemoryVendorStore) Update(_ context.Context, v model.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.vendors {
		if rec.ID == v.ID {
			v.CreatedAt = rec.CreatedAt
			if v.Status == "" {
				v.Status = rec.Status
			}
			s.vendors[i] = v
			return nil
		}
	}
	return ErrVendorNotFound
}

func (s *MemoryVendorStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.vendors {
		if rec.ID == id {
			s.vendors = append(s.vendors[:i], s.vendors[i+1:]...)
			return nil
		}
	}
	return ErrVendorNotFound
}

func (s *MemoryVendorStore) Stats(_ context.Context) (model.SideStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st model.SideStats
	for _, v := range s.vendors {
		st.Total += v.TotalOwed
		if v.Status == model.VendorStatusActive {
			st.Active++
		}
	}
	return st, nil
}
