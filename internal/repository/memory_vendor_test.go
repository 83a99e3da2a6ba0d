package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtiq/debtiq/internal/model"
)

func TestMemoryVendorStore_CRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryVendorStore(SeedVendors())

	v := model.Vendor{Name: "مورد جديد", Email: "vendor@example.com", Phone: "0750", TotalOwed: 7500}
	require.NoError(t, s.Create(ctx, &v))
	assert.Equal(t, "11", v.ID)
	assert.Equal(t, model.VendorStatusActive, v.Status)

	v.TotalOwed = 9000
	require.NoError(t, s.Update(ctx, v))
	got, err := s.Get(ctx, "11")
	require.NoError(t, err)
	assert.Equal(t, 9000.0, got.TotalOwed)

	require.NoError(t, s.Delete(ctx, "11"))
	_, err = s.Get(ctx, "11")
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestMemoryVendorStore_Stats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryVendorStore([]model.Vendor{
		{ID: "1", TotalOwed: 1_000, Status: model.VendorStatusActive},
		{ID: "2", TotalOwed: 2_000, Status: model.VendorStatusInactive},
	})

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3_000.0, st.Total)
	assert.Equal(t, 1, st.Active)
	assert.Equal(t, 0, st.Overdue) // vendors have no overdue state
}
