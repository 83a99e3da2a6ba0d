package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtiq/debtiq/internal/model"
)

func TestMemoryClientStore_SequentialIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryClientStore(SeedClients())

	// seed data carries ids 1..10; the next insert must get 11 and a
	// deletion below the maximum must not cause id reuse
	c := model.Client{Name: "جديد", Email: "new@example.com", Phone: "0770", TotalDebt: 100}
	require.NoError(t, s.Create(ctx, &c))
	assert.Equal(t, "11", c.ID)

	require.NoError(t, s.Delete(ctx, "3"))
	c2 := model.Client{Name: "آخر", Email: "next@example.com", Phone: "0771"}
	require.NoError(t, s.Create(ctx, &c2))
	assert.Equal(t, "12", c2.ID)

	// deleting the maximum does not roll the counter back either
	require.NoError(t, s.Delete(ctx, "12"))
	c3 := model.Client{Name: "ثالث", Email: "third@example.com", Phone: "0772"}
	require.NoError(t, s.Create(ctx, &c3))
	assert.Equal(t, "13", c3.ID)
}

func TestMemoryClientStore_CreateDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryClientStore(nil)

	c := model.Client{Name: "a", Email: "a@b.c", Phone: "1"}
	require.NoError(t, s.Create(ctx, &c))
	assert.Equal(t, "1", c.ID)
	assert.Equal(t, model.ClientStatusActive, c.Status)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestMemoryClientStore_UpdatePreservesCreatedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryClientStore(SeedClients())

	before, err := s.Get(ctx, "1")
	require.NoError(t, err)

	upd := before
	upd.Name = "اسم معدل"
	upd.TotalDebt = 9_999_999
	upd.CreatedAt = time.Now().UTC() // stores must ignore this
	require.NoError(t, s.Update(ctx, upd))

	after, err := s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "اسم معدل", after.Name)
	assert.Equal(t, 9_999_999.0, after.TotalDebt)
	assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
}

func TestMemoryClientStore_UpdateKeepsStatusWhenEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryClientStore(nil)

	c := model.Client{Name: "a", Email: "a@b.c", Phone: "1", Status: model.ClientStatusOverdue}
	require.NoError(t, s.Create(ctx, &c))

	upd := c
	upd.Status = ""
	require.NoError(t, s.Update(ctx, upd))

	got, err := s.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ClientStatusOverdue, got.Status)
}

func TestMemoryClientStore_Search(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryClientStore([]model.Client{
		{ID: "1", Name: "أحمد محمد علي", Email: "ahmed@example.com", Phone: "07701234567"},
		{ID: "2", Name: "فاطمة حسن", Email: "fatima@example.com", Phone: "07809876543"},
	})

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byName, err := s.List(ctx, "أحمد")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byEmail, err := s.List(ctx, "FATIMA")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "2", byEmail[0].ID)

	byPhone, err := s.List(ctx, "0780")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "2", byPhone[0].ID)

	none, err := s.List(ctx, "nomatch")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryClientStore_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryClientStore(nil)

	_, err := s.Get(ctx, "1")
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.ErrorIs(t, s.Update(ctx, model.Client{ID: "1"}), ErrClientNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "1"), ErrClientNotFound)
}

func TestMemoryClientStore_Stats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryClientStore([]model.Client{
		{ID: "1", TotalDebt: 2_500_000, Status: model.ClientStatusActive},
		{ID: "2", TotalDebt: 1_000_000, Status: model.ClientStatusOverdue},
		{ID: "3", TotalDebt: 500_000, Status: model.ClientStatusInactive},
	})

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4_000_000.0, st.Total)
	assert.Equal(t, 1, st.Active)
	assert.Equal(t, 1, st.Overdue)
}
