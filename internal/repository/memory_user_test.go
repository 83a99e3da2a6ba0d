package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtiq/debtiq/internal/model"
)

func TestMemoryUserStore_CreateAndLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryUserStore(SeedUsers())

	u := model.User{Email: "New@Example.Com", FirstName: "New", LastName: "Person"}
	require.NoError(t, s.Create(ctx, &u))
	assert.Equal(t, "3", u.ID)
	assert.Equal(t, "new@example.com", u.Email) // normalized on write
	assert.Equal(t, "user", u.Role)             // default role

	byEmail, err := s.GetByEmail(ctx, "  NEW@example.com ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := s.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "admin@debtiq.com", byID.Email)
	assert.Equal(t, "admin", byID.Role)
}

func TestMemoryUserStore_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryUserStore(SeedUsers())

	u := model.User{Email: "admin@debtiq.com", FirstName: "Imp", LastName: "Ostor"}
	assert.ErrorIs(t, s.Create(ctx, &u), ErrEmailExists)
}

func TestMemoryUserStore_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryUserStore(nil)

	_, err := s.GetByID(ctx, "1")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = s.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
