package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/debtiq/debtiq/internal/auth"
	"github.com/debtiq/debtiq/internal/model"
	"github.com/debtiq/debtiq/internal/repository"
)

func newTestStore(kv KV) *Store {
	provider := auth.NewMemoryProvider(repository.NewMemoryUserStore(repository.SeedUsers()), 0, bcrypt.MinCost)
	return NewStore(provider, kv, func(u model.User) (string, error) {
		return "token-for-" + u.ID, nil
	})
}

func TestStore_LoginPersistsSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := NewMemoryKV()
	s := newTestStore(kv)

	require.False(t, s.IsAuthenticated())
	require.NoError(t, s.Login(ctx, "admin@debtiq.com", auth.DemoPassword))

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
	assert.Equal(t, "token-for-1", s.Token())
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "admin@debtiq.com", u.Email)

	// both durable keys were written
	tok, err := kv.Get(ctx, tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "token-for-1", tok)
	_, err = kv.Get(ctx, userKey)
	require.NoError(t, err)
}

func TestStore_LoginFailureWritesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := NewMemoryKV()
	s := newTestStore(kv)

	err := s.Login(ctx, "admin@debtiq.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.False(t, s.IsAuthenticated())

	_, err = kv.Get(ctx, tokenKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStore_InitializeRestoresSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := NewMemoryKV()

	first := newTestStore(kv)
	require.NoError(t, first.Login(ctx, "user@debtiq.com", auth.DemoPassword))

	// a fresh store over the same KV picks the session back up
	second := newTestStore(kv)
	second.Initialize(ctx)
	assert.True(t, second.IsAuthenticated())
	u, ok := second.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "user@debtiq.com", u.Email)
	assert.Equal(t, first.Token(), second.Token())
}

func TestStore_InitializeDegradesOnCorruptState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, tokenKey, "some-token"))
	require.NoError(t, kv.Set(ctx, userKey, "{not json"))

	s := newTestStore(kv)
	s.Initialize(ctx)

	// corrupt state means signed out, never an error
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
	assert.Empty(t, s.Token())
}

func TestStore_InitializeWithEmptyKV(t *testing.T) {
	t.Parallel()
	s := newTestStore(NewMemoryKV())
	s.Initialize(context.Background())
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
}

func TestStore_LogoutClearsEverything(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := NewMemoryKV()
	s := newTestStore(kv)
	require.NoError(t, s.Login(ctx, "admin@debtiq.com", auth.DemoPassword))

	s.Logout(ctx)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	_, err := kv.Get(ctx, tokenKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = kv.Get(ctx, userKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// a restart after logout stays signed out
	next := newTestStore(kv)
	next.Initialize(ctx)
	assert.False(t, next.IsAuthenticated())
}

func TestStore_CanceledContextDiscardsResult(t *testing.T) {
	t.Parallel()
	kv := NewMemoryKV()
	s := newTestStore(kv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Login(ctx, "admin@debtiq.com", auth.DemoPassword)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.IsAuthenticated())
	_, kvErr := kv.Get(context.Background(), tokenKey)
	assert.ErrorIs(t, kvErr, ErrKeyNotFound)
}

func TestStore_RegisterSignsIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(NewMemoryKV())

	require.NoError(t, s.Register(ctx, auth.RegisterFields{
		Email:     "new@debtiq.com",
		Password:  "pass-123",
		FirstName: "New",
		LastName:  "Operator",
	}))
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "new@debtiq.com", u.Email)
}

func TestStore_LoginWithGoogle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(NewMemoryKV())

	err := s.LoginWithGoogle(ctx, "short")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
	assert.False(t, s.IsAuthenticated())

	require.NoError(t, s.LoginWithGoogle(ctx, "mock-google-token"))
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "google@debtiq.com", u.Email)
}

type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) (string, error) { return "", f.err }
func (f failingKV) Set(context.Context, string, string) error   { return f.err }
func (f failingKV) Del(context.Context, ...string) error        { return f.err }

func TestStore_LogoutCannotFail(t *testing.T) {
	t.Parallel()
	s := newTestStore(failingKV{err: errors.New("kv down")})
	s.SetUser(model.User{ID: "1", Email: "admin@debtiq.com"})

	s.Logout(context.Background())
	assert.False(t, s.IsAuthenticated())
}
