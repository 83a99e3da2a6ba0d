package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/debtiq/debtiq/internal/auth"
	"github.com/debtiq/debtiq/internal/model"
)

// Storage keys. They intentionally match the keys the dashboard used
// in browser local storage so a migrated deployment can read them.
const (
	tokenKey = "auth-token"
	userKey  = "auth-user"
)

// TokenFunc mints the opaque session token persisted alongside the
// identity. Injected so the store does not depend on the JWT layer.
type TokenFunc func(u model.User) (string, error)

// Store is the single source of truth for who is signed in. It is an
// injectable value with an explicit lifecycle: constructed at process
// start, passed by reference to its consumers, reset only by Logout.
// All state transitions are mutex-guarded because HTTP handlers call
// it concurrently.
//
// Invariant: IsAuthenticated() is true exactly when a current user is
// set.
type Store struct {
	mu       sync.RWMutex
	provider auth.Provider
	kv       KV
	issue    TokenFunc

	user    *model.User
	token   string
	loading bool
}

func NewStore(provider auth.Provider, kv KV, issue TokenFunc) *Store {
	return &Store{provider: provider, kv: kv, issue: issue}
}

// Initialize restores a persisted session. Any read or decode failure
// degrades silently to the signed-out state; it never reports an
// error outward and always clears the loading flag.
func (s *Store) Initialize(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	token, err := s.kv.Get(ctx, tokenKey)
	if err != nil || token == "" {
		s.reset()
		return
	}
	raw, err := s.kv.Get(ctx, userKey)
	if err != nil {
		s.reset()
		return
	}
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.reset()
		return
	}
	s.mu.Lock()
	s.user = &u
	s.token = token
	s.mu.Unlock()
}

// Login checks the credentials against the provider, then persists
// the token and identity and flips the store to authenticated. On
// failure nothing is persisted and the provider's reason-coded error
// is returned. A context canceled mid-call discards the result.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	u, err := s.provider.CheckCredentials(ctx, email, password)
	if err != nil {
		return err
	}
	return s.adopt(ctx, u)
}

// Register creates the account and signs it in, same shape as Login.
func (s *Store) Register(ctx context.Context, f auth.RegisterFields) error {
	s.setLoading(true)
	defer s.setLoading(false)

	u, err := s.provider.Register(ctx, f)
	if err != nil {
		return err
	}
	return s.adopt(ctx, u)
}

// LoginWithGoogle exchanges a federated token for a session.
func (s *Store) LoginWithGoogle(ctx context.Context, googleToken string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	u, err := s.provider.CheckGoogleToken(ctx, googleToken)
	if err != nil {
		return err
	}
	return s.adopt(ctx, u)
}

// Logout clears the persisted keys and resets the in-memory state.
// It cannot fail: a KV error still leaves the store signed out.
func (s *Store) Logout(ctx context.Context) {
	_ = s.kv.Del(ctx, tokenKey, userKey)
	s.reset()
}

// SetUser overrides the current identity without a persistence
// round-trip, for flows that already hold a verified identity.
func (s *Store) SetUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// CurrentUser returns the signed-in identity, if any.
func (s *Store) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Token returns the current opaque session token ("" when signed out).
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// adopt mints a token for the identity, persists both keys and sets
// the in-memory state. Called only from the loading-guarded paths.
func (s *Store) adopt(ctx context.Context, u model.User) error {
	if err := ctx.Err(); err != nil {
		// the caller's scope ended while the provider was working;
		// drop the result instead of writing state
		return err
	}
	token, err := s.issue(u)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, tokenKey, token); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, userKey, string(raw)); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = &u
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) reset() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
}
