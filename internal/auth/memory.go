package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/debtiq/debtiq/internal/model"
	"github.com/debtiq/debtiq/internal/repository"
	"github.com/debtiq/debtiq/internal/utils"
)

// DemoPassword is the single literal password every seeded demo
// account accepts.
const DemoPassword = "password"

// DefaultDelay approximates the latency of a real credential backend
// so the UI's loading states stay honest in demo mode.
const DefaultDelay = time.Second

// MemoryProvider is the demo credential backend: seeded accounts share
// DemoPassword, accounts registered at runtime get a bcrypt hash, and
// every call waits out a fixed delay that is cut short by context
// cancellation.
type MemoryProvider struct {
	users repository.UserStore
	delay time.Duration
	cost  int
}

// NewMemoryProvider wraps a user store. A negative delay disables the
// simulated latency (tests use 0).
func NewMemoryProvider(users repository.UserStore, delay time.Duration, bcryptCost int) *MemoryProvider {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &MemoryProvider{users: users, delay: delay, cost: bcryptCost}
}

// wait sleeps for the configured delay unless the context ends first.
func (p *MemoryProvider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (p *MemoryProvider) CheckCredentials(ctx context.Context, email, password string) (model.User, error) {
	if err := p.wait(ctx); err != nil {
		return model.User{}, err
	}
	u, err := p.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	if u.PasswordHash != "" {
		if !utils.VerifyPassword(u.PasswordHash, password) {
			return model.User{}, ErrInvalidCredentials
		}
		return u, nil
	}
	// seeded accounts carry no hash and accept the demo literal
	if password != DemoPassword {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (p *MemoryProvider) Register(ctx context.Context, f RegisterFields) (model.User, error) {
	if err := p.wait(ctx); err != nil {
		return model.User{}, err
	}
	hash, err := utils.HashPassword(f.Password, p.cost)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{
		Email:        f.Email,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Role:         "user",
		PasswordHash: hash,
	}
	if err := p.users.Create(ctx, &u); err != nil {
		if err == repository.ErrEmailExists {
			return model.User{}, ErrUserExists
		}
		return model.User{}, err
	}
	return u, nil
}

// CheckGoogleToken accepts any token longer than 10 characters and
// resolves it to the fixed federated demo identity, creating the
// account on first use.
func (p *MemoryProvider) CheckGoogleToken(ctx context.Context, token string) (model.User, error) {
	if err := p.wait(ctx); err != nil {
		return model.User{}, err
	}
	if len(token) <= 10 {
		return model.User{}, ErrInvalidToken
	}
	if u, err := p.users.GetByEmail(ctx, "google@debtiq.com"); err == nil {
		return u, nil
	}
	u := model.User{
		Email:     "google@debtiq.com",
		FirstName: "Google",
		LastName:  "User",
		Role:      "user",
	}
	if err := p.users.Create(ctx, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}
