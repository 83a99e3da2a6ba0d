package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/debtiq/debtiq/internal/model"
	"github.com/debtiq/debtiq/internal/repository"
	"github.com/debtiq/debtiq/internal/utils"
)

// StoreProvider is the real credential backend: every account has a
// bcrypt hash in the user store and there is no simulated latency.
type StoreProvider struct {
	users repository.UserStore
	cost  int
}

func NewStoreProvider(users repository.UserStore, bcryptCost int) *StoreProvider {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &StoreProvider{users: users, cost: bcryptCost}
}

func (p *StoreProvider) CheckCredentials(ctx context.Context, email, password string) (model.User, error) {
	u, err := p.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (p *StoreProvider) Register(ctx context.Context, f RegisterFields) (model.User, error) {
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

// CheckGoogleToken keeps the same contract as the demo provider. A
// production deployment would verify the token against Google here;
// the shape check is all the dashboard's demo flow needs.
func (p *StoreProvider) CheckGoogleToken(ctx context.Context, token string) (model.User, error) {
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
