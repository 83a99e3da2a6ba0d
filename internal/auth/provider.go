// Package auth defines the credential-check capability the session
// store and HTTP handlers depend on. Two implementations exist: a
// seeded in-memory provider that simulates backend latency, and a
// store-backed provider verifying bcrypt hashes against the user
// store. Swapping one for the other requires no change anywhere else.
package auth

import (
	"context"
	"errors"

	"github.com/debtiq/debtiq/internal/model"
)

// Reason-coded sentinel errors. Handlers and the session store map
// these onto their fixed user-facing messages.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid google token")
)

// RegisterFields carries the sign-up form values.
type RegisterFields struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Provider checks credentials and creates accounts.
//
// CheckCredentials returns the identity on success and
// ErrInvalidCredentials otherwise. Register returns ErrUserExists for
// a duplicate email. CheckGoogleToken validates a federated token and
// returns ErrInvalidToken when it looks malformed. All calls honor
// ctx cancellation: a canceled context yields ctx.Err() and no state
// change.
type Provider interface {
	CheckCredentials(ctx context.Context, email, password string) (model.User, error)
	Register(ctx context.Context, f RegisterFields) (model.User, error)
	CheckGoogleToken(ctx context.Context, token string) (model.User, error)
}
