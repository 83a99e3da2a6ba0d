package repository

// store.go declares the capability interfaces consumed by handlers and
// the auth provider. Two implementations exist for each: an in-memory
// store seeded with demo records (the default when no database is
// configured) and a MySQL-backed store. Handlers depend only on these
// interfaces so a backend can be swapped without touching them.

import (
	"context"
	"time"

	"github.com/debtiq/debtiq/internal/model"
)

// ClientStore provides access to debtor records. Create assigns the
// next sequential id and the creation timestamp; Update replaces the
// record in place preserving CreatedAt.
type ClientStore interface {
	List(ctx context.Context, search string) ([]model.Client, error)
	Get(ctx context.Context, id string) (model.Client, error)
	Create(ctx context.Context, c *model.Client) error
	Update(ctx context.Context, c model.Client) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (model.SideStats, error)
}

// VendorStore provides access to creditor records with the same
// contract as ClientStore.
type VendorStore interface {
	List(ctx context.Context, search string) ([]model.Vendor, error)
	Get(ctx context.Context, id string) (model.Vendor, error)
	Create(ctx context.Context, v *model.Vendor) error
	Update(ctx context.Context, v model.Vendor) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (model.SideStats, error)
}

// UserStore holds application accounts. Emails are unique and stored
// lower-cased; Create returns ErrEmailExists on a duplicate.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// TokenStore persists refresh token hashes with expiry and revocation.
// ValidateRefresh returns the owning user id for a live token and
// ErrTokenInvalid otherwise.
type TokenStore interface {
	StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (string, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
