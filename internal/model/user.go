package model

import "time"

// User represents an application user record as stored in the
// `users` table (or the seeded in-memory list when the service runs
// without a database). The json tags are chosen so the identity can be
// serialized as-is into the durable session storage and into auth
// responses consumed by the dashboard.
//
// Fields:
//  ID           – sequential numeric-string identifier ("1", "2", ...).
//  Email        – unique email address, stored lower-cased.
//  FirstName    – given name shown in the dashboard header.
//  LastName     – family name.
//  Role         – "admin" or "user".
//  PasswordHash – bcrypt hash of the password; never serialized.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user and carries metadata for expiry and
// revocation.  The plain token is not stored; only its SHA-256 hash.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    string     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
