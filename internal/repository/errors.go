// Package repository defines the storage capability interfaces the
// service depends on, together with sentinel errors reused across
// implementations. Handlers match on these sentinels to pick HTTP
// status codes without knowing which backend produced them.
package repository

import "errors"

// ErrClientNotFound is returned when a client id has no record.
// Handlers translate this into an HTTP 404 response.
var ErrClientNotFound = errors.New("client not found")

// ErrVendorNotFound is returned when a vendor id has no record.
var ErrVendorNotFound = errors.New("vendor not found")

// ErrUserNotFound is returned when a user lookup matches nothing.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when a create would violate email
// uniqueness. Handlers translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrTokenInvalid is returned for refresh tokens that are unknown,
// expired or revoked.
var ErrTokenInvalid = errors.New("invalid refresh token")
