package repository

// token_mysql.go persists and validates refresh token hashes in the
// `refresh_tokens` table (single token_hash column, revocation via a
// nullable revoked_at timestamp).

import (
	"context"
	"database/sql"
	"time"
)

type MySQLTokenStore struct {
	db *sql.DB
}

func NewMySQLTokenStore(db *sql.DB) *MySQLTokenStore {
	return &MySQLTokenStore{db: db}
}

func (s *MySQLTokenStore) StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, tokenHash, exp)
	return err
}

func (s *MySQLTokenStore) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	var (
		userID    string
		expiresAt time.Time
		revokedAt sql.NullTime
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT user_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&userID, &expiresAt, &revokedAt)
	if err != nil {
		return "", ErrTokenInvalid
	}
	if revokedAt.Valid || time.Now().UTC().After(expiresAt) {
		return "", ErrTokenInvalid
	}
	return userID, nil
}

func (s *MySQLTokenStore) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	return err
}

func (s *MySQLTokenStore) RevokeAllForUser(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL",
		userID)
	return err
}
