package repository

// user_mysql.go implements UserStore over MySQL. Duplicate emails are
// detected by the driver's 1062 error code on the unique index.

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/debtiq/debtiq/internal/model"
)

type MySQLUserStore struct {
	db *sql.DB
}

func NewMySQLUserStore(db *sql.DB) *MySQLUserStore {
	return &MySQLUserStore{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	var id int64
	err := row.Scan(&id, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return model.User{}, err
	}
	u.ID = strconv.FormatInt(id, 10)
	return u, nil
}

func (s *MySQLUserStore) List(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, email, first_name, last_name, role, password_hash, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *MySQLUserStore) GetByID(ctx context.Context, id string) (model.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, first_name, last_name, role, password_hash, created_at FROM users WHERE id=? LIMIT 1", id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

func (s *MySQLUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, first_name, last_name, role, password_hash, created_at FROM users WHERE email=? LIMIT 1", email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

func (s *MySQLUserStore) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = "user"
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, first_name, last_name, role, password_hash) "+
			"SELECT COALESCE(MAX(id),0)+1, ?, ?, ?, ?, ? FROM users AS existing",
		u.Email, u.FirstName, u.LastName, u.Role, u.PasswordHash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		row := s.db.QueryRowContext(ctx, "SELECT id FROM users WHERE email=?", u.Email)
		if err := row.Scan(&id); err != nil {
			return err
		}
	}
	u.ID = strconv.FormatInt(id, 10)
	row := s.db.QueryRowContext(ctx, "SELECT created_at FROM users WHERE id=?", id)
	return row.Scan(&u.CreatedAt)
}
