package repository

// client_mysql.go implements ClientStore over MySQL. Ids are stored as
// integers but exposed as numeric strings to keep the API identical to
// the in-memory store. Inserts compute MAX(id)+1 explicitly instead of
// relying on AUTO_INCREMENT so the id sequence behaves the same as the
// memory backend after deletions.

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/debtiq/debtiq/internal/model"
)

type MySQLClientStore struct {
	db *sql.DB
}

func NewMySQLClientStore(db *sql.DB) *MySQLClientStore {
	return &MySQLClientStore{db: db}
}

func scanClient(row interface{ Scan(...any) error }) (model.Client, error) {
	var c model.Client
	var id int64
	err := row.Scan(&id, &c.Name, &c.Email, &c.Phone, &c.TotalDebt, &c.Status, &c.CreatedAt)
	if err != nil {
		return model.Client{}, err
	}
	c.ID = strconv.FormatInt(id, 10)
	return c, nil
}

func (s *MySQLClientStore) List(ctx context.Context, search string) ([]model.Client, error) {
	q := "SELECT id, name, email, phone, total_debt, status, created_at FROM clients ORDER BY id"
	args := []any{}
	if search != "" {
		q = "SELECT id, name, email, phone, total_debt, status, created_at FROM clients " +
			"WHERE name LIKE ? OR email LIKE ? OR phone LIKE ? ORDER BY id"
		like := "%" + search + "%"
		args = []any{like, like, like}
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *MySQLClientStore) Get(ctx context.Context, id string) (model.Client, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, total_debt, status, created_at FROM clients WHERE id=? LIMIT 1", id)
	c, err := scanClient(row)
	if err == sql.ErrNoRows {
		return model.Client{}, ErrClientNotFound
	}
	return c, err
}

func (s *MySQLClientStore) Create(ctx context.Context, c *model.Client) error {
	if c.Status == "" {
		c.Status = model.ClientStatusActive
	}
	// MAX(id)+1 inside the insert keeps the sequence race-free under the
	// default isolation level for this single-writer workload.
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO clients (id, name, email, phone, total_debt, status) "+
			"SELECT COALESCE(MAX(id),0)+1, ?, ?, ?, ?, ? FROM clients AS existing",
		c.Name, c.Email, c.Phone, c.TotalDebt, c.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		// driver may not report the id for INSERT..SELECT; read it back
		row := s.db.QueryRowContext(ctx, "SELECT MAX(id) FROM clients")
		if err := row.Scan(&id); err != nil {
			return err
		}
	}
	c.ID = strconv.FormatInt(id, 10)
	row := s.db.QueryRowContext(ctx, "SELECT created_at FROM clients WHERE id=?", id)
	return row.Scan(&c.CreatedAt)
}

func (s *MySQLClientStore) Update(ctx context.Context, c model.Client) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE clients SET name=?, email=?, phone=?, total_debt=?, status=? WHERE id=?",
		c.Name, c.Email, c.Phone, c.TotalDebt, c.Status, c.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		if _, getErr := s.Get(ctx, c.ID); getErr != nil {
			return ErrClientNotFound
		}
	}
	return err
}

func (s *MySQLClientStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM clients WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (s *MySQLClientStore) Stats(ctx context.Context) (model.SideStats, error) {
	var st model.SideStats
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(total_debt),0), "+
			"COALESCE(SUM(status='active'),0), COALESCE(SUM(status='overdue'),0) FROM clients").
		Scan(&st.Total, &st.Active, &st.Overdue)
	return st, err
}
