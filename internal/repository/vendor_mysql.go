package repository

// vendor_mysql.go implements VendorStore over MySQL with the same id
// and sequencing conventions as the client store.

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/debtiq/debtiq/internal/model"
)

type MySQLVendorStore struct {
	db *sql.DB
}

func NewMySQLVendorStore(db *sql.DB) *MySQLVendorStore {
	return &MySQLVendorStore{db: db}
}

func scanVendor(row interface{ Scan(...any) error }) (model.Vendor, error) {
	var v model.Vendor
	var id int64
	err := row.Scan(&id, &v.Name, &v.Email, &v.Phone, &v.TotalOwed, &v.Status, &v.CreatedAt)
	if err != nil {
		return model.Vendor{}, err
	}
	v.ID = strconv.FormatInt(id, 10)
	return v, nil
}

func (s *MySQLVendorStore) List(ctx context.Context, search string) ([]model.Vendor, error) {
	q := "SELECT id, name, email, phone, total_owed, status, created_at FROM vendors ORDER BY id"
	args := []any{}
	if search != "" {
		q = "SELECT id, name, email, phone, total_owed, status, created_at FROM vendors " +
			"WHERE name LIKE ? OR email LIKE ? OR phone LIKE ? ORDER BY id"
		like := "%" + search + "%"
		args = []any{like, like, like}
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *MySQLVendorStore) Get(ctx context.Context, id string) (model.Vendor, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, total_owed, status, created_at FROM vendors WHERE id=? LIMIT 1", id)
	v, err := scanVendor(row)
	if err == sql.ErrNoRows {
		return model.Vendor{}, ErrVendorNotFound
	}
	return v, err
}

func (s *MySQLVendorStore) Create(ctx context.Context, v *model.Vendor) error {
	if v.Status == "" {
		v.Status = model.VendorStatusActive
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO vendors (id, name, email, phone, total_owed, status) "+
			"SELECT COALESCE(MAX(id),0)+1, ?, ?, ?, ?, ? FROM vendors AS existing",
		v.Name, v.Email, v.Phone, v.TotalOwed, v.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		row := s.db.QueryRowContext(ctx, "SELECT MAX(id) FROM vendors")
		if err := row.Scan(&id); err != nil {
			return err
		}
	}
	v.ID = strconv.FormatInt(id, 10)
	row := s.db.QueryRowContext(ctx, "SELECT created_at FROM vendors WHERE id=?", id)
	return row.Scan(&v.CreatedAt)
}

func (s *MySQLVendorStore) Update(ctx context.Context, v model.Vendor) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE vendors SET name=?, email=?, phone=?, total_owed=?, status=? WHERE id=?",
		v.Name, v.Email, v.Phone, v.TotalOwed, v.Status, v.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		if _, getErr := s.Get(ctx, v.ID); getErr != nil {
			return ErrVendorNotFound
		}
	}
	return err
}

func (s *MySQLVendorStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM vendors WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrVendorNotFound
	}
	return nil
}

func (s *MySQLVendorStore) Stats(ctx context.Context) (model.SideStats, error) {
	var st model.SideStats
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(total_owed),0), "+
			"COALESCE(SUM(status='active'),0), COALESCE(SUM(status='overdue'),0) FROM vendors").
		Scan(&st.Total, &st.Active, &st.Overdue)
	return st, err
}
