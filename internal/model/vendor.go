package model

import "time"

// Vendor status values.  Vendors have no overdue tag; the business
// decides when to pay them.
const (
	VendorStatusActive   = "active"
	VendorStatusInactive = "inactive"
)

// Vendor is a creditor record: a supplier the business owes money to.
type Vendor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	TotalOwed float64   `json:"totalOwed"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
