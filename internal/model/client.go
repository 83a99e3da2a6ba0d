package model

import "time"

// Client status values.  A client is "overdue" when payment is past
// due; the dashboard counts overdue clients separately.
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusOverdue  = "overdue"
)

// Client is a debtor record: someone who owes the business money.
// IDs are sequential numeric strings so they read naturally in the
// Arabic UI and in printed statements.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	TotalDebt float64   `json:"totalDebt"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
