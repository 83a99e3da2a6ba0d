package model

// SideStats breaks one side of the ledger (clients or vendors) down
// into a total amount and per-status counts.
type SideStats struct {
	Total   float64 `json:"total"`
	Active  int     `json:"active"`
	Overdue int     `json:"overdue"`
}

// Summary carries the pre-aggregated totals shown on the dashboard
// cards.  NetPosition is receivables minus payables: positive means
// the business is owed more than it owes.
type Summary struct {
	TotalClients    int     `json:"totalClients"`
	TotalVendors    int     `json:"totalVendors"`
	TotalDebt       float64 `json:"totalDebt"`
	TotalOwed       float64 `json:"totalOwed"`
	TotalReceivable float64 `json:"totalReceivable"`
	TotalPayable    float64 `json:"totalPayable"`
	NetPosition     float64 `json:"netPosition"`
}

// DashboardStats is the full payload behind GET /v1/dashboard.
type DashboardStats struct {
	TotalClients       int       `json:"totalClients"`
	TotalVendors       int       `json:"totalVendors"`
	TotalDebt          float64   `json:"totalDebt"`
	TotalOwed          float64   `json:"totalOwed"`
	OverdueClients     int       `json:"overdueClients"`
	RecentTransactions int       `json:"recentTransactions"`
	ClientDebts        SideStats `json:"clientDebts"`
	VendorDebts        SideStats `json:"vendorDebts"`
	Summary            Summary   `json:"summary"`
}
