package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/debtiq/debtiq/internal/model"
	"github.com/debtiq/debtiq/internal/repository"
)

// DashboardHandler aggregates both sides of the ledger into the
// summary payload behind the dashboard cards.
type DashboardHandler struct {
	Clients repository.ClientStore
	Vendors repository.VendorStore
}

func NewDashboardHandler(clients repository.ClientStore, vendors repository.VendorStore) *DashboardHandler {
	return &DashboardHandler{Clients: clients, Vendors: vendors}
}

// recentTransactionsPlaceholder fills the "recent transactions" card.
// TODO: replace with a real count once a transactions ledger exists.
const recentTransactionsPlaceholder = 12

// Get handles GET /v1/dashboard. The response sits behind the Redis
// response cache, so totals may lag a record edit by the cache TTL.
func (h *DashboardHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	clientStats, err := h.Clients.Stats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not aggregate clients"})
	}
	vendorStats, err := h.Vendors.Stats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not aggregate vendors"})
	}
	clients, err := h.Clients.List(ctx, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list clients"})
	}
	vendors, err := h.Vendors.List(ctx, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list vendors"})
	}

	stats := model.DashboardStats{
		TotalClients:       len(clients),
		TotalVendors:       len(vendors),
		TotalDebt:          clientStats.Total,
		TotalOwed:          vendorStats.Total,
		OverdueClients:     clientStats.Overdue,
		RecentTransactions: recentTransactionsPlaceholder,
		ClientDebts:        clientStats,
		VendorDebts:        vendorStats,
		Summary: model.Summary{
			TotalClients:    len(clients),
			TotalVendors:    len(vendors),
			TotalDebt:       clientStats.Total,
			TotalOwed:       vendorStats.Total,
			TotalReceivable: clientStats.Total,
			TotalPayable:    vendorStats.Total,
			NetPosition:     clientStats.Total - vendorStats.Total,
		},
	}
	return c.JSON(http.StatusOK, stats)
}
