package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtiq/debtiq/internal/model"
	"github.com/debtiq/debtiq/internal/repository"
)

func TestDashboardHandler_Get(t *testing.T) {
	clients := repository.NewMemoryClientStore([]model.Client{
		{ID: "1", Name: "أ", TotalDebt: 3_000_000, Status: model.ClientStatusActive},
		{ID: "2", Name: "ب", TotalDebt: 1_500_000, Status: model.ClientStatusOverdue},
	})
	vendors := repository.NewMemoryVendorStore([]model.Vendor{
		{ID: "1", Name: "م", TotalOwed: 1_000_000, Status: model.VendorStatusActive},
	})
	h := NewDashboardHandler(clients, vendors)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Get(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats model.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))

	assert.Equal(t, 2, stats.TotalClients)
	assert.Equal(t, 1, stats.TotalVendors)
	assert.Equal(t, 4_500_000.0, stats.TotalDebt)
	assert.Equal(t, 1_000_000.0, stats.TotalOwed)
	assert.Equal(t, 1, stats.OverdueClients)
	assert.Equal(t, 1, stats.ClientDebts.Active)

	// receivables minus payables
	assert.Equal(t, 3_500_000.0, stats.Summary.NetPosition)
	assert.Equal(t, stats.TotalDebt, stats.Summary.TotalReceivable)
	assert.Equal(t, stats.TotalOwed, stats.Summary.TotalPayable)
}
