package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/debtiq/debtiq/internal/currency"
	"github.com/debtiq/debtiq/internal/model"
	"github.com/debtiq/debtiq/internal/queue"
	"github.com/debtiq/debtiq/internal/repository"
	queue_publisher "github.com/debtiq/debtiq/internal/service"
)

// VendorHandler serves the creditor CRUD endpoints, mirroring
// ClientHandler.
type VendorHandler struct {
	Vendors repository.VendorStore
}

func NewVendorHandler(vendors repository.VendorStore) *VendorHandler {
	return &VendorHandler{Vendors: vendors}
}

type vendorReq struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	TotalOwed float64 `json:"totalOwed"`
	Owed      string  `json:"owed"`
	Status    string  `json:"status"`
}

func (r *vendorReq) amount() float64 {
	if strings.TrimSpace(r.Owed) != "" {
		return currency.Parse(r.Owed)
	}
	return r.TotalOwed
}

func vendorStatusValid(s string) bool {
	switch s {
	case "", model.VendorStatusActive, model.VendorStatusInactive:
		return true
	}
	return false
}

func publishVendorActivity(action, actorID string, rec model.Vendor) {
	ev := queue.DebtActivityEvent{
		Kind:       queue.KindVendor,
		Action:     action,
		RecordID:   rec.ID,
		RecordName: rec.Name,
		Amount:     rec.TotalOwed,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishDebtActivity(ctx, ev)
	}()
}

// List handles GET /v1/vendors with an optional ?q= substring filter.
func (h *VendorHandler) List(c echo.Context) error {
	items, err := h.Vendors.List(c.Request().Context(), strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list vendors"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/vendors/:id.
func (h *VendorHandler) Get(c echo.Context) error {
	rec, err := h.Vendors.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repository.ErrVendorNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vendor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load vendor"})
	}
	return c.JSON(http.StatusOK, rec)
}

// Create handles POST /v1/vendors.
func (h *VendorHandler) Create(c echo.Context) error {
	var req vendorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, phone and email are required"})
	}
	if !vendorStatusValid(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	amount := req.amount()
	if amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "owed amount cannot be negative"})
	}

	rec := model.Vendor{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		TotalOwed: amount,
		Status:    req.Status,
	}
	if err := h.Vendors.Create(c.Request().Context(), &rec); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create vendor"})
	}
	publishVendorActivity(queue.ActionCreated, currentUser(c), rec)
	return c.JSON(http.StatusCreated, rec)
}

// Update handles PUT /v1/vendors/:id.
func (h *VendorHandler) Update(c echo.Context) error {
	var req vendorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, phone and email are required"})
	}
	if !vendorStatusValid(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	amount := req.amount()
	if amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "owed amount cannot be negative"})
	}

	rec := model.Vendor{
		ID:        c.Param("id"),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		TotalOwed: amount,
		Status:    req.Status,
	}
	if err := h.Vendors.Update(c.Request().Context(), rec); err != nil {
		if err == repository.ErrVendorNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vendor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update vendor"})
	}
	updated, err := h.Vendors.Get(c.Request().Context(), rec.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load vendor"})
	}
	publishVendorActivity(queue.ActionUpdated, currentUser(c), updated)
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/vendors/:id.
func (h *VendorHandler) Delete(c echo.Context) error {
	rec, err := h.Vendors.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repository.ErrVendorNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vendor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load vendor"})
	}
	if err := h.Vendors.Delete(c.Request().Context(), rec.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete vendor"})
	}
	publishVendorActivity(queue.ActionDeleted, currentUser(c), rec)
	return c.NoContent(http.StatusNoContent)
}
