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

// ClientHandler serves the debtor CRUD endpoints. Every mutation
// publishes a best-effort debt.activity event for the audit consumer.
type ClientHandler struct {
	Clients repository.ClientStore
}

func NewClientHandler(clients repository.ClientStore) *ClientHandler {
	return &ClientHandler{Clients: clients}
}

// clientReq binds create/update bodies. The amount can arrive as a
// plain number (totalDebt) or as a formatted string (debt) typed into
// the dashboard form; the string form wins when both are present.
type clientReq struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	TotalDebt float64 `json:"totalDebt"`
	Debt      string  `json:"debt"`
	Status    string  `json:"status"`
}

func (r *clientReq) amount() float64 {
	if strings.TrimSpace(r.Debt) != "" {
		return currency.Parse(r.Debt)
	}
	return r.TotalDebt
}

func clientStatusValid(s string) bool {
	switch s {
	case "", model.ClientStatusActive, model.ClientStatusInactive, model.ClientStatusOverdue:
		return true
	}
	return false
}

// publishClientActivity fires the audit event without blocking the
// request. The broker being down only costs the audit line.
func publishClientActivity(action, actorID string, rec model.Client) {
	ev := queue.DebtActivityEvent{
		Kind:       queue.KindClient,
		Action:     action,
		RecordID:   rec.ID,
		RecordName: rec.Name,
		Amount:     rec.TotalDebt,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishDebtActivity(ctx, ev)
	}()
}

// List handles GET /v1/clients with an optional ?q= substring filter
// over name, email and phone.
func (h *ClientHandler) List(c echo.Context) error {
	items, err := h.Clients.List(c.Request().Context(), strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list clients"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/clients/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	rec, err := h.Clients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repository.ErrClientNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load client"})
	}
	return c.JSON(http.StatusOK, rec)
}

// Create handles POST /v1/clients. Name, phone and email are required;
// the debt amount defaults to 0 when absent or unparseable.
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, phone and email are required"})
	}
	if !clientStatusValid(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	amount := req.amount()
	if amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "debt cannot be negative"})
	}

	rec := model.Client{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		TotalDebt: amount,
		Status:    req.Status,
	}
	if err := h.Clients.Create(c.Request().Context(), &rec); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create client"})
	}
	publishClientActivity(queue.ActionCreated, currentUser(c), rec)
	return c.JSON(http.StatusCreated, rec)
}

// Update handles PUT /v1/clients/:id, replacing the record in place.
// The creation timestamp is preserved by the store.
func (h *ClientHandler) Update(c echo.Context) error {
	var req clientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, phone and email are required"})
	}
	if !clientStatusValid(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	amount := req.amount()
	if amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "debt cannot be negative"})
	}

	rec := model.Client{
		ID:        c.Param("id"),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		TotalDebt: amount,
		Status:    req.Status,
	}
	if err := h.Clients.Update(c.Request().Context(), rec); err != nil {
		if err == repository.ErrClientNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update client"})
	}
	updated, err := h.Clients.Get(c.Request().Context(), rec.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load client"})
	}
	publishClientActivity(queue.ActionUpdated, currentUser(c), updated)
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/clients/:id.
func (h *ClientHandler) Delete(c echo.Context) error {
	rec, err := h.Clients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repository.ErrClientNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load client"})
	}
	if err := h.Clients.Delete(c.Request().Context(), rec.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete client"})
	}
	publishClientActivity(queue.ActionDeleted, currentUser(c), rec)
	return c.NoContent(http.StatusNoContent)
}

// currentUser reads the authenticated user id JWTAuth stored in the
// context, empty for unauthenticated callers.
func currentUser(c echo.Context) string {
	if s, ok := c.Get("user_id").(string); ok {
		return s
	}
	return ""
}
