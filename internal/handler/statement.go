package handler

// statement.go renders a printable record statement: a complete
// inline-styled RTL HTML document for a single client or vendor. The
// dashboard opens it in a new window and triggers platform print; the
// server treats it as a plain one-shot GET.

import (
	"html/template"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/debtiq/debtiq/internal/currency"
	"github.com/debtiq/debtiq/internal/repository"
)

type statementRow struct {
	Label string
	Value string
}

type statementData struct {
	Title     string
	Rows      []statementRow
	PrintedAt string
}

var statementTmpl = template.Must(template.New("statement").Parse(`<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head><meta charset="utf-8"><title>Debt-IQ</title></head>
<body style="font-family: Arial, sans-serif; direction: rtl; text-align: right; padding: 20px;">
  <div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #7c3aed;">Debt-IQ</h1>
    <h2>{{.Title}}</h2>
  </div>
  <table style="width: 100%; border-collapse: collapse;">
    {{range .Rows}}<tr><td style="padding: 10px; border: 1px solid #ddd;"><strong>{{.Label}}:</strong></td><td style="padding: 10px; border: 1px solid #ddd;">{{.Value}}</td></tr>
    {{end}}
  </table>
  <div style="text-align: center; margin-top: 30px; font-size: 12px; color: #666;">
    تم الطباعة في: {{.PrintedAt}}
  </div>
</body>
</html>`))

func renderStatement(c echo.Context, data statementData) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return statementTmpl.Execute(c.Response(), data)
}

// ClientStatement handles GET /v1/clients/:id/statement.
func (h *ClientHandler) ClientStatement(c echo.Context) error {
	rec, err := h.Clients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repository.ErrClientNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load client"})
	}
	return renderStatement(c, statementData{
		Title: "بيانات الزبون",
		Rows: []statementRow{
			{Label: "رقم الزبون", Value: rec.ID},
			{Label: "الاسم", Value: rec.Name},
			{Label: "الهاتف", Value: rec.Phone},
			{Label: "الإيميل", Value: rec.Email},
			{Label: "المديونية", Value: currency.Format(rec.TotalDebt)},
			{Label: "تاريخ الإنشاء", Value: rec.CreatedAt.Format("02/01/2006")},
		},
		PrintedAt: time.Now().UTC().Format("02/01/2006 15:04"),
	})
}

// VendorStatement handles GET /v1/vendors/:id/statement.
func (h *VendorHandler) VendorStatement(c echo.Context) error {
	rec, err := h.Vendors.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repository.ErrVendorNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vendor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load vendor"})
	}
	return renderStatement(c, statementData{
		Title: "بيانات المورد",
		Rows: []statementRow{
			{Label: "رقم المورد", Value: rec.ID},
			{Label: "الاسم", Value: rec.Name},
			{Label: "الهاتف", Value: rec.Phone},
			{Label: "الإيميل", Value: rec.Email},
			{Label: "المستحقات", Value: currency.Format(rec.TotalOwed)},
			{Label: "تاريخ الإنشاء", Value: rec.CreatedAt.Format("02/01/2006")},
		},
		PrintedAt: time.Now().UTC().Format("02/01/2006 15:04"),
	})
}
