package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Page handlers back the session-guarded HTML surface. The dashboard UI
// itself is served elsewhere; these endpoints exist so the guard has real
// routes to protect and so statement windows have a landing page to fall
// back to when the session is gone.

// LoginPage is shown to signed-out visitors. Signed-in visitors never
// reach it; the guard bounces them back to the home page.
func LoginPage(c echo.Context) error {
	return c.HTML(http.StatusOK, `<!DOCTYPE html>
<html dir="rtl" lang="ar"><head><meta charset="utf-8"><title>Debt-IQ</title></head>
<body style="font-family: Arial, sans-serif; text-align: center; padding: 40px;">
<h1 style="color: #7c3aed;">Debt-IQ</h1><p>سجّل الدخول للمتابعة</p>
</body></html>`)
}

// HomePage is the guarded landing page for an established session.
func HomePage(c echo.Context) error {
	return c.HTML(http.StatusOK, `<!DOCTYPE html>
<html dir="rtl" lang="ar"><head><meta charset="utf-8"><title>Debt-IQ</title></head>
<body style="font-family: Arial, sans-serif; text-align: center; padding: 40px;">
<h1 style="color: #7c3aed;">Debt-IQ</h1><p>لوحة متابعة الديون</p>
</body></html>`)
}
