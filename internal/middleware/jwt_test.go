package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtiq/debtiq/internal/utils"
)

func runProtected(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, c
}

func TestJWTAuth(t *testing.T) {
	t.Parallel()
	const secret = "test-secret"

	at, err := utils.NewAccessToken(secret, "3", "user@debtiq.com", "user", 15)
	require.NoError(t, err)

	rec, c := runProtected(t, JWTAuth(secret), "Bearer "+at.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", c.Get("user_id"))
	assert.Equal(t, "user@debtiq.com", c.Get("email"))
	assert.Equal(t, "user", c.Get("role"))

	rec, _ = runProtected(t, JWTAuth(secret), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runProtected(t, JWTAuth(secret), "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	wrong, err := utils.NewAccessToken("other-secret", "3", "user@debtiq.com", "user", 15)
	require.NoError(t, err)
	rec, _ = runProtected(t, JWTAuth(secret), "Bearer "+wrong.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()
	e := echo.New()

	run := func(role string, allowed ...string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set("role", role)
		}
		_ = RequireRole(allowed...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run("admin", "admin"))
	assert.Equal(t, http.StatusOK, run("user", "admin", "user"))
	assert.Equal(t, http.StatusForbidden, run("user", "admin"))
	assert.Equal(t, http.StatusForbidden, run("", "admin", "user"))
}
