package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/debtiq/debtiq/internal/auth"
	"github.com/debtiq/debtiq/internal/config"
	"github.com/debtiq/debtiq/internal/model"
	"github.com/debtiq/debtiq/internal/repository"
	"github.com/debtiq/debtiq/internal/session"
	"github.com/debtiq/debtiq/internal/utils"
)

func newAuthFixture(t *testing.T) (*AuthHandler, *echo.Echo) {
	t.Helper()
	cfg := config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		BcryptCost:     bcrypt.MinCost,
	}
	users := repository.NewMemoryUserStore(repository.SeedUsers())
	tokens := repository.NewMemoryTokenStore()
	provider := auth.NewMemoryProvider(users, 0, bcrypt.MinCost)
	sessions := session.NewStore(provider, session.NewMemoryKV(), func(u model.User) (string, error) {
		at, err := utils.NewAccessToken(cfg.JWTSecret, u.ID, u.Email, u.Role, cfg.AccessTTLMin)
		return at.Token, err
	})
	return NewAuthHandler(cfg, sessions, users, tokens), echo.New()
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeAuthResp(t *testing.T, rec *httptest.ResponseRecorder) authResp {
	t.Helper()
	var resp authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_Login(t *testing.T) {
	h, e := newAuthFixture(t)

	c, rec := postJSON(e, "/v1/auth/login", `{"email":"admin@debtiq.com","password":"password"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeAuthResp(t, rec)
	assert.Equal(t, "admin@debtiq.com", resp.User.Email)
	assert.Equal(t, "admin", resp.User.Role)
	assert.NotEmpty(t, resp.Access.Token)
	assert.Len(t, resp.Refresh.Token, 96)

	// the access token verifies against the configured secret
	uid, _, role, err := utils.ParseAccessToken(h.Cfg.JWTSecret, resp.Access.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, uid)
	assert.Equal(t, "admin", role)
}

func TestAuthHandler_LoginRejections(t *testing.T) {
	h, e := newAuthFixture(t)

	c, rec := postJSON(e, "/v1/auth/login", `{"email":"admin@debtiq.com","password":"nope"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// unknown account gets the same message as a wrong password
	c, rec = postJSON(e, "/v1/auth/login", `{"email":"ghost@debtiq.com","password":"password"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")

	c, rec = postJSON(e, "/v1/auth/login", `{"email":"","password":""}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register(t *testing.T) {
	h, e := newAuthFixture(t)

	body := `{"email":"new@debtiq.com","password":"pass-123","confirmPassword":"pass-123","firstName":"New","lastName":"Operator"}`
	c, rec := postJSON(e, "/v1/auth/register", body)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeAuthResp(t, rec)
	assert.Equal(t, "new@debtiq.com", resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)

	// the response never leaks the password hash
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestAuthHandler_RegisterRejections(t *testing.T) {
	h, e := newAuthFixture(t)

	c, rec := postJSON(e, "/v1/auth/register",
		`{"email":"x@debtiq.com","password":"a","confirmPassword":"b","firstName":"X","lastName":"Y"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "passwords do not match")

	c, rec = postJSON(e, "/v1/auth/register",
		`{"email":"admin@debtiq.com","password":"a","confirmPassword":"a","firstName":"X","lastName":"Y"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	c, rec = postJSON(e, "/v1/auth/register", `{"email":"x@debtiq.com"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Google(t *testing.T) {
	h, e := newAuthFixture(t)

	// an empty body falls back to the placeholder token
	c, rec := postJSON(e, "/v1/auth/google", `{}`)
	require.NoError(t, h.LoginWithGoogle(c))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeAuthResp(t, rec)
	assert.Equal(t, "google@debtiq.com", resp.User.Email)

	c, rec = postJSON(e, "/v1/auth/google", `{"token":"short"}`)
	require.NoError(t, h.LoginWithGoogle(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_RefreshRotation(t *testing.T) {
	h, e := newAuthFixture(t)

	c, rec := postJSON(e, "/v1/auth/login", `{"email":"user@debtiq.com","password":"password"}`)
	require.NoError(t, h.Login(c))
	first := decodeAuthResp(t, rec)

	c, rec = postJSON(e, "/v1/auth/refresh", `{"refresh_token":"`+first.Refresh.Token+`"}`)
	require.NoError(t, h.Refresh(c))
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeAuthResp(t, rec)
	assert.NotEqual(t, first.Refresh.Token, second.Refresh.Token)
	assert.Equal(t, first.User.ID, second.User.ID)

	// the spent token was revoked by the rotation
	c, rec = postJSON(e, "/v1/auth/refresh", `{"refresh_token":"`+first.Refresh.Token+`"}`)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = postJSON(e, "/v1/auth/refresh", `{"refresh_token":"made-up"}`)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	h, e := newAuthFixture(t)

	c, rec := postJSON(e, "/v1/auth/login", `{"email":"user@debtiq.com","password":"password"}`)
	require.NoError(t, h.Login(c))
	resp := decodeAuthResp(t, rec)
	require.True(t, h.Sessions.IsAuthenticated())

	c, rec = postJSON(e, "/v1/auth/logout", `{"refresh_token":"`+resp.Refresh.Token+`"}`)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, h.Sessions.IsAuthenticated())

	// the revoked token no longer refreshes
	c, rec = postJSON(e, "/v1/auth/refresh", `{"refresh_token":"`+resp.Refresh.Token+`"}`)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// no credentials at all is a bad request
	c, rec = postJSON(e, "/v1/auth/logout", `{}`)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_LogoutWithBearer(t *testing.T) {
	h, e := newAuthFixture(t)

	c, rec := postJSON(e, "/v1/auth/login", `{"email":"user@debtiq.com","password":"password"}`)
	require.NoError(t, h.Login(c))
	resp := decodeAuthResp(t, rec)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Access.Token)
	rec = httptest.NewRecorder()
	require.NoError(t, h.Logout(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// bearer logout revokes every refresh token of the user
	c, rec = postJSON(e, "/v1/auth/refresh", `{"refresh_token":"`+resp.Refresh.Token+`"}`)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
