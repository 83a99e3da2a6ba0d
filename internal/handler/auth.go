package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/debtiq/debtiq/internal/auth"
	"github.com/debtiq/debtiq/internal/config"
	"github.com/debtiq/debtiq/internal/model"
	"github.com/debtiq/debtiq/internal/repository"
	"github.com/debtiq/debtiq/internal/session"
	"github.com/debtiq/debtiq/internal/utils"
)

// googlePlaceholderToken stands in for a real federated token in the
// demo flow; anything longer than 10 characters passes the provider's
// shape check.
const googlePlaceholderToken = "mock-google-token"

// AuthHandler bundles dependencies for the auth endpoints. Sessions is
// the injectable session store; Users and Tokens back the refresh
// token flow.
type AuthHandler struct {
	Cfg      config.Config
	Sessions *session.Store
	Users    repository.UserStore
	Tokens   repository.TokenStore
}

func NewAuthHandler(cfg config.Config, s *session.Store, u repository.UserStore, t repository.TokenStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Sessions: s, Users: u, Tokens: t}
}

// ----- DTOs -----

type registerReq struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type googleReq struct {
	Token string `json:"token"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User    model.User `json:"user"`
	Access  tokenPart  `json:"access"`
	Refresh tokenPart  `json:"refresh"`
}

// respond issues the refresh token for a signed-in session and builds
// the auth response from the session store state.
func (h *AuthHandler) respond(c echo.Context, ctx context.Context, status int) error {
	u, ok := h.Sessions.CurrentUser()
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session not established"})
	}
	access := h.Sessions.Token()
	accessExp := time.Now().UTC().Add(time.Duration(h.Cfg.AccessTTLMin) * time.Minute)

	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(status, authResp{
		User:    u,
		Access:  tokenPart{Token: access, Expires: accessExp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}

// Login: verify credentials through the session store and return a
// token pair. Invalid credentials always produce the same fixed
// message regardless of which check failed.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sessions.Login(ctx, req.Email, req.Password); err != nil {
		if err == auth.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	return h.respond(c, ctx, http.StatusOK)
}

// Register: create the account and sign it in. Password confirmation
// is validated here, before anything reaches the provider.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "passwords do not match"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Sessions.Register(ctx, auth.RegisterFields{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if err == auth.ErrUserExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "user already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}
	return h.respond(c, ctx, http.StatusCreated)
}

// LoginWithGoogle: exchange a federated token for a session. An empty
// body falls back to the demo placeholder token.
func (h *AuthHandler) LoginWithGoogle(c echo.Context) error {
	var req googleReq
	_ = c.Bind(&req)
	token := strings.TrimSpace(req.Token)
	if token == "" {
		token = googlePlaceholderToken
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sessions.LoginWithGoogle(ctx, token); err != nil {
		if err == auth.ErrInvalidToken {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid google token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "google login failed"})
	}
	return h.respond(c, ctx, http.StatusOK)
}

// Refresh: validate by hash, revoke the old token and issue a new
// pair. The restored identity is pushed into the session store via
// SetUser; the already-authenticated flow needs no credential check.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	_ = h.Tokens.RevokeByHash(ctx, hash)

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	h.Sessions.SetUser(u)

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:    u,
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
	})
}

// Logout: clear the durable session and revoke refresh tokens. With a
// valid bearer and no refresh token in the body, every session of the
// user is revoked; with a refresh token, only that one.
func (h *AuthHandler) Logout(c echo.Context) error {
	var uid string
	if header := c.Request().Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		raw := strings.TrimPrefix(header, "Bearer ")
		if id, _, _, err := utils.ParseAccessToken(h.Cfg.JWTSecret, raw); err == nil {
			uid = id
		}
	}

	var req refreshReq
	_ = c.Bind(&req)
	refreshToken := strings.TrimSpace(req.RefreshToken)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch {
	case uid != "" && refreshToken == "":
		if err := h.Tokens.RevokeAllForUser(ctx, uid); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
	case refreshToken != "":
		hash := utils.HashRefreshRaw(refreshToken)
		if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
		}
		if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "provide Authorization header or refresh_token"})
	}

	// Logout cannot fail: the durable keys and in-memory state are
	// cleared even if token revocation hit an error path above.
	h.Sessions.Logout(ctx)
	return c.NoContent(http.StatusNoContent)
}

// Me: simple protected endpoint echoing the verified claims.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": c.Get("user_id"),
		"email":   c.Get("email"),
		"role":    c.Get("role"),
	})
}
