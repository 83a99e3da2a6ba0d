package middleware

// guard.go implements the route guard that decides what to do with a
// request while the session is loading, absent, or present on a route
// that requires anonymity. The decision itself is a pure three-way
// branch so it can be tested without HTTP plumbing.

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/debtiq/debtiq/internal/session"
)

// GuardDecision enumerates the outcomes of Decide.
type GuardDecision int

const (
	// GuardWait: session state is still loading, hold the request.
	GuardWait GuardDecision = iota
	// GuardRender: let the request through.
	GuardRender
	// GuardToLogin: authentication required but absent; send the
	// caller to the sign-in entry point, preserving the destination.
	GuardToLogin
	// GuardToHome: the route requires anonymity but the caller is
	// authenticated; send them to the authenticated landing page.
	GuardToHome
)

// Decide picks the guard outcome for a route.
func Decide(requireAuth, isAuthenticated, isLoading bool) GuardDecision {
	if isLoading {
		return GuardWait
	}
	if requireAuth && !isAuthenticated {
		return GuardToLogin
	}
	if !requireAuth && isAuthenticated {
		return GuardToHome
	}
	return GuardRender
}

// Guard wires Decide into Echo. loginPath is where unauthenticated
// callers of protected routes are redirected (with the original
// destination in ?next=); homePath is where authenticated callers of
// guest-only routes land.
func Guard(sess *session.Store, requireAuth bool, loginPath, homePath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch Decide(requireAuth, sess.IsAuthenticated(), sess.IsLoading()) {
			case GuardWait:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "session initializing"})
			case GuardToLogin:
				dest := c.Request().URL.RequestURI()
				return c.Redirect(http.StatusFound, loginPath+"?next="+url.QueryEscape(dest))
			case GuardToHome:
				return c.Redirect(http.StatusFound, homePath)
			default:
				return next(c)
			}
		}
	}
}
