package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/debtiq/debtiq/internal/config"
	"github.com/debtiq/debtiq/internal/handler"    // import the handlers that implement business logic
	"github.com/debtiq/debtiq/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/debtiq/debtiq/internal/session"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, mw ...echo.MiddlewareFunc) {
	// Operations under /v1/auth establish or tear down a session and do not
	// require an existing access token.  Extra middleware (the token bucket
	// rate limiter, when Redis is up) applies to this group only.
	g := e.Group("/v1/auth", mw...)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Federated sign-in.  The body carries the provider token; an empty body
	// falls back to the development placeholder token.
	g.POST("/google", a.LoginWithGoogle)
	// Exchanging a refresh token rotates it and issues a fresh access token.
	g.POST("/refresh", a.Refresh)
	// Logout accepts either a bearer access token or a JSON body with a
	// refresh token.  If the token is valid a 204 response is returned.
	g.POST("/logout", a.Logout)

	// Protected endpoints require a valid access token.  Every handler on
	// this group runs the JWTAuth middleware before being invoked.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("admin", "user"))
	// Return the authenticated user's identity as carried by the token.
	auth.GET("/me", a.Me)
}

// APIDeps bundles everything the record endpoints need.  The Redis client
// may be nil, in which case rate limiting and response caching are skipped.
type APIDeps struct {
	Cfg       config.Config
	Auth      *handler.AuthHandler
	Clients   *handler.ClientHandler
	Vendors   *handler.VendorHandler
	Dashboard *handler.DashboardHandler
	Users     *handler.UserHandler
	Redis     *redis.Client
}

// RegisterAPI registers the protected record endpoints under /v1.  Clients
// and vendors are mirror resources; the dashboard aggregates both sides.
func RegisterAPI(e *echo.Echo, d APIDeps) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(d.Cfg.JWTSecret))
	g.Use(middleware.RequireRole("admin", "user"))
	if d.Redis != nil {
		g.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), d.Redis))
	}

	// The dashboard summary is read-heavy and safe to cache briefly.
	if d.Redis != nil {
		g.GET("/dashboard", d.Dashboard.Get, middleware.NewRedisCache(config.LoadCacheConfig(), d.Redis))
	} else {
		g.GET("/dashboard", d.Dashboard.Get)
	}

	g.GET("/clients", d.Clients.List)
	g.POST("/clients", d.Clients.Create)
	g.GET("/clients/:id", d.Clients.Get)
	g.PUT("/clients/:id", d.Clients.Update)
	g.DELETE("/clients/:id", d.Clients.Delete)
	g.GET("/clients/:id/statement", d.Clients.ClientStatement)

	g.GET("/vendors", d.Vendors.List)
	g.POST("/vendors", d.Vendors.Create)
	g.GET("/vendors/:id", d.Vendors.Get)
	g.PUT("/vendors/:id", d.Vendors.Update)
	g.DELETE("/vendors/:id", d.Vendors.Delete)
	g.GET("/vendors/:id/statement", d.Vendors.VendorStatement)

	// Account listing is limited to administrators.
	admin := e.Group("/v1/users")
	admin.Use(middleware.JWTAuth(d.Cfg.JWTSecret))
	admin.Use(middleware.RequireRole("admin"))
	admin.GET("", d.Users.List)
	admin.GET("/:id", d.Users.Get)
}

// RegisterPages registers the session-guarded HTML surface: the landing
// page, the login page and the printable record statements.  These routes
// ride the server-side session rather than a bearer token, since statement
// windows are opened directly by the browser without request headers.
func RegisterPages(e *echo.Echo, sess *session.Store, clients *handler.ClientHandler, vendors *handler.VendorHandler) {
	requireAuth := middleware.Guard(sess, true, "/login", "/")
	guestOnly := middleware.Guard(sess, false, "/login", "/")

	e.GET("/", handler.HomePage, requireAuth)
	e.GET("/login", handler.LoginPage, guestOnly)
	e.GET("/clients/:id/statement", clients.ClientStatement, requireAuth)
	e.GET("/vendors/:id/statement", vendors.VendorStatement, requireAuth)
}
