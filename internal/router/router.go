package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/rifadigital/raffle/internal/handler"    // handlers implement the endpoint logic
	"github.com/rifadigital/raffle/internal/middleware" // session auth, role and rate-limit middleware
	"github.com/rifadigital/raffle/internal/session"    // session registry resolved by the auth middleware
)

// RegisterPublic registers routes that need no authentication: the health
// check and the announced prize list.
func RegisterPublic(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/prizes", handler.Prizes)
}

// RegisterAuth wires login under /v1/auth and the session-scoped auth
// endpoints (logout, me) under the protected /v1 group.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, sessions *session.Manager) {
	e.POST("/v1/auth/login", a.Login)

	g := e.Group("/v1")
	g.Use(middleware.SessionAuth(jwtSecret, sessions))
	g.POST("/auth/logout", a.Logout)
	g.GET("/me", a.Me)
}

// RegisterSeller wires the selling flow for both roles. The sale route
// additionally runs the rate limiter so one runaway client cannot hammer
// the shared ledger store.
func RegisterSeller(e *echo.Echo, s *handler.SaleHandler, jwtSecret string, sessions *session.Manager, rateLimit echo.MiddlewareFunc) {
	g := e.Group("/v1")
	g.Use(middleware.SessionAuth(jwtSecret, sessions))
	g.Use(middleware.RequireRole("SELLER", "ADMIN"))

	g.GET("/numbers/free", s.FreeNumbers)
	g.GET("/sales/mine", s.MySales)
	g.POST("/sales", s.CreateSale, rateLimit)
}

// RegisterAdmin wires the administrative panel: aggregate summary,
// duplicate reconciliation, export and reset. ADMIN only.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string, sessions *session.Manager) {
	g := e.Group("/v1/admin")
	g.Use(middleware.SessionAuth(jwtSecret, sessions))
	g.Use(middleware.RequireRole("ADMIN"))

	g.GET("/summary", a.Summary)
	g.GET("/duplicates", a.Duplicates)
	g.GET("/export", a.Export)
	g.POST("/reset", a.Reset)
}
