package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/http/handlers"
	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/repository"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Menu     *handlers.MenuHandler
	Tables   *handlers.TablesHandler
	Orders   *handlers.OrdersHandler
	Payments *handlers.PaymentsHandler
	Gate     *auth.TokenGate
	Users    repository.UserRepository
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/verify", cfg.Auth.VerifyEmail)
	authGroup.Post("/login", cfg.Auth.Login)
	// Refresh carries the token in the body; the service checks revocation.
	authGroup.Post("/refresh", cfg.Auth.Refresh)
	authGroup.Post("/logout", cfg.Gate.RequireRefresh(), cfg.Auth.Logout)
	authGroup.Post("/resend-verification", cfg.Gate.RequireAccess(), cfg.Auth.ResendVerification)
	authGroup.Get("/me", cfg.Gate.RequireAccess(), cfg.Auth.Me)

	// Menu reads are public; diners browse before they sign in.
	v1.Get("/menu/categories", cfg.Menu.ListCategories)
	v1.Get("/menu/items", cfg.Menu.ListItems)
	v1.Get("/menu/items/:id", cfg.Menu.GetItem)

	// Everything below requires a verified session and a resolved principal.
	protected := v1.Group("", cfg.Gate.RequireAccess(), auth.LoadPrincipal(cfg.Users))

	protected.Post("/menu/categories", auth.RequireRole(domain.RoleAdmin), cfg.Menu.CreateCategory)
	protected.Post("/menu/items", auth.RequireRole(domain.RoleAdmin), cfg.Menu.CreateItem)

	tables := protected.Group("/tables")
	tables.Get("/", cfg.Tables.List)
	tables.Post("/", auth.RequireRole(domain.RoleAdmin), cfg.Tables.Create)
	tables.Patch("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Tables.Update)
	tables.Post("/:id/seat", cfg.Tables.Seat)
	tables.Post("/:id/close", auth.RequireRole(domain.RoleWaiter, domain.RoleAdmin), cfg.Tables.Close)

	orders := protected.Group("/orders")
	orders.Post("/", auth.RequireRole(domain.RoleCustomer), cfg.Orders.Create)
	orders.Get("/", cfg.Orders.List)
	orders.Get("/kitchen", auth.RequireRole(domain.RoleKitchen, domain.RoleAdmin), cfg.Orders.KitchenQueue)
	orders.Post("/:id/approve", auth.RequireRole(domain.RoleWaiter), cfg.Orders.Approve)
	orders.Patch("/:id/status", auth.RequireRole(domain.RoleKitchen, domain.RoleWaiter, domain.RoleAdmin), cfg.Orders.UpdateStatus)
	orders.Get("/:orderId/payments", auth.RequireRole(domain.RoleWaiter, domain.RoleAdmin), cfg.Payments.ListForOrder)

	protected.Post("/payments", cfg.Payments.Record)
}
