package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/snazzy/storefront/api-gateway/config"
	"github.com/snazzy/storefront/api-gateway/health"
	"github.com/snazzy/storefront/api-gateway/middleware"
	"github.com/snazzy/storefront/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	Description  string
	RequireAuth  bool
	RequireAdmin bool
}

// Routes holds all route definitions. Per-operation checks (resource
// ownership, admin-only writes on mixed prefixes) stay in the backend;
// the gateway only rejects traffic that could never succeed.
var Routes = []RouteDefinition{
	{
		Prefix:      "/api/auth",
		Description: "Registration and login",
	},
	{
		Prefix:      "/api/promotions",
		Description: "Promotion catalog (reads public, writes need admin)",
	},
	{
		Prefix:      "/api/cart",
		Description: "Shopping cart",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/orders",
		Description: "Order placement and management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/cards",
		Description: "Stored payment cards",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/payments",
		Description: "Charges and refund requests",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/refunds",
		Description: "Refund requests and decisions",
		RequireAuth: true,
	},
	{
		Prefix:       "/api/reports",
		Description:  "Financial reports",
		RequireAuth:  true,
		RequireAdmin: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, cb *middleware.CircuitBreaker) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no backend probe)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks the backend)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.Check(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Circuit breaker state, for operators
	app.Get("/health/circuit", func(c *fiber.Ctx) error {
		return c.JSON(cb.GetStats())
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Storefront API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerRoute(app, route, reverseProxy)
	}
}

// registerRoute registers all HTTP methods for a prefix
func registerRoute(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c)
	}

	var middlewares []fiber.Handler
	if route.RequireAdmin {
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	} else if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}

	group := app.Group(route.Prefix, middlewares...)
	group.All("/*", handler)

	// Exact prefix path, without trailing segments
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
