package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the order API under /v3/orders behind the identity
// middleware, plus the unauthenticated /health and /metrics endpoints.
func RegisterRoutes(e *echo.Echo, s *Server, metricsHandler http.Handler) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metricsHandler))

	orders := e.Group("/v3/orders", ActorMiddleware())
	orders.POST("/varredura-ml", s.CreateLegacyOrder)
	orders.POST("/create-order", s.CreateDirectOrder)
	orders.PATCH("/update-order", s.AdvanceOrder)
	orders.PATCH("/registro-entrega", s.RegisterDelivery)
	orders.PATCH("/advance-flow", s.AdvanceOrderByFlow)
	orders.GET("", s.ListOrders)
	orders.GET("/:id", s.GetOrder)
	orders.GET("/:id/events", s.GetOrderEvents)
}
