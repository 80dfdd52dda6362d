package router

import (
	"devportal/internal/adapter/api/handler"
	"devportal/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	products := e.Group("/v1/dashboard/products")
	products.Use(authMiddleware.Authenticate)
	products.GET("", dashboardHandler.ListProducts)
	products.POST("/refresh", dashboardHandler.RefreshProducts)
	products.DELETE("/:id", dashboardHandler.DeleteProduct)
}
