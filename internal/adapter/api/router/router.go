package router

import (
	"devportal/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupDashboardRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
