package handler

import (
	"devportal/internal/usecase"
)

var (
	dashboardHandler *DashboardHandler
	healthHandler    *HealthHandler
)

func Setup(dashboard *usecase.Dashboard) {
	dashboardHandler = NewDashboardHandler(dashboard)
	healthHandler = NewHealthHandler()
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
