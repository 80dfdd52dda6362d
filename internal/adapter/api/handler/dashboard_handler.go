package handler

import (
	"devportal/internal/usecase"
	"devportal/pkg/errors"
	"devportal/pkg/response"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboard *usecase.Dashboard
}

func NewDashboardHandler(dashboard *usecase.Dashboard) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
	}
}

type deleteProductRequest struct {
	Confirm bool   `json:"confirm" validate:"required"`
	Name    string `json:"name"`
}

// ListProducts serves the current page snapshot, filtered by the q
// parameter. The filter is recomputed per request so it can never go
// stale against the rows or the query.
func (h *DashboardHandler) ListProducts(c echo.Context) error {
	query := c.QueryParam("q")

	rows, loading := h.dashboard.Rows()
	filtered := usecase.FilterProducts(rows, query)

	views := make([]productView, 0, len(filtered))
	for _, row := range filtered {
		views = append(views, newProductView(row, h.dashboard.IsDeleting(row.ID)))
	}

	return response.Success(c, pageView{
		Loading:  loading,
		Products: views,
		Total:    len(views),
	})
}

// RefreshProducts re-runs the listing loader.
func (h *DashboardHandler) RefreshProducts(c echo.Context) error {
	if err := h.dashboard.Refresh(c.Request().Context()); err != nil {
		return response.Error(c, errors.Internal("Refresh cancelled", err))
	}

	return response.Success(c, map[string]string{
		"message": "Product list refreshed",
	})
}

// DeleteProduct requires an explicit confirmation in the request body;
// without it the delete aborts before any state is touched.
func (h *DashboardHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	var req deleteProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.dashboard.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}
