package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"devportal/internal/adapter/api"
	"devportal/internal/domain/entity"
	"devportal/internal/usecase"
	apperrors "devportal/pkg/errors"
)

type stubProductRepo struct {
	rows      []*entity.Product
	deleteErr error
	deleted   []string
}

func (s *stubProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows := make([]*entity.Product, len(s.rows))
	copy(rows, s.rows)
	return rows, nil
}

func (s *stubProductRepo) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return s.deleteErr
}

func newTestHandler(t *testing.T, repo *stubProductRepo, refresh bool) (*echo.Echo, *DashboardHandler) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	dashboard := usecase.NewDashboard(repo, zap.NewNop())
	if refresh {
		require.NoError(t, dashboard.Refresh(context.Background()))
	}

	return e, NewDashboardHandler(dashboard)
}

func catalogRows() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Name: "Weather API", Category: "data", Status: entity.StatusPublic, Visibility: entity.VisibilityCatalog, ServiceEndpointURL: "https://api.weather.example.com/v1"},
		{ID: "2", Name: "Maps API", Category: "geo", Status: entity.StatusDraft, Visibility: entity.VisibilityUnlisted},
	}
}

func decodePage(t *testing.T, rec *httptest.ResponseRecorder) pageView {
	t.Helper()

	var envelope struct {
		Success bool     `json:"success"`
		Data    pageView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestListProductsAppliesSearchFilter(t *testing.T) {
	e, h := newTestHandler(t, &stubProductRepo{rows: catalogRows()}, true)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/products?q=weather", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	page := decodePage(t, rec)
	assert.False(t, page.Loading)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "1", page.Products[0].ID)
	assert.Equal(t, "Public", page.Products[0].StatusLabel)
	assert.Equal(t, "api.weather.example.com", page.Products[0].EndpointHost)
}

func TestListProductsEmptyQueryReturnsAllInOrder(t *testing.T) {
	e, h := newTestHandler(t, &stubProductRepo{rows: catalogRows()}, true)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProducts(c))

	page := decodePage(t, rec)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "1", page.Products[0].ID)
	assert.Equal(t, "2", page.Products[1].ID)
}

func TestListProductsReportsLoadingBeforeFirstFetch(t *testing.T) {
	e, h := newTestHandler(t, &stubProductRepo{rows: catalogRows()}, false)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProducts(c))

	page := decodePage(t, rec)
	assert.True(t, page.Loading)
	assert.Empty(t, page.Products)
}

func TestDeleteProductRequiresConfirmation(t *testing.T) {
	repo := &stubProductRepo{rows: catalogRows()}
	e, h := newTestHandler(t, repo, true)

	req := httptest.NewRequest(http.MethodDelete, "/v1/dashboard/products/2", strings.NewReader(`{"name":"Maps API"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Declining confirmation aborts with no side effects.
	assert.Empty(t, repo.deleted)
}

func TestDeleteProductFailureSurfacesNoticeAndKeepsRow(t *testing.T) {
	repo := &stubProductRepo{
		rows:      catalogRows(),
		deleteErr: apperrors.RemoteDelete("Failed to delete product", nil),
	}
	e, h := newTestHandler(t, repo, true)

	req := httptest.NewRequest(http.MethodDelete, "/v1/dashboard/products/2", strings.NewReader(`{"confirm":true,"name":"Maps API"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "REMOTE_DELETE_FAILED")

	// Row "2" is back at its original position.
	listReq := httptest.NewRequest(http.MethodGet, "/v1/dashboard/products", nil)
	listRec := httptest.NewRecorder()
	require.NoError(t, h.ListProducts(e.NewContext(listReq, listRec)))

	page := decodePage(t, listRec)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "2", page.Products[1].ID)
	assert.False(t, page.Products[1].Deleting)
}

func TestDeleteProductSuccessRemovesRow(t *testing.T) {
	repo := &stubProductRepo{rows: catalogRows()}
	e, h := newTestHandler(t, repo, true)

	req := httptest.NewRequest(http.MethodDelete, "/v1/dashboard/products/2", strings.NewReader(`{"confirm":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"2"}, repo.deleted)

	listReq := httptest.NewRequest(http.MethodGet, "/v1/dashboard/products", nil)
	listRec := httptest.NewRecorder()
	require.NoError(t, h.ListProducts(e.NewContext(listReq, listRec)))

	page := decodePage(t, listRec)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "1", page.Products[0].ID)
}
