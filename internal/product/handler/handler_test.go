package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stockroom/inventory-service/internal/model"
	"github.com/stockroom/inventory-service/internal/product"
	"github.com/stockroom/inventory-service/internal/product/dto"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockUseCase struct {
	createID  int64
	createErr error
	updateErr error
	deleteErr error
	products  []model.Product
	listErr   error
}

func (m *mockUseCase) CreateProduct(_ context.Context, _ *dto.CreateProductInput) (int64, error) {
	return m.createID, m.createErr
}

func (m *mockUseCase) GetProduct(_ context.Context, _ int64) (*model.Product, error) {
	return nil, nil
}

func (m *mockUseCase) ListProducts(_ context.Context, _ *dto.ProductFilters) ([]model.Product, error) {
	return m.products, m.listErr
}

func (m *mockUseCase) UpdateProduct(_ context.Context, _ *dto.UpdateProductInput) error {
	return m.updateErr
}

func (m *mockUseCase) DeleteProduct(_ context.Context, _ int64) error {
	return m.deleteErr
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...zap.Field) {}
func (nopLogger) Info(string, ...zap.Field)  {}
func (nopLogger) Warn(string, ...zap.Field)  {}
func (nopLogger) Error(string, ...zap.Field) {}
func (nopLogger) Fatal(string, ...zap.Field) {}
func (nopLogger) Sync() error                { return nil }

func newTestRouter(uc product.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewProductHandler(uc, nopLogger{}).RegisterRoutes(r)
	return r
}

func TestCreateProduct_Created(t *testing.T) {
	r := newTestRouter(&mockUseCase{createID: 3})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products",
		strings.NewReader(`{"name":"Widget","sku":"WID-1","price":"9.99","quantity":4}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"productId":3`)
}

func TestCreateProduct_MissingFields(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"price":"1.00"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	r := newTestRouter(&mockUseCase{updateErr: product.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/products/5",
		strings.NewReader(`{"name":"Widget","sku":"WID-1","price":"9.99","quantity":4}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found.")
}

func TestDeleteProduct_NotFound(t *testing.T) {
	r := newTestRouter(&mockUseCase{deleteErr: product.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct_OK(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Product soft deleted successfully.")
}

func TestListProducts_StoreFailure(t *testing.T) {
	r := newTestRouter(&mockUseCase{listErr: assert.AnError})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?page=1&limit=10&search=w", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch products.")
}
