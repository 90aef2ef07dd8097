package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockroom/inventory-service/internal/model"
	"github.com/stockroom/inventory-service/internal/product"
	"github.com/stockroom/inventory-service/internal/product/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRepository struct {
	created     *model.Product
	createID    int64
	createErr   error
	updated     *model.Product
	updateErr   error
	deletedID   int64
	deleteErr   error
	listFilters *dto.ProductFilters
	listResult  []model.Product
}

func (m *mockRepository) Create(_ context.Context, p *model.Product) (int64, error) {
	m.created = p
	return m.createID, m.createErr
}

func (m *mockRepository) FindByID(_ context.Context, id int64) (*model.Product, error) {
	return nil, nil
}

func (m *mockRepository) FindAll(_ context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	m.listFilters = f
	return m.listResult, nil
}

func (m *mockRepository) Update(_ context.Context, p *model.Product) error {
	m.updated = p
	return m.updateErr
}

func (m *mockRepository) SoftDelete(_ context.Context, id int64) error {
	m.deletedID = id
	return m.deleteErr
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...zap.Field) {}
func (nopLogger) Info(string, ...zap.Field)  {}
func (nopLogger) Warn(string, ...zap.Field)  {}
func (nopLogger) Error(string, ...zap.Field) {}
func (nopLogger) Fatal(string, ...zap.Field) {}
func (nopLogger) Sync() error                { return nil }

func TestCreateProduct(t *testing.T) {
	repo := &mockRepository{createID: 11}
	uc := NewProductUseCase(repo, nil, nopLogger{})

	id, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:     "Widget",
		SKU:      "WID-1",
		Price:    decimal.RequireFromString("9.99"),
		Quantity: 100,
	})

	require.NoError(t, err)
	assert.EqualValues(t, 11, id)
	assert.True(t, repo.created.IsActive, "new products start active")
	assert.Equal(t, "WID-1", repo.created.SKU)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	repo := &mockRepository{updateErr: product.ErrNotFound}
	uc := NewProductUseCase(repo, nil, nopLogger{})

	err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{ID: 5, Name: "x", SKU: "y"})

	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	repo := &mockRepository{deleteErr: product.ErrNotFound}
	uc := NewProductUseCase(repo, nil, nopLogger{})

	err := uc.DeleteProduct(context.Background(), 5)

	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	repo := &mockRepository{}
	uc := NewProductUseCase(repo, nil, nopLogger{})

	require.NoError(t, uc.DeleteProduct(context.Background(), 8))
	assert.EqualValues(t, 8, repo.deletedID)
}

func TestListProducts_DefaultsPagination(t *testing.T) {
	repo := &mockRepository{listResult: []model.Product{}}
	uc := NewProductUseCase(repo, nil, nopLogger{})

	_, err := uc.ListProducts(context.Background(), &dto.ProductFilters{Search: "wid"})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.listFilters.Page)
	assert.Equal(t, 10, repo.listFilters.Limit)
	assert.Equal(t, "wid", repo.listFilters.Search)
}
