package product

import (
	"context"

	"github.com/stockroom/inventory-service/internal/model"
	"github.com/stockroom/inventory-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (int64, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) error
	DeleteProduct(ctx context.Context, id int64) error
}
