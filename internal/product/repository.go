package product

import (
	"context"

	"github.com/stockroom/inventory-service/internal/model"
	"github.com/stockroom/inventory-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	SoftDelete(ctx context.Context, id int64) error
}
