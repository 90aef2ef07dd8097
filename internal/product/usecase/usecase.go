package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stockroom/inventory-service/internal/model"
	"github.com/stockroom/inventory-service/internal/product"
	"github.com/stockroom/inventory-service/internal/product/dto"
	"github.com/stockroom/inventory-service/pkg/cache"
	"github.com/stockroom/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

const listCacheTTL = 5 * time.Minute

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	logger logger.Logger
}

// NewProductUseCase builds the product use case. cache may be nil; listing
// then always goes to the database.
func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, log logger.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (int64, error) {
	p := &model.Product{
		Name:     input.Name,
		SKU:      input.SKU,
		Price:    input.Price,
		Quantity: input.Quantity,
		IsActive: true,
	}

	id, err := uc.repo.Create(ctx, p)
	if err != nil {
		return 0, err
	}

	go uc.invalidateListCache(context.Background())

	return id, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 10
	}

	cacheKey := listCacheKey(filters)
	if uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached []model.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	products, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	return products, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) error {
	p := &model.Product{
		ID:       input.ID,
		Name:     input.Name,
		SKU:      input.SKU,
		Price:    input.Price,
		Quantity: input.Quantity,
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		return err
	}

	go uc.invalidateListCache(context.Background())
	return nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	go uc.invalidateListCache(context.Background())
	return nil
}

func listCacheKey(filters *dto.ProductFilters) string {
	data, _ := json.Marshal(filters)
	return fmt.Sprintf("products:list:%x", md5.Sum(data))
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
	if err != nil {
		uc.logger.Warn("failed to scan product list cache keys", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}
