package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockroom/inventory-service/internal/model"
	"github.com/stockroom/inventory-service/internal/order"
	"github.com/stockroom/inventory-service/internal/order/dto"
	"github.com/stockroom/inventory-service/pkg/cache"
	"github.com/stockroom/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type orderUseCase struct {
	repo      order.Repository
	publisher order.EventPublisher
	cache     *cache.RedisClient
	logger    logger.Logger
	txTimeout time.Duration
}

// NewOrderUseCase builds the order use case. publisher and cache may be nil;
// the order protocol itself never depends on either.
func NewOrderUseCase(repo order.Repository, publisher order.EventPublisher, cache *cache.RedisClient, log logger.Logger, txTimeout time.Duration) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		logger:    log,
		txTimeout: txTimeout,
	}
}

// CreateOrder runs the stock-check-and-commit protocol: lock the referenced
// product rows, validate stock against the locked quantities, insert the
// order header and items with snapshot prices, decrement stock, finalize the
// total, commit. Any failure past Begin rolls the whole transaction back.
func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	if len(input.Products) == 0 {
		return nil, order.ErrEmptyBasket
	}
	for _, item := range input.Products {
		if item.Quantity <= 0 {
			return nil, order.ErrInvalidQuantity
		}
	}

	// Bounded wait: lock acquisition and every write share one deadline, so a
	// stalled transaction is rolled back rather than held open.
	ctx, cancel := context.WithTimeout(ctx, uc.txTimeout)
	defer cancel()

	tx, err := uc.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	locked, err := tx.LockProducts(ctx, distinctIDs(input.Products))
	if err != nil {
		return nil, err
	}

	// Walk the basket in request order so the first offending entry is the
	// one reported. A running remainder covers duplicate product ids: their
	// combined demand may not exceed the locked stock.
	remaining := make(map[int64]int64, len(locked))
	for id, p := range locked {
		remaining[id] = p.Quantity
	}
	for _, item := range input.Products {
		if _, ok := locked[item.ProductID]; !ok {
			return nil, &order.ProductNotFoundError{ProductID: item.ProductID}
		}
		if remaining[item.ProductID] < item.Quantity {
			return nil, &order.InsufficientStockError{ProductID: item.ProductID}
		}
		remaining[item.ProductID] -= item.Quantity
	}

	orderID, err := tx.InsertOrder(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(input.Products))
	for _, item := range input.Products {
		price := locked[item.ProductID].Price
		items = append(items, model.OrderItem{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	if err := tx.InsertItems(ctx, items); err != nil {
		return nil, err
	}

	for _, item := range input.Products {
		if err := tx.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := tx.SetTotal(ctx, orderID, total); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	created := &model.Order{ID: orderID, TotalPrice: total, OrderDate: time.Now()}

	go uc.afterCommit(context.Background(), created, items)

	return created, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id int64) ([]model.OrderDetailRow, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *orderUseCase) ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 10
	}
	return uc.repo.FindAll(ctx, filters)
}

func distinctIDs(items []dto.BasketItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	slices.Sort(ids)
	return ids
}

type orderCreatedEvent struct {
	EventID    string            `json:"eventId"`
	Type       string            `json:"type"`
	OrderID    int64             `json:"orderId"`
	TotalPrice decimal.Decimal   `json:"totalPrice"`
	Items      []model.OrderItem `json:"items"`
}

// afterCommit handles the best-effort side effects of a committed order:
// invalidating the product list cache (stock changed) and publishing the
// order.created event. Failures are logged, never surfaced.
func (uc *orderUseCase) afterCommit(ctx context.Context, o *model.Order, items []model.OrderItem) {
	if uc.cache != nil {
		keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
		if err == nil && len(keys) > 0 {
			uc.cache.Client.Del(ctx, keys...)
		}
	}

	if uc.publisher == nil {
		return
	}
	event := orderCreatedEvent{
		EventID:    uuid.New().String(),
		Type:       "order.created",
		OrderID:    o.ID,
		TotalPrice: o.TotalPrice,
		Items:      items,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := uc.publisher.Publish(ctx, []byte(fmt.Sprintf("%d", o.ID)), payload); err != nil {
		uc.logger.Warn("failed to publish order.created event", zap.Int64("order_id", o.ID), zap.Error(err))
	}
}
