package order

import (
	"context"

	"github.com/stockroom/inventory-service/internal/model"
	"github.com/stockroom/inventory-service/internal/order/dto"
)

type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error)
	GetOrder(ctx context.Context, id int64) ([]model.OrderDetailRow, error)
	ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, error)
}

// EventPublisher receives a best-effort order.created event after commit.
type EventPublisher interface {
	Publish(ctx context.Context, key, value []byte) error
}
