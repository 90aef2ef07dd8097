package order

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stockroom/inventory-service/internal/model"
	"github.com/stockroom/inventory-service/internal/order/dto"
)

type Repository interface {
	// Begin opens the transaction the order protocol runs in. The returned Tx
	// must be finished with Commit or Rollback; Rollback after Commit is a
	// no-op so it can sit in a defer.
	Begin(ctx context.Context) (Tx, error)

	FindByID(ctx context.Context, id int64) ([]model.OrderDetailRow, error)
	FindAll(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, error)
}

// Tx is one order-creation transaction. All writes issued through it become
// visible atomically on Commit or not at all.
type Tx interface {
	// LockProducts takes row locks on every listed active product, in
	// ascending id order, and returns the locked price/quantity snapshots
	// keyed by product id. Absent ids are simply missing from the map.
	LockProducts(ctx context.Context, ids []int64) (map[int64]model.LockedProduct, error)

	// InsertOrder creates the order header with a provisional zero total and
	// returns its generated id.
	InsertOrder(ctx context.Context) (int64, error)

	InsertItems(ctx context.Context, items []model.OrderItem) error

	// DecrementStock reduces a product's quantity, guarded so it can never go
	// negative even if validation raced with anything outside the lock set.
	DecrementStock(ctx context.Context, productID, quantity int64) error

	SetTotal(ctx context.Context, orderID int64, total decimal.Decimal) error

	Commit() error
	Rollback() error
}
