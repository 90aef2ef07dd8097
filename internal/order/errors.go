package order

import (
	"errors"
	"fmt"
)

// ErrEmptyBasket rejects an order with no products before any transaction
// is opened.
var ErrEmptyBasket = errors.New("products are required to create an order")

// ErrInvalidQuantity rejects a basket entry whose quantity is zero or
// negative, also before any transaction is opened.
var ErrInvalidQuantity = errors.New("order quantities must be positive")

// InsufficientStockError reports the first basket entry whose requested
// quantity exceeds the locked available stock.
type InsufficientStockError struct {
	ProductID int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product ID %d", e.ProductID)
}

// ProductNotFoundError reports a basket entry referencing a product that does
// not exist or has been soft deleted.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product ID %d not found", e.ProductID)
}
