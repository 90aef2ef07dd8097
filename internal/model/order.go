package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         int64           `db:"id" json:"id"`
	TotalPrice decimal.Decimal `db:"total_price" json:"totalPrice"`
	OrderDate  time.Time       `db:"order_date" json:"orderDate"`
}

type OrderItem struct {
	OrderID   int64           `db:"order_id" json:"orderId"`
	ProductID int64           `db:"product_id" json:"productId"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	// Price is the product price captured under lock at order time. It never
	// tracks later price changes.
	Price decimal.Decimal `db:"price" json:"price"`
}

// OrderDetailRow is one row of the order header joined with its items.
type OrderDetailRow struct {
	OrderID    int64           `db:"order_id" json:"orderId"`
	TotalPrice decimal.Decimal `db:"total_price" json:"totalPrice"`
	OrderDate  time.Time       `db:"order_date" json:"orderDate"`
	ProductID  int64           `db:"product_id" json:"productId"`
	Quantity   int64           `db:"quantity" json:"quantity"`
	Price      decimal.Decimal `db:"price" json:"price"`
}

// LockedProduct is the snapshot read under FOR UPDATE during order creation.
type LockedProduct struct {
	ID       int64           `db:"id"`
	Price    decimal.Decimal `db:"price"`
	Quantity int64           `db:"quantity"`
}
