package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stockroom/inventory-service/internal/model"
	"github.com/stockroom/inventory-service/internal/order"
	"github.com/stockroom/inventory-service/internal/order/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Begin(ctx context.Context) (order.Tx, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &pgTx{tx: tx}, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) ([]model.OrderDetailRow, error) {
	rows := []model.OrderDetailRow{}
	query := `
        SELECT o.id AS order_id, o.total_price, o.order_date,
               oi.product_id, oi.quantity, oi.price
        FROM orders o
        JOIN order_items oi ON o.id = oi.order_id
        WHERE o.id = $1
        ORDER BY oi.product_id
    `
	err := r.DB.SelectContext(ctx, &rows, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order details: %w", err)
	}
	return rows, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.OrderFilters) ([]model.Order, error) {
	orders := []model.Order{}
	offset := (f.Page - 1) * f.Limit
	query := `SELECT * FROM orders ORDER BY id LIMIT $1 OFFSET $2`
	err := r.DB.SelectContext(ctx, &orders, query, f.Limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

type pgTx struct {
	tx *sqlx.Tx
}

func (t *pgTx) LockProducts(ctx context.Context, ids []int64) (map[int64]model.LockedProduct, error) {
	// ORDER BY id fixes the lock acquisition order so two orders sharing
	// products cannot deadlock each other. Inactive products are excluded,
	// so ordering a soft-deleted product surfaces as not found.
	query, args, err := sqlx.In(`
        SELECT id, price, quantity FROM products
        WHERE id IN (?) AND is_active = TRUE
        ORDER BY id
        FOR UPDATE
    `, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build lock query: %w", err)
	}
	query = t.tx.Rebind(query)

	locked := []model.LockedProduct{}
	if err := t.tx.SelectContext(ctx, &locked, query, args...); err != nil {
		return nil, fmt.Errorf("failed to lock product rows: %w", err)
	}

	snapshot := make(map[int64]model.LockedProduct, len(locked))
	for _, p := range locked {
		snapshot[p.ID] = p
	}
	return snapshot, nil
}

func (t *pgTx) InsertOrder(ctx context.Context) (int64, error) {
	var id int64
	err := t.tx.GetContext(ctx, &id, `INSERT INTO orders (total_price) VALUES (0) RETURNING id`)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}
	return id, nil
}

func (t *pgTx) InsertItems(ctx context.Context, items []model.OrderItem) error {
	query := `
        INSERT INTO order_items (order_id, product_id, quantity, price)
        VALUES (:order_id, :product_id, :quantity, :price)
    `
	if _, err := t.tx.NamedExecContext(ctx, query, items); err != nil {
		return fmt.Errorf("failed to add order items: %w", err)
	}
	return nil
}

func (t *pgTx) DecrementStock(ctx context.Context, productID, quantity int64) error {
	res, err := t.tx.ExecContext(ctx, `
        UPDATE products
        SET quantity = quantity - $1, updated_at = NOW()
        WHERE id = $2 AND quantity >= $1
    `, quantity, productID)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &order.InsufficientStockError{ProductID: productID}
	}
	return nil
}

func (t *pgTx) SetTotal(ctx context.Context, orderID int64, total decimal.Decimal) error {
	if _, err := t.tx.ExecContext(ctx, `UPDATE orders SET total_price = $1 WHERE id = $2`, total, orderID); err != nil {
		return fmt.Errorf("failed to update order total: %w", err)
	}
	return nil
}

func (t *pgTx) Commit() error {
	return t.tx.Commit()
}

func (t *pgTx) Rollback() error {
	return t.tx.Rollback()
}
