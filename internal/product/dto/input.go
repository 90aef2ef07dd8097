package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Name     string
	SKU      string
	Price    decimal.Decimal
	Quantity int64
}

type UpdateProductInput struct {
	ID       int64
	Name     string
	SKU      string
	Price    decimal.Decimal
	Quantity int64
}
