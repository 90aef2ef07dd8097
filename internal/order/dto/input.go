package dto

type BasketItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type CreateOrderInput struct {
	Products []BasketItem
}
