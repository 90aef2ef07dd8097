package dto

type ProductFilters struct {
	Search string // substring match on name or sku
	Page   int
	Limit  int
}
