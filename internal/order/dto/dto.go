package dto

type OrderFilters struct {
	Page  int
	Limit int
}
