package product

import "errors"

// ErrNotFound reports an update or delete against a product id with no row.
var ErrNotFound = errors.New("product not found")
