package entity

import "time"

// OrderItem is a value embedded in an Order; it has no identity of its own.
type OrderItem struct {
	SKU string `json:"sku"`
	Qty int    `json:"qty"`
}

// Order references a user that existed when the order was admitted.
// There is no foreign key back to the directory: the check is point-in-time,
// the user may be removed later and the order keeps referencing it.
type Order struct {
	ID        string
	UserID    string
	Items     []OrderItem
	Total     float64
	CreatedAt time.Time
}
