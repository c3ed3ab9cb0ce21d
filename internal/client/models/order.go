package models

import "time"

// Product is a catalog entry as returned by the backend.
type Product struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	SellerName string  `json:"sellerName,omitempty"`
}

// Order is a buyer's order as returned by the backend.
type Order struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Product   string    `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
