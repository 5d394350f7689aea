package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of the session cart. Name, price and image are
// snapshotted by the server at add time so the cart renders without a
// catalog lookup.
type CartItem struct {
	CartID    int64
	ProductID int64
	Name      string
	ImageURL  string
	Quantity  int
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Count sums quantities across the cart.
func Count(items []CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// Total is sum(price * quantity). Always recomputed, never cached.
func Total(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
