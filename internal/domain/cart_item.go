package domain

import "github.com/shopspring/decimal"

type CartItem struct {
	ID        int64 `db:"id"`
	UserID    int64 `db:"user_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
	CreatedAt int64 `db:"created_at"`
	UpdatedAt int64 `db:"updated_at"`
}

// CartItemDetail is a cart row joined with the current state of its product.
// Price is the product's current price, not a frozen one; nothing has been
// purchased yet.
type CartItemDetail struct {
	CartItem
	Title        string          `db:"title"`
	ImageURL     string          `db:"image_url"`
	ProductPrice decimal.Decimal `db:"product_price"`
}
