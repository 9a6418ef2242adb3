package domain

import "github.com/shopspring/decimal"

// Purchase is an immutable record: one row per purchased unit, price frozen
// at checkout time. There are no update or delete paths.
type Purchase struct {
	ID              int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	ProductID       int64           `db:"product_id"`
	PriceAtPurchase decimal.Decimal `db:"price_at_purchase"`
	PurchasedAt     int64           `db:"purchased_at"`
}

type PurchaseDetail struct {
	Purchase
	Title    string `db:"title"`
	ImageURL string `db:"image_url"`
}
