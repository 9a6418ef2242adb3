package domain

import "github.com/shopspring/decimal"

const (
	DefaultCategory        = "General"
	DefaultProductImageURL = "https://placehold.co/600x400?text=Product+Image"
)

// SuggestedCategories feeds the category picker on the listing form.
var SuggestedCategories = []string{"Electronics", "Books", "Fashion", "Home", "Toys", "General"}

type Product struct {
	ID          int64           `db:"id"`
	ExternalID  string          `db:"external_id"`
	Title       string          `db:"title"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	ImageURL    string          `db:"image_url"`
	OwnerID     int64           `db:"owner_id"`
	CreatedAt   int64           `db:"created_at"`
	UpdatedAt   int64           `db:"updated_at"`
}
