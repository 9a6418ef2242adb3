package dto

import (
	"github.com/shopspring/decimal"

	"github.com/minimarket/marketplace-service/internal/domain"
)

type CartItemResponse struct {
	ID        int64
	ProductID int64
	Title     string
	ImageURL  string
	Price     decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

type CartResponse struct {
	Items []CartItemResponse
	Total decimal.Decimal
}

type PurchaseResponse struct {
	ID              int64
	ProductID       int64
	Title           string
	ImageURL        string
	PriceAtPurchase decimal.Decimal
	PurchasedAt     string
}

func BuildCartResponse(items []domain.CartItemDetail) CartResponse {
	resp := CartResponse{Total: decimal.Zero}
	for _, item := range items {
		lineTotal := item.ProductPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		resp.Items = append(resp.Items, CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Title:     item.Title,
			ImageURL:  item.ImageURL,
			Price:     item.ProductPrice,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		resp.Total = resp.Total.Add(lineTotal)
	}
	return resp
}
