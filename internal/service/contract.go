package service

import (
	"context"

	"github.com/minimarket/marketplace-service/internal/domain"
	"github.com/minimarket/marketplace-service/internal/dto"
)

type UserService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (user domain.User, err error)
	Login(ctx context.Context, payload dto.LoginRequest) (user domain.User, err error)
	GetByID(ctx context.Context, id int64) (user domain.User, err error)
	UpdateProfile(ctx context.Context, userID int64, payload dto.ProfileRequest) (err error)
}

type CatalogService interface {
	GetFeed(ctx context.Context, filter dto.FeedFilter) (resp dto.FeedResponse, err error)
	GetProduct(ctx context.Context, id int64) (product domain.Product, err error)
	AddProduct(ctx context.Context, ownerID int64, payload dto.ProductRequest) (product domain.Product, err error)
	GetOwnedProducts(ctx context.Context, ownerID int64) (products []domain.Product, err error)
	UpdateProduct(ctx context.Context, ownerID, id int64, payload dto.ProductRequest) (err error)
	DeleteProduct(ctx context.Context, ownerID, id int64) (err error)
}

type CartService interface {
	AddToCart(ctx context.Context, userID, productID int64) (err error)
	RemoveFromCart(ctx context.Context, userID, itemID int64) (err error)
	GetCart(ctx context.Context, userID int64) (resp dto.CartResponse, err error)
	Checkout(ctx context.Context, userID int64) (err error)
	GetPurchases(ctx context.Context, userID int64) (purchases []dto.PurchaseResponse, err error)
}
