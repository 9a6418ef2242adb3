package repository

import (
	"context"

	"github.com/minimarket/marketplace-service/internal/domain"
	"github.com/minimarket/marketplace-service/internal/dto"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	GetUserByID(ctx context.Context, id int64) (data domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
}

type ProductRepository interface {
	GetProducts(ctx context.Context, filter dto.FeedFilter) (data []domain.Product, err error)
	GetCategories(ctx context.Context) (data []string, err error)
	GetProductByID(ctx context.Context, id int64) (data domain.Product, err error)
	GetProductsByOwner(ctx context.Context, ownerID int64) (data []domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (id int64, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
}

// CartRepository covers cart rows and the purchase rows checkout converts
// them into, so both sides of the conversion share one transaction.
type CartRepository interface {
	GetCartItemByID(ctx context.Context, id int64) (data domain.CartItem, err error)
	GetCartItemByUserAndProduct(ctx context.Context, userID, productID int64) (data domain.CartItem, err error)
	AddCartItem(ctx context.Context, data domain.CartItem) (id int64, err error)
	UpdateCartItemQuantity(ctx context.Context, id int64, quantity int) (err error)
	DeleteCartItem(ctx context.Context, id int64) (err error)
	GetCartDetails(ctx context.Context, userID int64) (data []domain.CartItemDetail, err error)
	AddPurchases(ctx context.Context, data []domain.Purchase) (err error)
	GetPurchases(ctx context.Context, userID int64) (data []domain.PurchaseDetail, err error)
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo CartRepository) error) error
}
