package service

import (
	"context"
	"time"

	"github.com/minimarket/marketplace-service/internal/domain"
	"github.com/minimarket/marketplace-service/internal/dto"
	"github.com/minimarket/marketplace-service/internal/repository"
	"github.com/minimarket/marketplace-service/pkg/errs"
	"github.com/minimarket/marketplace-service/pkg/utils"
)

type CartServiceImpl struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

func CreateCartService(repo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &CartServiceImpl{repo: repo, productRepo: productRepo}
}

// AddToCart merges by incrementing: a second add of the same product bumps
// the quantity of the existing row instead of creating a duplicate.
func (s *CartServiceImpl) AddToCart(ctx context.Context, userID, productID int64) (err error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	if product.ID == 0 {
		return errs.ErrNotFound
	}

	item, err := s.repo.GetCartItemByUserAndProduct(ctx, userID, product.ID)
	if err != nil {
		return
	}

	if item.ID != 0 {
		return s.repo.UpdateCartItemQuantity(ctx, item.ID, item.Quantity+1)
	}

	_, err = s.repo.AddCartItem(ctx, domain.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  1,
	})

	return
}

func (s *CartServiceImpl) RemoveFromCart(ctx context.Context, userID, itemID int64) (err error) {
	item, err := s.repo.GetCartItemByID(ctx, itemID)
	if err != nil {
		return
	}

	if item.ID == 0 {
		return errs.ErrNotFound
	}

	if err = requireOwner(userID, item.UserID); err != nil {
		return
	}

	return s.repo.DeleteCartItem(ctx, item.ID)
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID int64) (resp dto.CartResponse, err error) {
	items, err := s.repo.GetCartDetails(ctx, userID)
	if err != nil {
		return
	}

	return dto.BuildCartResponse(items), nil
}

// Checkout converts every cart item into one purchase row per unit, each
// stamped with the product's price at this moment, then clears the cart.
// Everything runs in a single transaction: a failure anywhere leaves both
// cart and purchase history untouched.
func (s *CartServiceImpl) Checkout(ctx context.Context, userID int64) (err error) {
	return s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.CartRepository) error {
		items, err := repo.GetCartDetails(ctx, userID)
		if err != nil {
			return err
		}

		if len(items) == 0 {
			return errs.ErrEmptyCart
		}

		timestamp := time.Now().UnixMilli()

		var purchases []domain.Purchase
		for _, item := range items {
			for i := 0; i < item.Quantity; i++ {
				purchases = append(purchases, domain.Purchase{
					UserID:          userID,
					ProductID:       item.ProductID,
					PriceAtPurchase: item.ProductPrice,
					PurchasedAt:     timestamp,
				})
			}
		}

		if err := repo.AddPurchases(ctx, purchases); err != nil {
			return err
		}

		for _, item := range items {
			if err := repo.DeleteCartItem(ctx, item.ID); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *CartServiceImpl) GetPurchases(ctx context.Context, userID int64) (purchases []dto.PurchaseResponse, err error) {
	records, err := s.repo.GetPurchases(ctx, userID)
	if err != nil {
		return
	}

	for _, record := range records {
		purchases = append(purchases, dto.PurchaseResponse{
			ID:              record.ID,
			ProductID:       record.ProductID,
			Title:           record.Title,
			ImageURL:        record.ImageURL,
			PriceAtPurchase: record.PriceAtPurchase,
			PurchasedAt:     utils.FormatTimestamp(record.PurchasedAt),
		})
	}

	return purchases, nil
}
