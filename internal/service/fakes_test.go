package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/minimarket/marketplace-service/internal/domain"
	"github.com/minimarket/marketplace-service/internal/dto"
	"github.com/minimarket/marketplace-service/internal/repository"
)

type fakeUserRepository struct {
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[int64]domain.User{}}
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	r.users[data.ID] = data
	return data.ID, nil
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, data domain.User) error {
	r.users[data.ID] = data
	return nil
}

type fakeProductRepository struct {
	products map[int64]domain.Product
	nextID   int64
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: map[int64]domain.Product{}}
}

func (r *fakeProductRepository) sorted(match func(domain.Product) bool) []domain.Product {
	var data []domain.Product
	for _, product := range r.products {
		if match(product) {
			data = append(data, product)
		}
	}
	sort.Slice(data, func(i, j int) bool { return data[i].CreatedAt > data[j].CreatedAt })
	return data
}

func (r *fakeProductRepository) GetProducts(ctx context.Context, filter dto.FeedFilter) ([]domain.Product, error) {
	return r.sorted(func(p domain.Product) bool {
		if filter.Query != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Query)) {
			return false
		}
		if filter.Category != "" && p.Category != filter.Category {
			return false
		}
		return true
	}), nil
}

func (r *fakeProductRepository) GetCategories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var data []string
	for _, product := range r.products {
		if !seen[product.Category] {
			seen[product.Category] = true
			data = append(data, product.Category)
		}
	}
	sort.Strings(data)
	return data, nil
}

func (r *fakeProductRepository) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepository) GetProductsByOwner(ctx context.Context, ownerID int64) ([]domain.Product, error) {
	return r.sorted(func(p domain.Product) bool { return p.OwnerID == ownerID }), nil
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	data.CreatedAt = r.nextID
	r.products[data.ID] = data
	return data.ID, nil
}

func (r *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	existing := r.products[data.ID]
	data.CreatedAt = existing.CreatedAt
	data.OwnerID = existing.OwnerID
	r.products[data.ID] = data
	return nil
}

func (r *fakeProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

type fakeCartRepository struct {
	items            map[int64]domain.CartItem
	purchases        []domain.Purchase
	products         *fakeProductRepository
	nextID           int64
	failAddPurchases bool
}

func newFakeCartRepository(products *fakeProductRepository) *fakeCartRepository {
	return &fakeCartRepository{items: map[int64]domain.CartItem{}, products: products}
}

func (r *fakeCartRepository) GetCartItemByID(ctx context.Context, id int64) (domain.CartItem, error) {
	return r.items[id], nil
}

func (r *fakeCartRepository) GetCartItemByUserAndProduct(ctx context.Context, userID, productID int64) (domain.CartItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return domain.CartItem{}, nil
}

func (r *fakeCartRepository) AddCartItem(ctx context.Context, data domain.CartItem) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	data.CreatedAt = r.nextID
	r.items[data.ID] = data
	return data.ID, nil
}

func (r *fakeCartRepository) UpdateCartItemQuantity(ctx context.Context, id int64, quantity int) error {
	item := r.items[id]
	item.Quantity = quantity
	r.items[id] = item
	return nil
}

func (r *fakeCartRepository) DeleteCartItem(ctx context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCartRepository) GetCartDetails(ctx context.Context, userID int64) ([]domain.CartItemDetail, error) {
	var data []domain.CartItemDetail
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		product := r.products.products[item.ProductID]
		data = append(data, domain.CartItemDetail{
			CartItem:     item,
			Title:        product.Title,
			ImageURL:     product.ImageURL,
			ProductPrice: product.Price,
		})
	}
	sort.Slice(data, func(i, j int) bool { return data[i].CreatedAt < data[j].CreatedAt })
	return data, nil
}

func (r *fakeCartRepository) AddPurchases(ctx context.Context, data []domain.Purchase) error {
	if r.failAddPurchases {
		return errors.New("insert failed")
	}
	r.purchases = append(r.purchases, data...)
	return nil
}

func (r *fakeCartRepository) GetPurchases(ctx context.Context, userID int64) ([]domain.PurchaseDetail, error) {
	var data []domain.PurchaseDetail
	for _, purchase := range r.purchases {
		if purchase.UserID != userID {
			continue
		}
		product := r.products.products[purchase.ProductID]
		data = append(data, domain.PurchaseDetail{
			Purchase: purchase,
			Title:    product.Title,
			ImageURL: product.ImageURL,
		})
	}
	sort.Slice(data, func(i, j int) bool { return data[i].PurchasedAt > data[j].PurchasedAt })
	return data, nil
}

// HandleTrx mimics transactional rollback: mutations made by fn are undone
// when it returns an error.
func (r *fakeCartRepository) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.CartRepository) error) error {
	itemsSnapshot := make(map[int64]domain.CartItem, len(r.items))
	for id, item := range r.items {
		itemsSnapshot[id] = item
	}
	purchasesSnapshot := append([]domain.Purchase(nil), r.purchases...)

	if err := fn(ctx, r); err != nil {
		r.items = itemsSnapshot
		r.purchases = purchasesSnapshot
		return err
	}

	return nil
}
