package service

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/minimarket/marketplace-service/internal/domain"
	"github.com/minimarket/marketplace-service/internal/dto"
	"github.com/minimarket/marketplace-service/internal/repository"
	"github.com/minimarket/marketplace-service/pkg/errs"
)

type CatalogServiceImpl struct {
	repo repository.ProductRepository
}

func CreateCatalogService(repo repository.ProductRepository) CatalogService {
	return &CatalogServiceImpl{repo: repo}
}

// requireOwner is the single ownership predicate applied before every
// mutation of an owned resource.
func requireOwner(actorID, ownerID int64) error {
	if actorID != ownerID {
		return errs.ErrForbidden
	}
	return nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || price.IsNegative() {
		return decimal.Zero, errs.ErrInvalidPrice
	}
	return price, nil
}

func (s *CatalogServiceImpl) GetFeed(ctx context.Context, filter dto.FeedFilter) (resp dto.FeedResponse, err error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Category = strings.TrimSpace(filter.Category)

	resp.Products, err = s.repo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	resp.Categories, err = s.repo.GetCategories(ctx)

	return
}

func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id int64) (product domain.Product, err error) {
	product, err = s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if product.ID == 0 {
		return product, errs.ErrNotFound
	}

	return product, nil
}

func (s *CatalogServiceImpl) AddProduct(ctx context.Context, ownerID int64, payload dto.ProductRequest) (product domain.Product, err error) {
	price, err := parsePrice(payload.Price)
	if err != nil {
		return
	}

	category := strings.TrimSpace(payload.Category)
	if category == "" {
		category = domain.DefaultCategory
	}

	imageURL := strings.TrimSpace(payload.ImageURL)
	if imageURL == "" {
		imageURL = domain.DefaultProductImageURL
	}

	product = domain.Product{
		ExternalID:  ulid.Make().String(),
		Title:       strings.TrimSpace(payload.Title),
		Category:    category,
		Description: strings.TrimSpace(payload.Description),
		Price:       price,
		ImageURL:    imageURL,
		OwnerID:     ownerID,
	}

	product.ID, err = s.repo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	return product, nil
}

func (s *CatalogServiceImpl) GetOwnedProducts(ctx context.Context, ownerID int64) (products []domain.Product, err error) {
	return s.repo.GetProductsByOwner(ctx, ownerID)
}

// UpdateProduct applies field-level updates; a blank image URL keeps the
// existing one.
func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, ownerID, id int64, payload dto.ProductRequest) (err error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return
	}

	if err = requireOwner(ownerID, product.OwnerID); err != nil {
		return
	}

	price, err := parsePrice(payload.Price)
	if err != nil {
		return
	}

	product.Title = strings.TrimSpace(payload.Title)
	product.Category = strings.TrimSpace(payload.Category)
	product.Description = strings.TrimSpace(payload.Description)
	product.Price = price

	if imageURL := strings.TrimSpace(payload.ImageURL); imageURL != "" {
		product.ImageURL = imageURL
	}

	return s.repo.UpdateProduct(ctx, product)
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, ownerID, id int64) (err error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return
	}

	if err = requireOwner(ownerID, product.OwnerID); err != nil {
		return
	}

	return s.repo.DeleteProduct(ctx, product.ID)
}
