package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/minimarket/marketplace-service/internal/dto"
	"github.com/minimarket/marketplace-service/internal/repository"
	"github.com/minimarket/marketplace-service/internal/service"
	"github.com/minimarket/marketplace-service/pkg/errs"
)

// seedDemoData creates the demo account with two sample listings. Running it
// against an already-seeded database is a no-op.
func seedDemoData(db *sqlx.DB) error {
	ctx := context.Background()

	userSvc := service.CreateUserService(repository.CreateUserRepository(db))
	catalogSvc := service.CreateCatalogService(repository.CreateProductRepository(db))

	user, err := userSvc.Register(ctx, dto.RegisterRequest{
		Email:    "demo@example.com",
		Password: "password",
	})
	if err == errs.ErrEmailAlreadyUsed {
		log.Info().Str("component", "seedDemoData").Msg("demo account already exists")
		return nil
	}
	if err != nil {
		return err
	}

	samples := []dto.ProductRequest{
		{Title: "Vintage Camera", Category: "Electronics", Description: "A classic film camera.", Price: "149.99"},
		{Title: "Cozy Sweater", Category: "Fashion", Description: "Warm and comfy.", Price: "39.99"},
	}

	for _, sample := range samples {
		if _, err := catalogSvc.AddProduct(ctx, user.ID, sample); err != nil {
			return err
		}
	}

	log.Info().Str("component", "seedDemoData").Msg("demo data created")
	return nil
}
