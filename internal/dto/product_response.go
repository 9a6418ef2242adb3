package dto

import "github.com/minimarket/marketplace-service/internal/domain"

type FeedResponse struct {
	Products   []domain.Product
	Categories []string
}
