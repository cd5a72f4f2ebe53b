package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// PageSize is the number of products per catalog page.
const PageSize = 4

type CatalogService interface {
	ListProducts(ctx context.Context, category string, page int) (*models.ProductPage, error)
}

type catalogService struct {
	client client.Client
}

func NewCatalogService(c client.Client) CatalogService {
	return &catalogService{client: c}
}

// ListProducts returns one page of a category; pages start at 1.
func (s *catalogService) ListProducts(ctx context.Context, category string, page int) (*models.ProductPage, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", common.ErrValidation)
	}
	if page < 1 {
		page = 1
	}
	return s.client.ListProducts(ctx, category, page, PageSize)
}
