package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// AdminService exposes back-office operations. Every call is refused locally
// unless the signed-in identity is an administrator; the server checks again.
type AdminService interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	SetAccountActive(ctx context.Context, id string, active bool) error
	DeleteAccount(ctx context.Context, id string) error

	ListOrders(ctx context.Context) ([]models.Order, error)
	SetOrderStatus(ctx context.Context, id, status string) error

	ListProducts(ctx context.Context) ([]models.Product, error)
	SaveProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// IdentitySource reports who is signed in.
type IdentitySource interface {
	Identity() (models.Identity, bool)
}

type adminService struct {
	client client.Client
	who    IdentitySource
}

func NewAdminService(c client.Client, who IdentitySource) AdminService {
	return &adminService{client: c, who: who}
}

func (s *adminService) authorize() error {
	id, ok := s.who.Identity()
	if !ok {
		return common.ErrNotAuthenticated
	}
	if !id.IsAdmin() {
		return common.ErrForbidden
	}
	return nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", common.ErrValidation)
	}
	return nil
}

func (s *adminService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}
	return s.client.ListAccounts(ctx)
}

func (s *adminService) SetAccountActive(ctx context.Context, id string, active bool) error {
	if err := s.authorize(); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return s.client.SetAccountActive(ctx, id, active)
}

func (s *adminService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.authorize(); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return s.client.DeleteAccount(ctx, id)
}

func (s *adminService) ListOrders(ctx context.Context) ([]models.Order, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}
	return s.client.ListAllOrders(ctx)
}

func (s *adminService) SetOrderStatus(ctx context.Context, id, status string) error {
	if err := s.authorize(); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	st, err := models.ParseOrderStatus(status)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return s.client.SetOrderStatus(ctx, id, st)
}

func (s *adminService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}
	return s.client.ListAllProducts(ctx)
}

// SaveProduct creates p when it has no ID and updates it otherwise.
func (s *adminService) SaveProduct(ctx context.Context, p models.Product) error {
	if err := s.authorize(); err != nil {
		return err
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", common.ErrValidation)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", common.ErrValidation)
	}
	if p.ID == "" {
		return s.client.CreateProduct(ctx, p)
	}
	return s.client.UpdateProduct(ctx, p.ID, p)
}

func (s *adminService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.authorize(); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return s.client.DeleteProduct(ctx, id)
}
