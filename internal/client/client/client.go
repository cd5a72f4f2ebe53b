package client

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Authenticator supplies the bearer token for authenticated calls and is told
// when the server rejects it.
type Authenticator interface {
	Token() (string, error)
	Rejected(ctx context.Context)
}

// LoginResult is the body of a successful POST /accounts/login.
type LoginResult struct {
	Token string          `json:"token"`
	User  models.Identity `json:"user"`
}

type Client interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	SignUp(ctx context.Context, req models.SignUpRequest) error
	CheckEmail(ctx context.Context, email string) (bool, error)

	GetCart(ctx context.Context) (models.CartSnapshot, error)
	AddToCart(ctx context.Context, req models.AddToCartRequest) error
	UpdateCartItem(ctx context.Context, lineID string, quantity int) error
	RemoveCartItem(ctx context.Context, lineID string) error
	ClearCart(ctx context.Context) error

	ListProducts(ctx context.Context, category string, page, limit int) (*models.ProductPage, error)

	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CancelOrder(ctx context.Context, id string) error

	ListAccounts(ctx context.Context) ([]models.Account, error)
	SetAccountActive(ctx context.Context, id string, active bool) error
	DeleteAccount(ctx context.Context, id string) error
	ListAllOrders(ctx context.Context) ([]models.Order, error)
	SetOrderStatus(ctx context.Context, id string, status models.OrderStatus) error
	ListAllProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) error
	UpdateProduct(ctx context.Context, id string, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}
