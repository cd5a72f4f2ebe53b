package services

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/shopspring/decimal"
)

// fakeClient implements client.Client and records the arguments of the
// calls the service tests care about.
type fakeClient struct {
	LoginRet      *client.LoginResult
	LoginErr      error
	SignUpErr     error
	CheckEmailRet bool

	CreateOrderRet *models.Order
	CreateOrderErr error
	OrdersRet      []models.Order

	calls []string

	LastLoginUser    string
	LastLoginPass    string
	LastSignUp       models.SignUpRequest
	LastOrder        models.Order
	LastID           string
	LastActive       bool
	LastStatus       models.OrderStatus
	LastProduct      models.Product
	LastListPage     int
	LastListLimit    int
	LastListCategory string
}

func (f *fakeClient) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeClient) Login(_ context.Context, username, password string) (*client.LoginResult, error) {
	f.record("Login")
	f.LastLoginUser, f.LastLoginPass = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) SignUp(_ context.Context, req models.SignUpRequest) error {
	f.record("SignUp")
	f.LastSignUp = req
	return f.SignUpErr
}

func (f *fakeClient) CheckEmail(context.Context, string) (bool, error) {
	f.record("CheckEmail")
	return f.CheckEmailRet, nil
}

func (f *fakeClient) GetCart(context.Context) (models.CartSnapshot, error) {
	f.record("GetCart")
	return models.CartSnapshot{}, nil
}

func (f *fakeClient) AddToCart(context.Context, models.AddToCartRequest) error {
	f.record("AddToCart")
	return nil
}

func (f *fakeClient) UpdateCartItem(context.Context, string, int) error {
	f.record("UpdateCartItem")
	return nil
}

func (f *fakeClient) RemoveCartItem(context.Context, string) error {
	f.record("RemoveCartItem")
	return nil
}

func (f *fakeClient) ClearCart(context.Context) error {
	f.record("ClearCart")
	return nil
}

func (f *fakeClient) ListProducts(_ context.Context, category string, page, limit int) (*models.ProductPage, error) {
	f.record("ListProducts")
	f.LastListCategory, f.LastListPage, f.LastListLimit = category, page, limit
	return &models.ProductPage{}, nil
}

func (f *fakeClient) CreateOrder(_ context.Context, o models.Order) (*models.Order, error) {
	f.record("CreateOrder")
	f.LastOrder = o
	return f.CreateOrderRet, f.CreateOrderErr
}

func (f *fakeClient) ListOrders(context.Context) ([]models.Order, error) {
	f.record("ListOrders")
	return f.OrdersRet, nil
}

func (f *fakeClient) GetOrder(_ context.Context, id string) (*models.Order, error) {
	f.record("GetOrder")
	f.LastID = id
	return &models.Order{ID: id}, nil
}

func (f *fakeClient) CancelOrder(_ context.Context, id string) error {
	f.record("CancelOrder")
	f.LastID = id
	return nil
}

func (f *fakeClient) ListAccounts(context.Context) ([]models.Account, error) {
	f.record("ListAccounts")
	return nil, nil
}

func (f *fakeClient) SetAccountActive(_ context.Context, id string, active bool) error {
	f.record("SetAccountActive")
	f.LastID, f.LastActive = id, active
	return nil
}

func (f *fakeClient) DeleteAccount(_ context.Context, id string) error {
	f.record("DeleteAccount")
	f.LastID = id
	return nil
}

func (f *fakeClient) ListAllOrders(context.Context) ([]models.Order, error) {
	f.record("ListAllOrders")
	return f.OrdersRet, nil
}

func (f *fakeClient) SetOrderStatus(_ context.Context, id string, status models.OrderStatus) error {
	f.record("SetOrderStatus")
	f.LastID, f.LastStatus = id, status
	return nil
}

func (f *fakeClient) ListAllProducts(context.Context) ([]models.Product, error) {
	f.record("ListAllProducts")
	return nil, nil
}

func (f *fakeClient) CreateProduct(_ context.Context, p models.Product) error {
	f.record("CreateProduct")
	f.LastProduct = p
	return nil
}

func (f *fakeClient) UpdateProduct(_ context.Context, id string, p models.Product) error {
	f.record("UpdateProduct")
	f.LastID, f.LastProduct = id, p
	return nil
}

func (f *fakeClient) DeleteProduct(_ context.Context, id string) error {
	f.record("DeleteProduct")
	f.LastID = id
	return nil
}

var _ client.Client = (*fakeClient)(nil)

type fakeSession struct {
	identity  *models.Identity
	loginErr  error
	lastToken string
	logouts   int
}

func (f *fakeSession) Login(_ context.Context, identity models.Identity, token string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.identity, f.lastToken = &identity, token
	return nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.logouts++
	f.identity = nil
	return nil
}

func (f *fakeSession) Identity() (models.Identity, bool) {
	if f.identity == nil {
		return models.Identity{}, false
	}
	return *f.identity, true
}

type fakeCart struct {
	snap     models.CartSnapshot
	clearErr error
	clears   int
}

func (f *fakeCart) Snapshot() models.CartSnapshot { return f.snap.Clone() }

func (f *fakeCart) TotalPrice() (decimal.Decimal, error) { return f.snap.TotalPrice() }

func (f *fakeCart) ClearCart(context.Context) error {
	f.clears++
	f.snap = models.CartSnapshot{}
	return f.clearErr
}
