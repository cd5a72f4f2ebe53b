package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// signUpTimeout bounds account creation independently of the client-wide
// request timeout.
const signUpTimeout = 10 * time.Second

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/accounts/login",
		body:   map[string]string{"username": username, "password": password},
		out:    &res,
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, req models.SignUpRequest) error {
	return c.do(ctx, call{
		method:  http.MethodPost,
		path:    "/accounts/",
		body:    req,
		timeout: signUpTimeout,
	})
}

func (c *HTTPClient) CheckEmail(ctx context.Context, email string) (bool, error) {
	var res struct {
		Exists bool `json:"exists"`
	}
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/accounts/check-email",
		body:   map[string]string{"email": email},
		out:    &res,
	})
	return res.Exists, err
}

func (c *HTTPClient) GetCart(ctx context.Context) (models.CartSnapshot, error) {
	var snap models.CartSnapshot
	if err := c.do(ctx, call{method: http.MethodGet, path: "/cart", out: &snap, authed: true}); err != nil {
		return models.CartSnapshot{}, err
	}
	return snap, nil
}

func (c *HTTPClient) AddToCart(ctx context.Context, req models.AddToCartRequest) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/cart/add", body: req, authed: true})
}

func (c *HTTPClient) UpdateCartItem(ctx context.Context, lineID string, quantity int) error {
	return c.do(ctx, call{
		method: http.MethodPut,
		path:   "/cart/update/" + url.PathEscape(lineID),
		body:   map[string]int{"quantity": quantity},
		authed: true,
	})
}

func (c *HTTPClient) RemoveCartItem(ctx context.Context, lineID string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: "/cart/remove/" + url.PathEscape(lineID), authed: true})
}

func (c *HTTPClient) ClearCart(ctx context.Context) error {
	return c.do(ctx, call{method: http.MethodDelete, path: "/cart/clear", authed: true})
}

// ListProducts fetches one page of a category. Dashes in category are the
// URL form of spaces.
func (c *HTTPClient) ListProducts(ctx context.Context, category string, page, limit int) (*models.ProductPage, error) {
	var res models.ProductPage
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/products/" + url.PathEscape(strings.ReplaceAll(category, "-", " ")),
		query:  url.Values{"page": {strconv.Itoa(page)}, "limit": {strconv.Itoa(limit)}},
		out:    &res,
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	var raw json.RawMessage
	if err := c.do(ctx, call{method: http.MethodPost, path: "/orders", body: order, out: &raw, authed: true}); err != nil {
		return nil, err
	}
	return decodeCreatedOrder(raw)
}

// decodeCreatedOrder accepts both {"order": {...}} and a bare order.
func decodeCreatedOrder(raw json.RawMessage) (*models.Order, error) {
	if len(raw) == 0 {
		return &models.Order{}, nil
	}
	var wrapped struct {
		Order *models.Order `json:"order"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	if wrapped.Order != nil {
		return wrapped.Order, nil
	}
	var o models.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &o, nil
}

func (c *HTTPClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	var res []models.Order
	if err := c.do(ctx, call{method: http.MethodGet, path: "/orders", out: &res, authed: true}); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var res models.Order
	if err := c.do(ctx, call{method: http.MethodGet, path: "/orders/" + url.PathEscape(id), out: &res, authed: true}); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) CancelOrder(ctx context.Context, id string) error {
	return c.do(ctx, call{method: http.MethodPut, path: "/orders/" + url.PathEscape(id) + "/cancel", authed: true})
}

func (c *HTTPClient) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var res []models.Account
	if err := c.do(ctx, call{method: http.MethodGet, path: "/accounts", out: &res, authed: true}); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) SetAccountActive(ctx context.Context, id string, active bool) error {
	return c.do(ctx, call{
		method: http.MethodPatch,
		path:   "/accounts/" + url.PathEscape(id) + "/status",
		body:   map[string]bool{"active": active},
		authed: true,
	})
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: "/accounts/" + url.PathEscape(id), authed: true})
}

func (c *HTTPClient) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	var res []models.Order
	if err := c.do(ctx, call{method: http.MethodGet, path: "/orders/admin", out: &res, authed: true}); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) SetOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return c.do(ctx, call{
		method: http.MethodPatch,
		path:   "/orders/" + url.PathEscape(id) + "/status",
		body:   map[string]models.OrderStatus{"status": status},
		authed: true,
	})
}

func (c *HTTPClient) ListAllProducts(ctx context.Context) ([]models.Product, error) {
	var res []models.Product
	if err := c.do(ctx, call{method: http.MethodGet, path: "/products", out: &res, authed: true}); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, p models.Product) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/products", body: p, authed: true})
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id string, p models.Product) error {
	return c.do(ctx, call{method: http.MethodPut, path: "/products/" + url.PathEscape(id), body: p, authed: true})
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: "/products/" + url.PathEscape(id), authed: true})
}

var _ Client = (*HTTPClient)(nil)
