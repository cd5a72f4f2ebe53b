package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/shopspring/decimal"
)

// TaxRate is applied to the cart subtotal at checkout.
var TaxRate = decimal.RequireFromString("0.08")

// DefaultSize is sent for lines that carry no size.
const DefaultSize = "One Size"

// Cart is the part of cart.Synchronizer checkout reads and clears.
type Cart interface {
	Snapshot() models.CartSnapshot
	TotalPrice() (decimal.Decimal, error)
	ClearCart(ctx context.Context) error
}

// CheckoutRequest is what the customer enters at checkout.
type CheckoutRequest struct {
	Shipping       models.Address
	Billing        models.Address
	SameAsShipping bool
	PaymentMethod  models.PaymentMethod
	Email          string
	Phone          string
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req CheckoutRequest) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CancelOrder(ctx context.Context, id string) error
}

type orderService struct {
	client client.Client
	cart   Cart
	log    logging.Logger
}

func NewOrderService(c client.Client, cart Cart, log logging.Logger) OrderService {
	if log == nil {
		log = logging.Discard()
	}
	return &orderService{client: c, cart: cart, log: log}
}

// BuildOrder turns the cart snapshot into an order with tax and total rounded
// to cents.
func BuildOrder(snap models.CartSnapshot, subtotal decimal.Decimal, req CheckoutRequest) (models.Order, error) {
	if snap.Empty() {
		return models.Order{}, fmt.Errorf("%w: cart is empty", common.ErrValidation)
	}
	switch req.PaymentMethod {
	case models.PaymentCredit, models.PaymentCOD:
	default:
		return models.Order{}, fmt.Errorf("%w: unknown payment method %q", common.ErrValidation, req.PaymentMethod)
	}
	if strings.TrimSpace(req.Email) == "" {
		return models.Order{}, fmt.Errorf("%w: email is required", common.ErrValidation)
	}

	items := make([]models.OrderItem, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		if l.Price == nil || l.Quantity == nil {
			return models.Order{}, fmt.Errorf("line %q: %w", l.ID, models.ErrIncompleteLine)
		}
		size := l.Size
		if size == "" {
			size = DefaultSize
		}
		items = append(items, models.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Size:      size,
			Quantity:  *l.Quantity,
			Price:     *l.Price,
			Image:     l.Image,
		})
	}

	billing := req.Billing
	if req.SameAsShipping {
		billing = req.Shipping
	}

	return models.Order{
		Items:           items,
		Subtotal:        subtotal,
		Tax:             subtotal.Mul(TaxRate).Round(2),
		TotalAmount:     subtotal.Mul(decimal.NewFromInt(1).Add(TaxRate)).Round(2),
		ShippingAddress: req.Shipping,
		BillingAddress:  billing,
		PaymentMethod:   req.PaymentMethod,
		Email:           req.Email,
		Phone:           req.Phone,
		Status:          models.OrderPending,
	}, nil
}

// PlaceOrder submits the current cart and empties it once the server has
// accepted the order.
func (s *orderService) PlaceOrder(ctx context.Context, req CheckoutRequest) (*models.Order, error) {
	subtotal, err := s.cart.TotalPrice()
	if err != nil {
		return nil, err
	}
	order, err := BuildOrder(s.cart.Snapshot(), subtotal, req)
	if err != nil {
		return nil, err
	}

	created, err := s.client.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	if err := s.cart.ClearCart(ctx); err != nil {
		s.log.Warn(ctx, "order placed but cart not cleared", "order", created.Ref(), "error", err)
	}
	s.log.Info(ctx, "order placed", "order", created.Ref(), "total", order.TotalAmount.StringFixed(2))
	return created, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.client.ListOrders(ctx)
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: order id is required", common.ErrValidation)
	}
	return s.client.GetOrder(ctx, id)
}

func (s *orderService) CancelOrder(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: order id is required", common.ErrValidation)
	}
	return s.client.CancelOrder(ctx, id)
}
