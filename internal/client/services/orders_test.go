package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartLine(id, price string, qty int, size string) models.CartLine {
	p := decimal.RequireFromString(price)
	q := qty
	return models.CartLine{ID: id, ProductID: "p-" + id, Name: "Item " + id, Price: &p, Quantity: &q, Size: size}
}

var shipTo = models.Address{FirstName: "Sam", LastName: "Lee", Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US"}

func TestBuildOrder_TaxAndTotalRoundedToCents(t *testing.T) {
	snap := models.CartSnapshot{Lines: []models.CartLine{cartLine("a", "19.99", 3, "M"), cartLine("b", "5.05", 1, "")}}
	subtotal, err := snap.TotalPrice()
	require.NoError(t, err)

	o, err := BuildOrder(snap, subtotal, CheckoutRequest{
		Shipping:       shipTo,
		Billing:        models.Address{City: "ignored"},
		SameAsShipping: true,
		PaymentMethod:  models.PaymentCOD,
		Email:          "sam@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "65.02", o.Subtotal.StringFixed(2))
	assert.Equal(t, "5.20", o.Tax.StringFixed(2))
	assert.Equal(t, "70.22", o.TotalAmount.StringFixed(2))
	assert.Equal(t, models.OrderPending, o.Status)
	assert.Equal(t, shipTo, o.BillingAddress)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "M", o.Items[0].Size)
	assert.Equal(t, DefaultSize, o.Items[1].Size)
	assert.Equal(t, 3, o.Items[0].Quantity)
}

func TestBuildOrder_SeparateBilling(t *testing.T) {
	snap := models.CartSnapshot{Lines: []models.CartLine{cartLine("a", "10", 1, "S")}}
	billing := models.Address{FirstName: "Ana", City: "Shelbyville"}

	o, err := BuildOrder(snap, decimal.NewFromInt(10), CheckoutRequest{
		Shipping: shipTo, Billing: billing, PaymentMethod: models.PaymentCredit, Email: "a@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, billing, o.BillingAddress)
}

func TestBuildOrder_Validation(t *testing.T) {
	full := models.CartSnapshot{Lines: []models.CartLine{cartLine("a", "10", 1, "S")}}
	ok := CheckoutRequest{Shipping: shipTo, PaymentMethod: models.PaymentCredit, Email: "a@example.com"}

	tests := []struct {
		name string
		snap models.CartSnapshot
		req  func() CheckoutRequest
	}{
		{"empty cart", models.CartSnapshot{}, func() CheckoutRequest { return ok }},
		{"unknown payment", full, func() CheckoutRequest { r := ok; r.PaymentMethod = "barter"; return r }},
		{"no email", full, func() CheckoutRequest { r := ok; r.Email = ""; return r }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildOrder(tt.snap, decimal.NewFromInt(10), tt.req())
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestPlaceOrder_SubmitsAndClearsCart(t *testing.T) {
	fc := &fakeClient{CreateOrderRet: &models.Order{OrderID: "ORD-7", Status: models.OrderPending}}
	cart := &fakeCart{snap: models.CartSnapshot{Lines: []models.CartLine{cartLine("a", "100", 1, "L")}}}
	svc := NewOrderService(fc, cart, nil)

	o, err := svc.PlaceOrder(context.Background(), CheckoutRequest{
		Shipping: shipTo, SameAsShipping: true, PaymentMethod: models.PaymentCredit, Email: "sam@example.com", Phone: "555",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-7", o.Ref())
	assert.Equal(t, "108.00", fc.LastOrder.TotalAmount.StringFixed(2))
	assert.Equal(t, "555", fc.LastOrder.Phone)
	assert.Equal(t, 1, cart.clears)
}

func TestPlaceOrder_FailureKeepsCart(t *testing.T) {
	fc := &fakeClient{CreateOrderErr: errors.New("server error")}
	cart := &fakeCart{snap: models.CartSnapshot{Lines: []models.CartLine{cartLine("a", "100", 1, "L")}}}
	svc := NewOrderService(fc, cart, nil)

	_, err := svc.PlaceOrder(context.Background(), CheckoutRequest{Shipping: shipTo, PaymentMethod: models.PaymentCredit, Email: "x@example.com"})
	require.Error(t, err)
	assert.Zero(t, cart.clears)
	assert.False(t, cart.snap.Empty())
}

func TestPlaceOrder_EmptyCartSkipsNetwork(t *testing.T) {
	fc := &fakeClient{}
	svc := NewOrderService(fc, &fakeCart{}, nil)

	_, err := svc.PlaceOrder(context.Background(), CheckoutRequest{PaymentMethod: models.PaymentCredit, Email: "x@example.com"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, fc.calls)
}

func TestOrderLookups(t *testing.T) {
	fc := &fakeClient{OrdersRet: []models.Order{{ID: "o1"}}}
	svc := NewOrderService(fc, &fakeCart{}, nil)
	ctx := context.Background()

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	o, err := svc.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)

	require.NoError(t, svc.CancelOrder(ctx, "o1"))
	assert.Equal(t, "o1", fc.LastID)

	require.ErrorIs(t, svc.CancelOrder(ctx, ""), common.ErrValidation)
	_, err = svc.GetOrder(ctx, " ")
	require.ErrorIs(t, err, common.ErrValidation)
}
