package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// askAddress prompts for every address field in form order.
func (a *App) askAddress(title string) (models.Address, error) {
	fmt.Fprintln(a.out, title)
	var addr models.Address
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &addr.FirstName},
		{"Last name", &addr.LastName},
		{"Address", &addr.Address},
		{"Apartment (optional)", &addr.Apartment},
		{"City", &addr.City},
		{"State", &addr.State},
		{"ZIP code", &addr.ZipCode},
		{"Country", &addr.Country},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return models.Address{}, err
		}
		*f.dst = v
	}
	return addr, nil
}

// askOrDefault prompts with def shown; an empty answer keeps def.
func (a *App) askOrDefault(prompt, def string) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

// Checkout collects shipping, billing and payment details, shows the order
// summary and places the order.
func (a *App) Checkout(ctx context.Context) error {
	a.Navigate("/checkout")

	if err := a.cart.FetchCart(ctx); err != nil {
		return a.fail(err)
	}
	snap := a.cart.Snapshot()
	if snap.Empty() {
		fmt.Fprintln(a.out, "Your cart is empty")
		return fmt.Errorf("%w: cart is empty", common.ErrValidation)
	}
	renderCart(a.out, snap)

	var req services.CheckoutRequest
	var err error
	if req.Shipping, err = a.askAddress("Shipping address"); err != nil {
		return err
	}
	if req.SameAsShipping, err = GetYesNo(a.reader, "Billing address same as shipping?", a.out, true); err != nil {
		return a.fail(err)
	}
	if !req.SameAsShipping {
		if req.Billing, err = a.askAddress("Billing address"); err != nil {
			return err
		}
	}

	method, err := a.askOrDefault("Payment method (credit/cod)", string(models.PaymentCredit))
	if err != nil {
		return err
	}
	req.PaymentMethod = models.PaymentMethod(method)

	id, _ := a.session.Identity()
	if req.Email, err = a.askOrDefault("Email", id.Email); err != nil {
		return err
	}
	if req.Phone, err = a.askOrDefault("Phone", id.PhoneNo); err != nil {
		return err
	}

	order, err := a.orders.PlaceOrder(ctx, req)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Order %s placed. Total: %s\n", order.Ref(), money(order.TotalAmount))
	a.Navigate("/orders")
	return nil
}

// Orders prints the current user's order history.
func (a *App) Orders(ctx context.Context) error {
	a.Navigate("/orders")
	list, err := a.orders.ListOrders(ctx)
	if err != nil {
		return a.fail(err)
	}
	renderOrders(a.out, list)
	return nil
}

// ShowOrder handles: order <id>.
func (a *App) ShowOrder(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: order <id>")
		return fmt.Errorf("%w: order id is required", common.ErrValidation)
	}
	a.Navigate("/orders/" + args[0])
	o, err := a.orders.GetOrder(ctx, args[0])
	if err != nil {
		return a.fail(err)
	}
	renderOrder(a.out, o)
	return nil
}

// CancelOrder handles: cancel <id>.
func (a *App) CancelOrder(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: cancel <id>")
		return fmt.Errorf("%w: order id is required", common.ErrValidation)
	}
	if err := a.orders.CancelOrder(ctx, args[0]); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Order %s cancelled\n", args[0])
	return nil
}
