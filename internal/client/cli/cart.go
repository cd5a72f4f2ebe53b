package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// ShowCart re-fetches the cart and prints it with its totals.
func (a *App) ShowCart(ctx context.Context) error {
	a.Navigate("/cart")
	if err := a.cart.FetchCart(ctx); err != nil {
		return a.fail(err)
	}
	snap := a.cart.Snapshot()
	renderCart(a.out, snap)
	if snap.Empty() {
		return nil
	}
	return a.printTotals()
}

func (a *App) printTotals() error {
	items, err := a.cart.TotalItems()
	if err != nil {
		return a.fail(err)
	}
	total, err := a.cart.TotalPrice()
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Items: %d  Total: %s\n", items, money(total))
	return nil
}

// AddToCart handles: add <productId> [qty] [size] [color].
func (a *App) AddToCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: add <productId> [qty] [size] [color]")
		return fmt.Errorf("%w: product id is required", common.ErrValidation)
	}
	req := models.AddToCartRequest{ProductID: args[0], Quantity: 1}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return a.fail(fmt.Errorf("%w: quantity must be a number", common.ErrValidation))
		}
		req.Quantity = n
	}
	if len(args) > 2 {
		req.Size = args[2]
	}
	if len(args) > 3 {
		req.Color = args[3]
	}

	if err := a.cart.AddItem(ctx, req); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Added to cart")
	return a.printTotals()
}

// SetQuantity handles: qty <lineId> <n>. A quantity of 0 removes the line.
func (a *App) SetQuantity(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: qty <lineId> <n>")
		return fmt.Errorf("%w: line id and quantity are required", common.ErrValidation)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return a.fail(fmt.Errorf("%w: quantity must be a number", common.ErrValidation))
	}
	if err := a.cart.UpdateQuantity(ctx, args[0], n); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Cart updated")
	return a.printTotals()
}

// RemoveLine handles: remove <lineId>.
func (a *App) RemoveLine(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: remove <lineId>")
		return fmt.Errorf("%w: line id is required", common.ErrValidation)
	}
	if err := a.cart.RemoveItem(ctx, args[0]); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Removed from cart")
	return a.printTotals()
}

// ClearCart empties the cart after confirmation.
func (a *App) ClearCart(ctx context.Context) error {
	ok, err := GetYesNo(a.reader, "Remove all items from the cart?", a.out, false)
	if err != nil {
		return a.fail(err)
	}
	if !ok {
		return nil
	}
	if err := a.cart.ClearCart(ctx); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Cart cleared")
	return nil
}
