package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// Products lists one page of a category: products <category> [page].
// Browsing does not need a session.
func (a *App) Products(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: products <category> [page]")
		return fmt.Errorf("%w: category is required", common.ErrValidation)
	}
	category, page := args[0], 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return a.fail(fmt.Errorf("%w: page must be a number", common.ErrValidation))
		}
		page = n
	}

	a.Navigate("/products/" + category)
	res, err := a.catalog.ListProducts(ctx, category, page)
	if err != nil {
		return a.fail(err)
	}
	renderProducts(a.out, res)
	return nil
}
